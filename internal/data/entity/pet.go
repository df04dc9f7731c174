package entity

import (
	"github.com/google/uuid"
)

// Pet belongs to exactly one owner identity. There is no ownership transfer.
type Pet struct {
	Base
	OwnerID           uuid.UUID `db:"owner_id"`
	Name              string    `db:"name"`
	PetType           string    `db:"pet_type"`
	Breed             *string   `db:"breed"`
	Age               *int      `db:"age"`
	Sex               *string   `db:"sex"`
	Weight            *float64  `db:"weight"`
	PhotoURL          *string   `db:"photo_url"`
	SpecialNeeds      *string   `db:"special_needs"`
	MedicalConditions *string   `db:"medical_conditions"`
	VaccinationStatus *string   `db:"vaccination_status"`
	Temperament       *string   `db:"temperament"`
	FeedingSchedule   *string   `db:"feeding_schedule"`
	BehaviorNotes     *string   `db:"behavior_notes"`
}
