package response

import (
	"time"

	"github.com/vinodbargaje/happy-paws-connect/internal/data/entity"
)

type PetResponse struct {
	ID                string    `json:"id"`
	OwnerID           string    `json:"owner_id"`
	Name              string    `json:"name"`
	PetType           string    `json:"pet_type"`
	Breed             *string   `json:"breed,omitempty"`
	Age               *int      `json:"age,omitempty"`
	Sex               *string   `json:"sex,omitempty"`
	Weight            *float64  `json:"weight,omitempty"`
	PhotoURL          *string   `json:"photo_url,omitempty"`
	SpecialNeeds      *string   `json:"special_needs,omitempty"`
	MedicalConditions *string   `json:"medical_conditions,omitempty"`
	VaccinationStatus *string   `json:"vaccination_status,omitempty"`
	Temperament       *string   `json:"temperament,omitempty"`
	FeedingSchedule   *string   `json:"feeding_schedule,omitempty"`
	BehaviorNotes     *string   `json:"behavior_notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func PetToResponse(pet *entity.Pet) PetResponse {
	return PetResponse{
		ID:                pet.ID.String(),
		OwnerID:           pet.OwnerID.String(),
		Name:              pet.Name,
		PetType:           pet.PetType,
		Breed:             pet.Breed,
		Age:               pet.Age,
		Sex:               pet.Sex,
		Weight:            pet.Weight,
		PhotoURL:          pet.PhotoURL,
		SpecialNeeds:      pet.SpecialNeeds,
		MedicalConditions: pet.MedicalConditions,
		VaccinationStatus: pet.VaccinationStatus,
		Temperament:       pet.Temperament,
		FeedingSchedule:   pet.FeedingSchedule,
		BehaviorNotes:     pet.BehaviorNotes,
		CreatedAt:         pet.CreatedAt,
		UpdatedAt:         pet.UpdatedAt,
	}
}

func PetsToResponse(pets []*entity.Pet) []PetResponse {
	out := make([]PetResponse, len(pets))
	for i, pet := range pets {
		out[i] = PetToResponse(pet)
	}
	return out
}
