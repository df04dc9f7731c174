package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Terminal statuses admit no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// transitions maps each status to the statuses reachable from it,
// irrespective of who is acting.
var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusInProgress: {BookingStatusCompleted},
}

func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// roleTransitions gates each transition on the acting party's role:
// caregivers accept, decline, start and complete; owners cancel.
var roleTransitions = map[UserRole]map[BookingStatus][]BookingStatus{
	RoleCaregiver: {
		BookingStatusPending:    {BookingStatusConfirmed, BookingStatusCancelled},
		BookingStatusConfirmed:  {BookingStatusInProgress, BookingStatusCompleted},
		BookingStatusInProgress: {BookingStatusCompleted},
	},
	RoleOwner: {
		BookingStatusPending:   {BookingStatusCancelled},
		BookingStatusConfirmed: {BookingStatusCancelled},
	},
}

// RoleCanTransition reports whether role may drive from -> to. The owner
// cancel additionally requires a future start date, checked by the caller
// against the booking's start_date.
func RoleCanTransition(role UserRole, from, to BookingStatus) bool {
	for _, t := range roleTransitions[role][from] {
		if t == to {
			return true
		}
	}
	return false
}

// Booking links an owner, a caregiver and a pet for a service over a time
// window. Owner, caregiver, pet and service are immutable after creation;
// only status and the role-scoped notes change.
type Booking struct {
	Base
	BookingRef     string        `db:"booking_ref"`
	OwnerID        uuid.UUID     `db:"owner_id"`
	CaregiverID    uuid.UUID     `db:"caregiver_id"`
	PetID          uuid.UUID     `db:"pet_id"`
	ServiceType    string        `db:"service_type"`
	StartDate      time.Time     `db:"start_date"`
	EndDate        time.Time     `db:"end_date"`
	Status         BookingStatus `db:"status"`
	TotalAmount    float64       `db:"total_amount"`
	Notes          *string       `db:"notes"`
	OwnerNotes     *string       `db:"owner_notes"`
	CaregiverNotes *string       `db:"caregiver_notes"`
}

// IsParticipant reports whether userID is the booking's owner or caregiver.
func (b *Booking) IsParticipant(userID uuid.UUID) bool {
	return b.OwnerID == userID || b.CaregiverID == userID
}

// PartySummary is the joined profile data for one side of a booking.
type PartySummary struct {
	ID        uuid.UUID `db:"id"`
	FullName  string    `db:"full_name"`
	AvatarURL *string   `db:"avatar_url"`
	Phone     *string   `db:"phone"`
}

// PetSummary is the joined pet data shown on booking cards.
type PetSummary struct {
	ID       uuid.UUID `db:"id"`
	Name     string    `db:"name"`
	PetType  string    `db:"pet_type"`
	Breed    *string   `db:"breed"`
	PhotoURL *string   `db:"photo_url"`
}

// BookingDetail is a booking with its joined pet and counterpart profiles,
// as returned by the participant query. The viewer's display logic picks
// whichever side is the counterpart.
type BookingDetail struct {
	Booking
	Owner     *PartySummary
	Caregiver *PartySummary
	Pet       *PetSummary
}
