package response

import (
	"time"

	"github.com/vinodbargaje/happy-paws-connect/internal/data/entity"
	"github.com/vinodbargaje/happy-paws-connect/internal/store"
)

type PartyResponse struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

type PetSummaryResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	PetType  string  `json:"pet_type"`
	Breed    *string `json:"breed,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

type BookingResponse struct {
	ID             string               `json:"id"`
	BookingRef     string               `json:"booking_ref"`
	OwnerID        string               `json:"owner_id"`
	CaregiverID    string               `json:"caregiver_id"`
	PetID          string               `json:"pet_id"`
	ServiceType    string               `json:"service_type"`
	StartDate      time.Time            `json:"start_date"`
	EndDate        time.Time            `json:"end_date"`
	Status         entity.BookingStatus `json:"status"`
	TotalAmount    float64              `json:"total_amount"`
	Notes          *string              `json:"notes,omitempty"`
	OwnerNotes     *string              `json:"owner_notes,omitempty"`
	CaregiverNotes *string              `json:"caregiver_notes,omitempty"`
	Owner          *PartyResponse       `json:"owner,omitempty"`
	Caregiver      *PartyResponse       `json:"caregiver,omitempty"`
	Pet            *PetSummaryResponse  `json:"pet,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func partyToResponse(party *entity.PartySummary) *PartyResponse {
	if party == nil {
		return nil
	}
	return &PartyResponse{
		ID:        party.ID.String(),
		FullName:  party.FullName,
		AvatarURL: party.AvatarURL,
		Phone:     party.Phone,
	}
}

func BookingToResponse(booking *entity.BookingDetail) BookingResponse {
	resp := BookingResponse{
		ID:             booking.ID.String(),
		BookingRef:     booking.BookingRef,
		OwnerID:        booking.OwnerID.String(),
		CaregiverID:    booking.CaregiverID.String(),
		PetID:          booking.PetID.String(),
		ServiceType:    booking.ServiceType,
		StartDate:      booking.StartDate,
		EndDate:        booking.EndDate,
		Status:         booking.Status,
		TotalAmount:    booking.TotalAmount,
		Notes:          booking.Notes,
		OwnerNotes:     booking.OwnerNotes,
		CaregiverNotes: booking.CaregiverNotes,
		Owner:          partyToResponse(booking.Owner),
		Caregiver:      partyToResponse(booking.Caregiver),
		CreatedAt:      booking.CreatedAt,
		UpdatedAt:      booking.UpdatedAt,
	}

	if booking.Pet != nil {
		resp.Pet = &PetSummaryResponse{
			ID:       booking.Pet.ID.String(),
			Name:     booking.Pet.Name,
			PetType:  booking.Pet.PetType,
			Breed:    booking.Pet.Breed,
			PhotoURL: booking.Pet.PhotoURL,
		}
	}

	return resp
}

func BookingsToResponse(bookings []*entity.BookingDetail) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		out[i] = BookingToResponse(booking)
	}
	return out
}

// BookingListResponse is one derived view of the canonical list.
type BookingListResponse struct {
	View     string            `json:"view"`
	Bookings []BookingResponse `json:"bookings"`
}

// SyncSnapshot is pushed to realtime dashboard clients after every refresh:
// the canonical list, its derived partitions and the dashboard aggregates.
type SyncSnapshot struct {
	Bookings  []BookingResponse `json:"bookings"`
	Pending   []BookingResponse `json:"pending"`
	Confirmed []BookingResponse `json:"confirmed"`
	Upcoming  []BookingResponse `json:"upcoming"`
	Past      []BookingResponse `json:"past"`
	InService []BookingResponse `json:"in_service"`
	Stats     store.Stats       `json:"stats"`
}

// SnapshotFromStore derives a full snapshot from the store's current list.
func SnapshotFromStore(st *store.BookingStore) SyncSnapshot {
	return SyncSnapshot{
		Bookings:  BookingsToResponse(st.All()),
		Pending:   BookingsToResponse(st.Pending()),
		Confirmed: BookingsToResponse(st.Confirmed()),
		Upcoming:  BookingsToResponse(st.Upcoming()),
		Past:      BookingsToResponse(st.Past()),
		InService: BookingsToResponse(st.InService()),
		Stats:     st.Stats(),
	}
}
