package request

// CreateBookingRequest is the booking request form payload. The start
// timestamp is assembled from date plus time slot; the end timestamp and
// total amount come from the selected service offering.
type CreateBookingRequest struct {
	CaregiverID string  `json:"caregiver_id" validate:"required,uuid4"`
	PetID       string  `json:"pet_id" validate:"required,uuid4"`
	ServiceType string  `json:"service_type" validate:"required"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot    string  `json:"time_slot" validate:"required"`
	Notes       *string `json:"notes,omitempty"`
}

// UpdateBookingStatusRequest drives one status transition. Note lands in the
// acting role's notes column.
type UpdateBookingStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=pending confirmed in_progress completed cancelled"`
	Note   *string `json:"note,omitempty"`
}
