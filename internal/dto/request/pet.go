package request

type CreatePetRequest struct {
	Name              string   `json:"name" validate:"required,min=1,max=100"`
	PetType           string   `json:"pet_type" validate:"required"`
	Breed             *string  `json:"breed,omitempty"`
	Age               *int     `json:"age,omitempty" validate:"omitempty,min=0"`
	Sex               *string  `json:"sex,omitempty" validate:"omitempty,oneof=male female unknown"`
	Weight            *float64 `json:"weight,omitempty" validate:"omitempty,gt=0"`
	PhotoURL          *string  `json:"photo_url,omitempty"`
	SpecialNeeds      *string  `json:"special_needs,omitempty"`
	MedicalConditions *string  `json:"medical_conditions,omitempty"`
	VaccinationStatus *string  `json:"vaccination_status,omitempty"`
	Temperament       *string  `json:"temperament,omitempty"`
	FeedingSchedule   *string  `json:"feeding_schedule,omitempty"`
	BehaviorNotes     *string  `json:"behavior_notes,omitempty"`
}

// UpdatePetRequest carries a partial field set; nil fields keep their value.
type UpdatePetRequest struct {
	Name              *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	PetType           *string  `json:"pet_type,omitempty"`
	Breed             *string  `json:"breed,omitempty"`
	Age               *int     `json:"age,omitempty" validate:"omitempty,min=0"`
	Sex               *string  `json:"sex,omitempty" validate:"omitempty,oneof=male female unknown"`
	Weight            *float64 `json:"weight,omitempty" validate:"omitempty,gt=0"`
	PhotoURL          *string  `json:"photo_url,omitempty"`
	SpecialNeeds      *string  `json:"special_needs,omitempty"`
	MedicalConditions *string  `json:"medical_conditions,omitempty"`
	VaccinationStatus *string  `json:"vaccination_status,omitempty"`
	Temperament       *string  `json:"temperament,omitempty"`
	FeedingSchedule   *string  `json:"feeding_schedule,omitempty"`
	BehaviorNotes     *string  `json:"behavior_notes,omitempty"`
}
