package request

type ServiceOfferingRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Duration string  `json:"duration" validate:"required"`
}

type UpdateCaregiverProfileRequest struct {
	Bio           *string                  `json:"bio,omitempty"`
	Services      []ServiceOfferingRequest `json:"services,omitempty" validate:"omitempty,dive"`
	HourlyRate    *float64                 `json:"hourly_rate,omitempty" validate:"omitempty,gt=0"`
	DailyRate     *float64                 `json:"daily_rate,omitempty" validate:"omitempty,gt=0"`
	YearsExp      *int                     `json:"years_experience,omitempty" validate:"omitempty,min=0"`
	ServiceRadius *int                     `json:"service_radius,omitempty" validate:"omitempty,min=0"`
	Languages     []string                 `json:"languages,omitempty"`
}
