package response

import (
	"time"

	"github.com/vinodbargaje/happy-paws-connect/internal/data/entity"
)

type ServiceOfferingResponse struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration"`
}

type CaregiverProfileResponse struct {
	ID            string                    `json:"id"`
	UserID        string                    `json:"user_id"`
	Bio           *string                   `json:"bio,omitempty"`
	Services      []ServiceOfferingResponse `json:"services"`
	HourlyRate    *float64                  `json:"hourly_rate,omitempty"`
	DailyRate     *float64                  `json:"daily_rate,omitempty"`
	YearsExp      *int                      `json:"years_experience,omitempty"`
	IsVerified    bool                      `json:"is_verified"`
	Rating        *float64                  `json:"rating,omitempty"`
	TotalReviews  int                       `json:"total_reviews"`
	ServiceRadius *int                      `json:"service_radius,omitempty"`
	Languages     []string                  `json:"languages,omitempty"`
	CreatedAt     time.Time                 `json:"created_at"`
}

func CaregiverProfileToResponse(profile *entity.CaregiverProfile) CaregiverProfileResponse {
	services := make([]ServiceOfferingResponse, len(profile.Services))
	for i, svc := range profile.Services {
		services[i] = ServiceOfferingResponse{
			Name:     svc.Name,
			Price:    svc.Price,
			Duration: svc.Duration,
		}
	}

	return CaregiverProfileResponse{
		ID:            profile.ID.String(),
		UserID:        profile.UserID.String(),
		Bio:           profile.Bio,
		Services:      services,
		HourlyRate:    profile.HourlyRate,
		DailyRate:     profile.DailyRate,
		YearsExp:      profile.YearsExp,
		IsVerified:    profile.IsVerified,
		Rating:        profile.Rating,
		TotalReviews:  profile.TotalReviews,
		ServiceRadius: profile.ServiceRadius,
		Languages:     profile.Languages,
		CreatedAt:     profile.CreatedAt,
	}
}

func CaregiverProfilesToResponse(profiles []*entity.CaregiverProfile) []CaregiverProfileResponse {
	out := make([]CaregiverProfileResponse, len(profiles))
	for i, profile := range profiles {
		out[i] = CaregiverProfileToResponse(profile)
	}
	return out
}
