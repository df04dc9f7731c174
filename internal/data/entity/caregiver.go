package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ServiceOffering is one service a caregiver offers, with its price and
// stated session duration (e.g. "1 hour", "45 minutes").
type ServiceOffering struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration"`
}

// DefaultServiceDuration applies when an offering has no parseable duration.
const DefaultServiceDuration = time.Hour

// SessionDuration parses the stated duration. Understood forms: "N hour(s)",
// "N minute(s)"/"N min", "N.5 hours". Anything else falls back to one hour.
func (s ServiceOffering) SessionDuration() time.Duration {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s.Duration)))
	if len(fields) < 2 {
		return DefaultServiceDuration
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || value <= 0 {
		return DefaultServiceDuration
	}

	unit := strings.TrimSuffix(fields[1], "s")
	switch unit {
	case "hour", "hr":
		return time.Duration(value * float64(time.Hour))
	case "minute", "min":
		return time.Duration(value * float64(time.Minute))
	case "day":
		return time.Duration(value * 24 * float64(time.Hour))
	}

	return DefaultServiceDuration
}

// CaregiverProfile is one-to-one with a caregiver identity.
type CaregiverProfile struct {
	Base
	UserID         uuid.UUID         `db:"user_id"`
	Bio            *string           `db:"bio"`
	Services       []ServiceOffering `db:"services"`
	HourlyRate     *float64          `db:"hourly_rate"`
	DailyRate      *float64          `db:"daily_rate"`
	YearsExp       *int              `db:"years_experience"`
	IsVerified     bool              `db:"is_verified"`
	Rating         *float64          `db:"rating"`
	TotalReviews   int               `db:"total_reviews"`
	ServiceRadius  *int              `db:"service_radius"`
	Languages      []string          `db:"languages"`
}

// OfferedService returns the offering matching name, if any.
func (p *CaregiverProfile) OfferedService(name string) (ServiceOffering, bool) {
	for _, svc := range p.Services {
		if svc.Name == name {
			return svc, true
		}
	}
	return ServiceOffering{}, false
}
