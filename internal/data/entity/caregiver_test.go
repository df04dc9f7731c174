package entity

import (
	"testing"
	"time"
)

func TestServiceOfferingSessionDuration(t *testing.T) {
	tests := []struct {
		duration string
		want     time.Duration
	}{
		{"1 hour", time.Hour},
		{"2 hours", 2 * time.Hour},
		{"1.5 hours", 90 * time.Minute},
		{"45 minutes", 45 * time.Minute},
		{"30 min", 30 * time.Minute},
		{"1 hr", time.Hour},
		{"1 day", 24 * time.Hour},
		{"  2 Hours  ", 2 * time.Hour},

		// unparseable forms fall back to the default
		{"", DefaultServiceDuration},
		{"overnight", DefaultServiceDuration},
		{"an hour", DefaultServiceDuration},
		{"-1 hour", DefaultServiceDuration},
		{"0 minutes", DefaultServiceDuration},
		{"2 fortnights", DefaultServiceDuration},
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			svc := ServiceOffering{Name: "Dog Walking", Price: 25, Duration: tt.duration}
			if got := svc.SessionDuration(); got != tt.want {
				t.Errorf("SessionDuration(%q) = %v, want %v", tt.duration, got, tt.want)
			}
		})
	}
}

func TestCaregiverProfileOfferedService(t *testing.T) {
	profile := &CaregiverProfile{
		Services: []ServiceOffering{
			{Name: "Dog Walking", Price: 25, Duration: "1 hour"},
			{Name: "Pet Sitting", Price: 80, Duration: "1 day"},
		},
	}

	svc, ok := profile.OfferedService("Pet Sitting")
	if !ok {
		t.Fatal("expected Pet Sitting to be offered")
	}
	if svc.Price != 80 {
		t.Errorf("Price = %v, want 80", svc.Price)
	}

	if _, ok := profile.OfferedService("Grooming"); ok {
		t.Error("Grooming should not be offered")
	}

	empty := &CaregiverProfile{}
	if _, ok := empty.OfferedService("Dog Walking"); ok {
		t.Error("empty profile offers nothing")
	}
}
