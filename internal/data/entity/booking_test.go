package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestBookingStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{"pending to confirmed", BookingStatusPending, BookingStatusConfirmed, true},
		{"pending to cancelled", BookingStatusPending, BookingStatusCancelled, true},
		{"pending to completed", BookingStatusPending, BookingStatusCompleted, false},
		{"pending to in_progress", BookingStatusPending, BookingStatusInProgress, false},
		{"confirmed to in_progress", BookingStatusConfirmed, BookingStatusInProgress, true},
		{"confirmed to completed", BookingStatusConfirmed, BookingStatusCompleted, true},
		{"confirmed to cancelled", BookingStatusConfirmed, BookingStatusCancelled, true},
		{"confirmed to pending", BookingStatusConfirmed, BookingStatusPending, false},
		{"in_progress to completed", BookingStatusInProgress, BookingStatusCompleted, true},
		{"in_progress to cancelled", BookingStatusInProgress, BookingStatusCancelled, false},
		{"completed is terminal", BookingStatusCompleted, BookingStatusPending, false},
		{"completed to cancelled", BookingStatusCompleted, BookingStatusCancelled, false},
		{"cancelled is terminal", BookingStatusCancelled, BookingStatusPending, false},
		{"cancelled to confirmed", BookingStatusCancelled, BookingStatusConfirmed, false},
		{"same status is not a transition", BookingStatusPending, BookingStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestRoleCanTransition(t *testing.T) {
	tests := []struct {
		name string
		role UserRole
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		// caregiver accepts, declines, starts and completes
		{"caregiver accepts pending", RoleCaregiver, BookingStatusPending, BookingStatusConfirmed, true},
		{"caregiver declines pending", RoleCaregiver, BookingStatusPending, BookingStatusCancelled, true},
		{"caregiver starts confirmed", RoleCaregiver, BookingStatusConfirmed, BookingStatusInProgress, true},
		{"caregiver completes confirmed", RoleCaregiver, BookingStatusConfirmed, BookingStatusCompleted, true},
		{"caregiver completes in_progress", RoleCaregiver, BookingStatusInProgress, BookingStatusCompleted, true},
		{"caregiver cannot cancel confirmed", RoleCaregiver, BookingStatusConfirmed, BookingStatusCancelled, false},
		{"caregiver cannot complete pending", RoleCaregiver, BookingStatusPending, BookingStatusCompleted, false},

		// owner only cancels
		{"owner cancels pending", RoleOwner, BookingStatusPending, BookingStatusCancelled, true},
		{"owner cancels confirmed", RoleOwner, BookingStatusConfirmed, BookingStatusCancelled, true},
		{"owner cannot accept", RoleOwner, BookingStatusPending, BookingStatusConfirmed, false},
		{"owner cannot start", RoleOwner, BookingStatusConfirmed, BookingStatusInProgress, false},
		{"owner cannot complete", RoleOwner, BookingStatusInProgress, BookingStatusCompleted, false},
		{"owner cannot cancel in_progress", RoleOwner, BookingStatusInProgress, BookingStatusCancelled, false},

		// terminal statuses admit nothing for anyone
		{"caregiver on completed", RoleCaregiver, BookingStatusCompleted, BookingStatusInProgress, false},
		{"owner on cancelled", RoleOwner, BookingStatusCancelled, BookingStatusCancelled, false},

		// admin has no transition grants
		{"admin cannot confirm", RoleAdmin, BookingStatusPending, BookingStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoleCanTransition(tt.role, tt.from, tt.to); got != tt.want {
				t.Errorf("RoleCanTransition(%s, %s -> %s) = %v, want %v",
					tt.role, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestRoleTransitionsRespectStatusGraph(t *testing.T) {
	// every role-gated transition must also be legal in the ungated graph
	for role, byStatus := range roleTransitions {
		for from, targets := range byStatus {
			for _, to := range targets {
				if !from.CanTransitionTo(to) {
					t.Errorf("role %s allows %s -> %s which the status graph forbids", role, from, to)
				}
			}
		}
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	terminal := map[BookingStatus]bool{
		BookingStatusPending:    false,
		BookingStatusConfirmed:  false,
		BookingStatusInProgress: false,
		BookingStatusCompleted:  true,
		BookingStatusCancelled:  true,
	}

	for status, want := range terminal {
		if got := status.Terminal(); got != want {
			t.Errorf("%s.Terminal() = %v, want %v", status, got, want)
		}
	}
}

func TestBookingIsParticipant(t *testing.T) {
	owner := uuid.New()
	caregiver := uuid.New()
	stranger := uuid.New()

	booking := &Booking{OwnerID: owner, CaregiverID: caregiver}

	if !booking.IsParticipant(owner) {
		t.Error("owner should be a participant")
	}
	if !booking.IsParticipant(caregiver) {
		t.Error("caregiver should be a participant")
	}
	if booking.IsParticipant(stranger) {
		t.Error("stranger should not be a participant")
	}
	if booking.IsParticipant(uuid.Nil) {
		t.Error("nil identity should not be a participant")
	}
}
