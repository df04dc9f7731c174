package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vinodbargaje/happy-paws-connect/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FetchFunc retrieves the canonical booking list for one identity.
type FetchFunc func(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error)

// View selects a derived partition of the canonical list.
type View string

const (
	ViewAll       View = "all"
	ViewPending   View = "pending"
	ViewConfirmed View = "confirmed"
	// ViewUpcoming: pending or confirmed with a start date not yet reached.
	ViewUpcoming View = "upcoming"
	// ViewPast: completed or cancelled, or any booking whose end has passed.
	ViewPast View = "past"
	// ViewInService: confirmed or in_progress bookings inside their service
	// window. Covers the gap between upcoming and past for bookings whose
	// start has passed but whose end has not.
	ViewInService View = "in_service"
)

func (v View) Valid() bool {
	switch v {
	case ViewAll, ViewPending, ViewConfirmed, ViewUpcoming, ViewPast, ViewInService:
		return true
	}
	return false
}

// FilterByView applies a partition predicate to a booking list. Views are
// always recomputed from the canonical list, never cached.
func FilterByView(list []*entity.BookingDetail, view View, now time.Time) []*entity.BookingDetail {
	if view == ViewAll {
		return list
	}

	var out []*entity.BookingDetail
	for _, b := range list {
		if matchesView(b, view, now) {
			out = append(out, b)
		}
	}
	return out
}

func matchesView(b *entity.BookingDetail, view View, now time.Time) bool {
	switch view {
	case ViewPending:
		return b.Status == entity.BookingStatusPending
	case ViewConfirmed:
		return b.Status == entity.BookingStatusConfirmed
	case ViewUpcoming:
		return (b.Status == entity.BookingStatusPending || b.Status == entity.BookingStatusConfirmed) &&
			!b.StartDate.Before(now)
	case ViewPast:
		return b.Status == entity.BookingStatusCompleted ||
			b.Status == entity.BookingStatusCancelled ||
			b.EndDate.Before(now)
	case ViewInService:
		return (b.Status == entity.BookingStatusConfirmed || b.Status == entity.BookingStatusInProgress) &&
			b.StartDate.Before(now) && !b.EndDate.Before(now)
	}
	return false
}

// Stats are the dashboard aggregates, a pure fold over the canonical list.
type Stats struct {
	Total      int     `json:"total"`
	Pending    int     `json:"pending"`
	Confirmed  int     `json:"confirmed"`
	InProgress int     `json:"in_progress"`
	Completed  int     `json:"completed"`
	Cancelled  int     `json:"cancelled"`
	Upcoming   int     `json:"upcoming"`
	Earnings   float64 `json:"earnings"`
}

// ComputeStats folds the list into dashboard aggregates. Earnings is the sum
// of total_amount over completed bookings.
func ComputeStats(list []*entity.BookingDetail, now time.Time) Stats {
	stats := Stats{Total: len(list)}
	for _, b := range list {
		switch b.Status {
		case entity.BookingStatusPending:
			stats.Pending++
		case entity.BookingStatusConfirmed:
			stats.Confirmed++
		case entity.BookingStatusInProgress:
			stats.InProgress++
		case entity.BookingStatusCompleted:
			stats.Completed++
			stats.Earnings += b.TotalAmount
		case entity.BookingStatusCancelled:
			stats.Cancelled++
		}
		if matchesView(b, ViewUpcoming, now) {
			stats.Upcoming++
		}
	}
	return stats
}

// BookingStore owns the canonical booking list for one identity. The list is
// only ever replaced wholesale by Refresh; mutations elsewhere rely on
// re-fetch for reconciliation, so the stored slice never diverges from what a
// fresh fetch would produce.
type BookingStore struct {
	userID uuid.UUID
	fetch  FetchFunc
	log    *zap.Logger
	now    func() time.Time

	mu       sync.RWMutex
	bookings []*entity.BookingDetail
}

func New(userID uuid.UUID, fetch FetchFunc, log *zap.Logger) *BookingStore {
	return &BookingStore{
		userID: userID,
		fetch:  fetch,
		log:    log.With(zap.String("store", "booking"), zap.String("user_id", userID.String())),
		now:    time.Now,
	}
}

// Refresh replaces the canonical list with a fresh fetch. On failure the
// current list is left unchanged.
func (s *BookingStore) Refresh(ctx context.Context) error {
	if s.userID == uuid.Nil {
		s.mu.Lock()
		s.bookings = nil
		s.mu.Unlock()
		return nil
	}

	bookings, err := s.fetch(ctx, s.userID)
	if err != nil {
		s.log.Error("Failed to refresh bookings", zap.Error(err))
		return fmt.Errorf("refresh bookings: %w", err)
	}

	s.mu.Lock()
	s.bookings = bookings
	s.mu.Unlock()

	return nil
}

// All returns the canonical list ordered by start date.
func (s *BookingStore) All() []*entity.BookingDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.BookingDetail, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *BookingStore) view(v View) []*entity.BookingDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterByView(s.bookings, v, s.now())
}

func (s *BookingStore) Pending() []*entity.BookingDetail   { return s.view(ViewPending) }
func (s *BookingStore) Confirmed() []*entity.BookingDetail { return s.view(ViewConfirmed) }
func (s *BookingStore) Upcoming() []*entity.BookingDetail  { return s.view(ViewUpcoming) }
func (s *BookingStore) Past() []*entity.BookingDetail      { return s.view(ViewPast) }
func (s *BookingStore) InService() []*entity.BookingDetail { return s.view(ViewInService) }

// Stats recomputes dashboard aggregates from the current list.
func (s *BookingStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ComputeStats(s.bookings, s.now())
}
