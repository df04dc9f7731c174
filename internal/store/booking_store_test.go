package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vinodbargaje/happy-paws-connect/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func mkBooking(status entity.BookingStatus, start, end time.Time) *entity.BookingDetail {
	return &entity.BookingDetail{
		Booking: entity.Booking{
			Base:        entity.Base{ID: uuid.New()},
			OwnerID:     uuid.New(),
			CaregiverID: uuid.New(),
			Status:      status,
			StartDate:   start,
			EndDate:     end,
			TotalAmount: 50,
		},
	}
}

// fixture covers every partition: pending/confirmed in the future, bookings
// mid-service, and terminal or elapsed ones.
func fixtureList() []*entity.BookingDetail {
	future := testNow.Add(24 * time.Hour)
	futureEnd := future.Add(time.Hour)
	past := testNow.Add(-24 * time.Hour)
	pastEnd := past.Add(time.Hour)
	started := testNow.Add(-30 * time.Minute)
	running := testNow.Add(30 * time.Minute)

	return []*entity.BookingDetail{
		mkBooking(entity.BookingStatusPending, future, futureEnd),      // upcoming
		mkBooking(entity.BookingStatusConfirmed, future, futureEnd),    // upcoming
		mkBooking(entity.BookingStatusConfirmed, started, running),     // in service
		mkBooking(entity.BookingStatusInProgress, started, running),    // in service
		mkBooking(entity.BookingStatusCompleted, past, pastEnd),        // past
		mkBooking(entity.BookingStatusCancelled, past, pastEnd),        // past
		mkBooking(entity.BookingStatusPending, past, pastEnd),          // past: window elapsed
	}
}

func TestFilterByView(t *testing.T) {
	list := fixtureList()

	tests := []struct {
		view View
		want int
	}{
		{ViewAll, 7},
		{ViewPending, 2},
		{ViewConfirmed, 3},
		{ViewUpcoming, 2},
		{ViewPast, 3},
		{ViewInService, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			got := FilterByView(list, tt.view, testNow)
			if len(got) != tt.want {
				t.Errorf("FilterByView(%s) returned %d bookings, want %d", tt.view, len(got), tt.want)
			}
		})
	}
}

func TestEveryBookingLandsInSomePartition(t *testing.T) {
	// upcoming, in_service and past together must cover the whole list:
	// no booking may fall between the partitions.
	list := fixtureList()

	covered := make(map[uuid.UUID]bool)
	for _, view := range []View{ViewUpcoming, ViewInService, ViewPast} {
		for _, b := range FilterByView(list, view, testNow) {
			covered[b.ID] = true
		}
	}

	for _, b := range list {
		if !covered[b.ID] {
			t.Errorf("booking %s (status=%s start=%s end=%s) is in no time partition",
				b.ID, b.Status, b.StartDate, b.EndDate)
		}
	}
}

func TestViewValid(t *testing.T) {
	for _, v := range []View{ViewAll, ViewPending, ViewConfirmed, ViewUpcoming, ViewPast, ViewInService} {
		if !v.Valid() {
			t.Errorf("view %s should be valid", v)
		}
	}
	if View("completed").Valid() {
		t.Error("unknown view should be invalid")
	}
	if View("").Valid() {
		t.Error("empty view should be invalid")
	}
}

func TestComputeStats(t *testing.T) {
	list := fixtureList()

	stats := ComputeStats(list, testNow)

	if stats.Total != 7 {
		t.Errorf("Total = %d, want 7", stats.Total)
	}
	if stats.Pending != 2 {
		t.Errorf("Pending = %d, want 2", stats.Pending)
	}
	if stats.Confirmed != 3 {
		t.Errorf("Confirmed = %d, want 3", stats.Confirmed)
	}
	if stats.InProgress != 1 {
		t.Errorf("InProgress = %d, want 1", stats.InProgress)
	}
	if stats.Completed != 1 {
		t.Errorf("Completed = %d, want 1", stats.Completed)
	}
	if stats.Cancelled != 1 {
		t.Errorf("Cancelled = %d, want 1", stats.Cancelled)
	}
	if stats.Upcoming != 2 {
		t.Errorf("Upcoming = %d, want 2", stats.Upcoming)
	}
	// earnings only count completed bookings
	if stats.Earnings != 50 {
		t.Errorf("Earnings = %v, want 50", stats.Earnings)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, testNow)
	if stats != (Stats{}) {
		t.Errorf("ComputeStats(nil) = %+v, want zero stats", stats)
	}
}

func newTestStore(userID uuid.UUID, fetch FetchFunc) *BookingStore {
	st := New(userID, fetch, zap.NewNop())
	st.now = func() time.Time { return testNow }
	return st
}

func TestStoreRefreshReplacesWholesale(t *testing.T) {
	first := fixtureList()
	second := first[:2]

	lists := [][]*entity.BookingDetail{first, second}
	calls := 0
	fetch := func(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error) {
		list := lists[calls]
		calls++
		return list, nil
	}

	st := newTestStore(uuid.New(), fetch)

	if err := st.Refresh(context.Background()); err != nil {
		t.Fatalf("first refresh: %v", err)
	}
	if got := len(st.All()); got != len(first) {
		t.Fatalf("after first refresh len = %d, want %d", got, len(first))
	}

	// second fetch returns a shorter list; the store must not keep stale rows
	if err := st.Refresh(context.Background()); err != nil {
		t.Fatalf("second refresh: %v", err)
	}
	if got := len(st.All()); got != len(second) {
		t.Errorf("after second refresh len = %d, want %d", got, len(second))
	}
}

func TestStoreRefreshFailureKeepsList(t *testing.T) {
	fail := false
	fetch := func(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error) {
		if fail {
			return nil, errors.New("connection reset")
		}
		return fixtureList(), nil
	}

	st := newTestStore(uuid.New(), fetch)

	if err := st.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	fail = true
	if err := st.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}

	if got := len(st.All()); got != 7 {
		t.Errorf("failed refresh dropped the list: len = %d, want 7", got)
	}
}

func TestStoreNilIdentityClearsWithoutFetch(t *testing.T) {
	fetched := false
	fetch := func(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error) {
		fetched = true
		return fixtureList(), nil
	}

	st := newTestStore(uuid.Nil, fetch)

	if err := st.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if fetched {
		t.Error("nil identity must not hit the fetcher")
	}
	if got := len(st.All()); got != 0 {
		t.Errorf("nil identity should have an empty list, got %d", got)
	}
}

func TestStoreViews(t *testing.T) {
	fetch := func(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error) {
		return fixtureList(), nil
	}

	st := newTestStore(uuid.New(), fetch)
	if err := st.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if got := len(st.Pending()); got != 2 {
		t.Errorf("Pending len = %d, want 2", got)
	}
	if got := len(st.Confirmed()); got != 3 {
		t.Errorf("Confirmed len = %d, want 3", got)
	}
	if got := len(st.Upcoming()); got != 2 {
		t.Errorf("Upcoming len = %d, want 2", got)
	}
	if got := len(st.Past()); got != 3 {
		t.Errorf("Past len = %d, want 3", got)
	}
	if got := len(st.InService()); got != 2 {
		t.Errorf("InService len = %d, want 2", got)
	}
	if stats := st.Stats(); stats.Total != 7 {
		t.Errorf("Stats.Total = %d, want 7", stats.Total)
	}
}
