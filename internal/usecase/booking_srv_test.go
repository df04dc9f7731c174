package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/vinodbargaje/happy-paws-connect/internal/data/entity"
	"github.com/vinodbargaje/happy-paws-connect/internal/data/repository"
	"github.com/vinodbargaje/happy-paws-connect/internal/dto/request"
	"github.com/vinodbargaje/happy-paws-connect/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

// ---- stubs ----

type stubBookingRepo struct {
	calls int

	createFn       func(ctx context.Context, booking *entity.Booking) error
	findByIDFn     func(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	findByPartFn   func(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error)
	updateStatusFn func(ctx context.Context, id uuid.UUID, status entity.BookingStatus, role entity.UserRole, note *string) error
	deleteFn       func(ctx context.Context, id uuid.UUID) error
}

func (s *stubBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	s.calls++
	return s.createFn(ctx, booking)
}

func (s *stubBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	s.calls++
	return s.findByIDFn(ctx, id)
}

func (s *stubBookingRepo) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error) {
	s.calls++
	return s.findByPartFn(ctx, userID)
}

func (s *stubBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus, role entity.UserRole, note *string) error {
	s.calls++
	return s.updateStatusFn(ctx, id, status, role, note)
}

func (s *stubBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s.calls++
	return s.deleteFn(ctx, id)
}

func (s *stubBookingRepo) ExpireStalePending(ctx context.Context) (int64, error) { return 0, nil }
func (s *stubBookingRepo) CountInServiceWindow(ctx context.Context) (int64, error) {
	return 0, nil
}

type stubPetRepo struct {
	calls    int
	findByID func(ctx context.Context, id uuid.UUID) (*entity.Pet, error)
}

func (s *stubPetRepo) Create(ctx context.Context, pet *entity.Pet) error { s.calls++; return nil }
func (s *stubPetRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	s.calls++
	return s.findByID(ctx, id)
}
func (s *stubPetRepo) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pet, error) {
	s.calls++
	return nil, nil
}
func (s *stubPetRepo) Update(ctx context.Context, pet *entity.Pet) error { s.calls++; return nil }
func (s *stubPetRepo) Delete(ctx context.Context, id uuid.UUID) error    { s.calls++; return nil }

type stubCaregiverRepo struct {
	calls        int
	findByUserID func(ctx context.Context, userID uuid.UUID) (*entity.CaregiverProfile, error)
}

func (s *stubCaregiverRepo) Create(ctx context.Context, profile *entity.CaregiverProfile) error {
	s.calls++
	return nil
}
func (s *stubCaregiverRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CaregiverProfile, error) {
	s.calls++
	return s.findByUserID(ctx, userID)
}
func (s *stubCaregiverRepo) Update(ctx context.Context, profile *entity.CaregiverProfile) error {
	s.calls++
	return nil
}
func (s *stubCaregiverRepo) List(ctx context.Context, filter repository.CaregiverFilter) ([]*entity.CaregiverProfile, error) {
	s.calls++
	return nil, nil
}

type stubUserRepo struct {
	calls    int
	findByID func(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error { s.calls++; return nil }
func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	s.calls++
	return s.findByID(ctx, id)
}
func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.calls++
	return nil, nil
}
func (s *stubUserRepo) Update(ctx context.Context, user *entity.User) error { s.calls++; return nil }

type publishedEvent struct {
	op        string
	bookingID uuid.UUID
}

type stubPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (s *stubPublisher) Publish(ctx context.Context, op string, bookingID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, publishedEvent{op: op, bookingID: bookingID})
}

func (s *stubPublisher) ops() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.events))
	for i, ev := range s.events {
		out[i] = ev.op
	}
	return out
}

type bookingFixture struct {
	svc       *bookingService
	repo      *repository.Repository
	booking   *stubBookingRepo
	pet       *stubPetRepo
	caregiver *stubCaregiverRepo
	user      *stubUserRepo
	publisher *stubPublisher
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		booking:   &stubBookingRepo{},
		pet:       &stubPetRepo{},
		caregiver: &stubCaregiverRepo{},
		user:      &stubUserRepo{},
		publisher: &stubPublisher{},
	}

	f.repo = &repository.Repository{
		User:      f.user,
		Pet:       f.pet,
		Caregiver: f.caregiver,
		Booking:   f.booking,
	}

	f.svc = &bookingService{
		repo:      f.repo,
		publisher: f.publisher,
		log:       zap.NewNop(),
		now:       func() time.Time { return testNow },
		inflight:  make(map[uuid.UUID]struct{}),
	}

	return f
}

func (f *bookingFixture) repoCalls() int {
	return f.booking.calls + f.pet.calls + f.caregiver.calls + f.user.calls
}

func caregiverWithWalkService(userID uuid.UUID) *entity.CaregiverProfile {
	return &entity.CaregiverProfile{
		Base:   entity.Base{ID: uuid.New()},
		UserID: userID,
		Services: []entity.ServiceOffering{
			{Name: "Dog Walking", Price: 25, Duration: "1 hour"},
		},
	}
}

func validCreateRequest(caregiverID, petID uuid.UUID) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		CaregiverID: caregiverID.String(),
		PetID:       petID.String(),
		ServiceType: "Dog Walking",
		Date:        "2025-06-16",
		TimeSlot:    "09:00",
	}
}

// ---- create ----

func TestCreateBookingRejectsNilIdentityBeforeAnyQuery(t *testing.T) {
	f := newBookingFixture()

	_, err := f.svc.CreateBooking(context.Background(), uuid.Nil, validCreateRequest(uuid.New(), uuid.New()))
	if err == nil {
		t.Fatal("expected error for nil identity")
	}
	if !strings.Contains(err.Error(), "unauthorized") {
		t.Errorf("error = %q, want unauthorized", err)
	}
	if f.repoCalls() != 0 {
		t.Errorf("nil identity caused %d repository calls, want 0", f.repoCalls())
	}
}

func TestCreateBookingForcesPendingStatus(t *testing.T) {
	ownerID := uuid.New()
	caregiverID := uuid.New()
	petID := uuid.New()

	f := newBookingFixture()
	f.caregiver.findByUserID = func(ctx context.Context, id uuid.UUID) (*entity.CaregiverProfile, error) {
		return caregiverWithWalkService(caregiverID), nil
	}
	f.pet.findByID = func(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
		return &entity.Pet{Base: entity.Base{ID: petID}, OwnerID: ownerID, Name: "Rex", PetType: "dog"}, nil
	}
	f.user.findByID = func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
		return &entity.User{Base: entity.Base{ID: id}, FullName: "Someone"}, nil
	}

	var created *entity.Booking
	f.booking.createFn = func(ctx context.Context, booking *entity.Booking) error {
		created = booking
		return nil
	}

	resp, err := f.svc.CreateBooking(context.Background(), ownerID, validCreateRequest(caregiverID, petID))
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if created == nil {
		t.Fatal("booking was not persisted")
	}
	if created.Status != entity.BookingStatusPending {
		t.Errorf("persisted status = %s, want pending", created.Status)
	}
	if resp.Status != entity.BookingStatusPending {
		t.Errorf("response status = %s, want pending", resp.Status)
	}

	wantStart := time.Date(2025, time.June, 16, 9, 0, 0, 0, time.UTC)
	if !created.StartDate.Equal(wantStart) {
		t.Errorf("start = %v, want %v", created.StartDate, wantStart)
	}
	// end follows the offering's stated duration
	if !created.EndDate.Equal(wantStart.Add(time.Hour)) {
		t.Errorf("end = %v, want %v", created.EndDate, wantStart.Add(time.Hour))
	}
	if created.TotalAmount != 25 {
		t.Errorf("total = %v, want offering price 25", created.TotalAmount)
	}
	if created.BookingRef == "" {
		t.Error("booking ref not assigned")
	}

	if ops := f.publisher.ops(); len(ops) != 1 || ops[0] != "INSERT" {
		t.Errorf("published ops = %v, want [INSERT]", ops)
	}
}

func TestCreateBookingRejectsUnofferedService(t *testing.T) {
	ownerID := uuid.New()
	caregiverID := uuid.New()

	f := newBookingFixture()
	f.caregiver.findByUserID = func(ctx context.Context, id uuid.UUID) (*entity.CaregiverProfile, error) {
		return caregiverWithWalkService(caregiverID), nil
	}

	req := validCreateRequest(caregiverID, uuid.New())
	req.ServiceType = "Grooming"

	_, err := f.svc.CreateBooking(context.Background(), ownerID, req)
	if err == nil || !strings.Contains(err.Error(), "does not offer") {
		t.Errorf("error = %v, want does-not-offer rejection", err)
	}
}

func TestCreateBookingRejectsForeignPet(t *testing.T) {
	ownerID := uuid.New()
	caregiverID := uuid.New()
	petID := uuid.New()

	f := newBookingFixture()
	f.caregiver.findByUserID = func(ctx context.Context, id uuid.UUID) (*entity.CaregiverProfile, error) {
		return caregiverWithWalkService(caregiverID), nil
	}
	f.pet.findByID = func(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
		return &entity.Pet{Base: entity.Base{ID: petID}, OwnerID: uuid.New()}, nil
	}

	_, err := f.svc.CreateBooking(context.Background(), ownerID, validCreateRequest(caregiverID, petID))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want not-found for someone else's pet", err)
	}
}

func TestCreateBookingRejectsPastAndInvalidSlots(t *testing.T) {
	ownerID := uuid.New()
	caregiverID := uuid.New()
	petID := uuid.New()

	f := newBookingFixture()
	f.caregiver.findByUserID = func(ctx context.Context, id uuid.UUID) (*entity.CaregiverProfile, error) {
		return caregiverWithWalkService(caregiverID), nil
	}
	f.pet.findByID = func(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
		return &entity.Pet{Base: entity.Base{ID: petID}, OwnerID: ownerID}, nil
	}

	past := validCreateRequest(caregiverID, petID)
	past.Date = "2025-06-14"
	if _, err := f.svc.CreateBooking(context.Background(), ownerID, past); err == nil ||
		!strings.Contains(err.Error(), "past") {
		t.Errorf("past date error = %v, want past-slot rejection", err)
	}

	// slot on today's date but earlier than now
	earlier := validCreateRequest(caregiverID, petID)
	earlier.Date = "2025-06-15"
	earlier.TimeSlot = "10:00"
	if _, err := f.svc.CreateBooking(context.Background(), ownerID, earlier); err == nil ||
		!strings.Contains(err.Error(), "past") {
		t.Errorf("elapsed slot error = %v, want past-slot rejection", err)
	}

	offGrid := validCreateRequest(caregiverID, petID)
	offGrid.TimeSlot = "09:30"
	if _, err := f.svc.CreateBooking(context.Background(), ownerID, offGrid); err == nil ||
		!strings.Contains(err.Error(), "invalid time slot") {
		t.Errorf("off-grid slot error = %v, want invalid-slot rejection", err)
	}
}

func TestCreateBookingSingleFlight(t *testing.T) {
	ownerID := uuid.New()

	f := newBookingFixture()
	if !f.svc.acquire(ownerID) {
		t.Fatal("first acquire should succeed")
	}

	_, err := f.svc.CreateBooking(context.Background(), ownerID, validCreateRequest(uuid.New(), uuid.New()))
	if err == nil || !strings.Contains(err.Error(), "already being processed") {
		t.Errorf("error = %v, want in-flight rejection", err)
	}

	f.svc.release(ownerID)
	if !f.svc.acquire(ownerID) {
		t.Error("acquire should succeed again after release")
	}
}

// ---- status transitions ----

func transitionFixture(status entity.BookingStatus, start time.Time, ownerID, caregiverID uuid.UUID) (*bookingFixture, *entity.Booking) {
	booking := &entity.Booking{
		Base:        entity.Base{ID: uuid.New()},
		OwnerID:     ownerID,
		CaregiverID: caregiverID,
		Status:      status,
		StartDate:   start,
		EndDate:     start.Add(time.Hour),
	}

	f := newBookingFixture()
	f.booking.findByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
		return booking, nil
	}
	f.booking.updateStatusFn = func(ctx context.Context, id uuid.UUID, status entity.BookingStatus, role entity.UserRole, note *string) error {
		return nil
	}

	return f, booking
}

func TestUpdateBookingStatusCaregiverAcceptsAndDeclines(t *testing.T) {
	ownerID := uuid.New()
	caregiverID := uuid.New()
	future := testNow.Add(24 * time.Hour)

	f, booking := transitionFixture(entity.BookingStatusPending, future, ownerID, caregiverID)

	msg, err := f.svc.UpdateBookingStatus(context.Background(), caregiverID, booking.ID.String(),
		&request.UpdateBookingStatusRequest{Status: "confirmed"})
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if msg != "Booking confirmed!" {
		t.Errorf("accept message = %q", msg)
	}

	f, booking = transitionFixture(entity.BookingStatusPending, future, ownerID, caregiverID)
	msg, err = f.svc.UpdateBookingStatus(context.Background(), caregiverID, booking.ID.String(),
		&request.UpdateBookingStatusRequest{Status: "cancelled"})
	if err != nil {
		t.Fatalf("decline: %v", err)
	}
	if msg != "Booking cancelled" {
		t.Errorf("decline message = %q", msg)
	}

	if ops := f.publisher.ops(); len(ops) != 1 || ops[0] != "UPDATE" {
		t.Errorf("published ops = %v, want [UPDATE]", ops)
	}
}

func TestUpdateBookingStatusCaregiverStartsAndCompletes(t *testing.T) {
	ownerID := uuid.New()
	caregiverID := uuid.New()
	started := testNow.Add(-10 * time.Minute)

	f, booking := transitionFixture(entity.BookingStatusConfirmed, started, ownerID, caregiverID)
	msg, err := f.svc.UpdateBookingStatus(context.Background(), caregiverID, booking.ID.String(),
		&request.UpdateBookingStatusRequest{Status: "in_progress"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if msg != "Booking started" {
		t.Errorf("start message = %q", msg)
	}

	f, booking = transitionFixture(entity.BookingStatusInProgress, started, ownerID, caregiverID)
	msg, err = f.svc.UpdateBookingStatus(context.Background(), caregiverID, booking.ID.String(),
		&request.UpdateBookingStatusRequest{Status: "completed"})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if msg != "Booking completed!" {
		t.Errorf("complete message = %q", msg)
	}
}

func TestUpdateBookingStatusOwnerCancelRequiresFutureStart(t *testing.T) {
	ownerID := uuid.New()
	caregiverID := uuid.New()

	// future start: cancel allowed
	f, booking := transitionFixture(entity.BookingStatusConfirmed, testNow.Add(time.Hour), ownerID, caregiverID)
	msg, err := f.svc.UpdateBookingStatus(context.Background(), ownerID, booking.ID.String(),
		&request.UpdateBookingStatusRequest{Status: "cancelled"})
	if err != nil {
		t.Fatalf("future cancel: %v", err)
	}
	if msg != "Booking cancelled" {
		t.Errorf("cancel message = %q", msg)
	}

	// started booking: cancel rejected
	f, booking = transitionFixture(entity.BookingStatusConfirmed, testNow.Add(-time.Hour), ownerID, caregiverID)
	_, err = f.svc.UpdateBookingStatus(context.Background(), ownerID, booking.ID.String(),
		&request.UpdateBookingStatusRequest{Status: "cancelled"})
	if err == nil || !strings.Contains(err.Error(), "already started") {
		t.Errorf("started cancel error = %v, want already-started rejection", err)
	}
}

func TestUpdateBookingStatusRejectsIllegalTransitions(t *testing.T) {
	ownerID := uuid.New()
	caregiverID := uuid.New()
	future := testNow.Add(24 * time.Hour)

	tests := []struct {
		name   string
		actor  uuid.UUID
		from   entity.BookingStatus
		target string
	}{
		{"owner cannot accept", ownerID, entity.BookingStatusPending, "confirmed"},
		{"owner cannot start", ownerID, entity.BookingStatusConfirmed, "in_progress"},
		{"owner cannot complete", ownerID, entity.BookingStatusInProgress, "completed"},
		{"caregiver cannot skip to completed", caregiverID, entity.BookingStatusPending, "completed"},
		{"caregiver cannot cancel confirmed", caregiverID, entity.BookingStatusConfirmed, "cancelled"},
		{"no exit from completed", caregiverID, entity.BookingStatusCompleted, "in_progress"},
		{"no exit from cancelled", ownerID, entity.BookingStatusCancelled, "pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, booking := transitionFixture(tt.from, future, ownerID, caregiverID)
			_, err := f.svc.UpdateBookingStatus(context.Background(), tt.actor, booking.ID.String(),
				&request.UpdateBookingStatusRequest{Status: tt.target})
			if err == nil || !strings.Contains(err.Error(), "cannot change booking") {
				t.Errorf("error = %v, want transition rejection", err)
			}
		})
	}
}

func TestUpdateBookingStatusRejectsNonParticipant(t *testing.T) {
	f, booking := transitionFixture(entity.BookingStatusPending, testNow.Add(time.Hour), uuid.New(), uuid.New())

	_, err := f.svc.UpdateBookingStatus(context.Background(), uuid.New(), booking.ID.String(),
		&request.UpdateBookingStatusRequest{Status: "confirmed"})
	if err == nil || !strings.Contains(err.Error(), "unauthorized") {
		t.Errorf("error = %v, want unauthorized", err)
	}
}

func TestUpdateBookingStatusScopesNoteToActingRole(t *testing.T) {
	ownerID := uuid.New()
	caregiverID := uuid.New()

	f, booking := transitionFixture(entity.BookingStatusPending, testNow.Add(time.Hour), ownerID, caregiverID)

	var gotRole entity.UserRole
	var gotNote *string
	f.booking.updateStatusFn = func(ctx context.Context, id uuid.UUID, status entity.BookingStatus, role entity.UserRole, note *string) error {
		gotRole = role
		gotNote = note
		return nil
	}

	note := "vet cleared him for walks"
	_, err := f.svc.UpdateBookingStatus(context.Background(), ownerID, booking.ID.String(),
		&request.UpdateBookingStatusRequest{Status: "cancelled", Note: &note})
	if err != nil {
		t.Fatalf("cancel with note: %v", err)
	}

	if gotRole != entity.RoleOwner {
		t.Errorf("acting role = %s, want owner", gotRole)
	}
	if gotNote == nil || *gotNote != note {
		t.Errorf("note = %v, want %q", gotNote, note)
	}
}

// ---- delete ----

func TestDeleteBookingByEitherParticipant(t *testing.T) {
	ownerID := uuid.New()
	caregiverID := uuid.New()

	for _, actor := range []uuid.UUID{ownerID, caregiverID} {
		f, booking := transitionFixture(entity.BookingStatusCompleted, testNow.Add(-48*time.Hour), ownerID, caregiverID)

		deleted := false
		f.booking.deleteFn = func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		}

		if err := f.svc.DeleteBooking(context.Background(), actor, booking.ID.String()); err != nil {
			t.Fatalf("delete as %s: %v", actor, err)
		}
		if !deleted {
			t.Error("delete never reached the repository")
		}
		if ops := f.publisher.ops(); len(ops) != 1 || ops[0] != "DELETE" {
			t.Errorf("published ops = %v, want [DELETE]", ops)
		}
	}
}

func TestDeleteBookingRejectsNonParticipant(t *testing.T) {
	f, booking := transitionFixture(entity.BookingStatusPending, testNow.Add(time.Hour), uuid.New(), uuid.New())

	err := f.svc.DeleteBooking(context.Background(), uuid.New(), booking.ID.String())
	if err == nil || !strings.Contains(err.Error(), "unauthorized") {
		t.Errorf("error = %v, want unauthorized", err)
	}
}

// ---- reads ----

func TestGetBookingsNilIdentityReturnsEmptyWithoutQuery(t *testing.T) {
	f := newBookingFixture()

	resp, err := f.svc.GetBookings(context.Background(), uuid.Nil, store.ViewAll)
	if err != nil {
		t.Fatalf("GetBookings: %v", err)
	}
	if len(resp.Bookings) != 0 {
		t.Errorf("bookings len = %d, want 0", len(resp.Bookings))
	}
	if f.repoCalls() != 0 {
		t.Errorf("nil identity caused %d repository calls, want 0", f.repoCalls())
	}
}

func TestGetBookingsFiltersByView(t *testing.T) {
	userID := uuid.New()
	future := testNow.Add(24 * time.Hour)

	list := []*entity.BookingDetail{
		{Booking: entity.Booking{Base: entity.Base{ID: uuid.New()}, Status: entity.BookingStatusPending, StartDate: future, EndDate: future.Add(time.Hour)}},
		{Booking: entity.Booking{Base: entity.Base{ID: uuid.New()}, Status: entity.BookingStatusConfirmed, StartDate: future, EndDate: future.Add(time.Hour)}},
		{Booking: entity.Booking{Base: entity.Base{ID: uuid.New()}, Status: entity.BookingStatusCompleted, StartDate: testNow.Add(-24 * time.Hour), EndDate: testNow.Add(-23 * time.Hour)}},
	}

	f := newBookingFixture()
	f.booking.findByPartFn = func(ctx context.Context, id uuid.UUID) ([]*entity.BookingDetail, error) {
		return list, nil
	}

	resp, err := f.svc.GetBookings(context.Background(), userID, store.ViewPending)
	if err != nil {
		t.Fatalf("GetBookings: %v", err)
	}
	if len(resp.Bookings) != 1 {
		t.Errorf("pending view len = %d, want 1", len(resp.Bookings))
	}

	if _, err := f.svc.GetBookings(context.Background(), userID, store.View("nonsense")); err == nil {
		t.Error("expected error for unknown view")
	}
}

func TestGetDashboard(t *testing.T) {
	userID := uuid.New()

	f := newBookingFixture()
	f.booking.findByPartFn = func(ctx context.Context, id uuid.UUID) ([]*entity.BookingDetail, error) {
		return []*entity.BookingDetail{
			{Booking: entity.Booking{Base: entity.Base{ID: uuid.New()}, Status: entity.BookingStatusCompleted, TotalAmount: 40, EndDate: testNow.Add(-time.Hour)}},
			{Booking: entity.Booking{Base: entity.Base{ID: uuid.New()}, Status: entity.BookingStatusCompleted, TotalAmount: 60, EndDate: testNow.Add(-time.Hour)}},
			{Booking: entity.Booking{Base: entity.Base{ID: uuid.New()}, Status: entity.BookingStatusCancelled, TotalAmount: 99, EndDate: testNow.Add(-time.Hour)}},
		}, nil
	}

	stats, err := f.svc.GetDashboard(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if stats.Total != 3 || stats.Completed != 2 {
		t.Errorf("stats = %+v, want total 3 completed 2", stats)
	}
	if stats.Earnings != 100 {
		t.Errorf("earnings = %v, want 100 (cancelled excluded)", stats.Earnings)
	}
}

func TestTimeSlots(t *testing.T) {
	f := newBookingFixture()

	slots := f.svc.TimeSlots()
	if len(slots) != 12 {
		t.Fatalf("len = %d, want 12 hourly slots", len(slots))
	}
	if slots[0] != "09:00" || slots[len(slots)-1] != "20:00" {
		t.Errorf("slots range %s..%s, want 09:00..20:00", slots[0], slots[len(slots)-1])
	}

	// callers must not be able to mutate the schedule
	slots[0] = "03:00"
	if f.svc.TimeSlots()[0] != "09:00" {
		t.Error("TimeSlots returned shared backing array")
	}
}
