package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vinodbargaje/happy-paws-connect/internal/data/entity"
	"github.com/vinodbargaje/happy-paws-connect/internal/data/repository"
	"github.com/vinodbargaje/happy-paws-connect/internal/dto/request"
	"github.com/vinodbargaje/happy-paws-connect/internal/dto/response"
	"github.com/vinodbargaje/happy-paws-connect/internal/realtime"
	"github.com/vinodbargaje/happy-paws-connect/internal/store"
	"github.com/vinodbargaje/happy-paws-connect/pkg/metrics"
	"github.com/vinodbargaje/happy-paws-connect/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChangePublisher emits a change signal after a booking mutation so connected
// dashboards re-fetch. Implemented by realtime.Notifier.
type ChangePublisher interface {
	Publish(ctx context.Context, op string, bookingID uuid.UUID)
}

// statusMessages are the fixed per-status confirmations returned after a
// successful transition.
var statusMessages = map[entity.BookingStatus]string{
	entity.BookingStatusPending:    "Booking marked as pending",
	entity.BookingStatusConfirmed:  "Booking confirmed!",
	entity.BookingStatusInProgress: "Booking started",
	entity.BookingStatusCompleted:  "Booking completed!",
	entity.BookingStatusCancelled:  "Booking cancelled",
}

// timeSlots are the bookable start times, hourly from 09:00 through 20:00.
var timeSlots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00", "14:00",
	"15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
}

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	// UpdateBookingStatus drives one transition and returns the fixed
	// confirmation message for the new status.
	UpdateBookingStatus(ctx context.Context, userID uuid.UUID, bookingID string, req *request.UpdateBookingStatusRequest) (string, error)
	DeleteBooking(ctx context.Context, userID uuid.UUID, bookingID string) error
	GetBookings(ctx context.Context, userID uuid.UUID, view store.View) (*response.BookingListResponse, error)
	GetDashboard(ctx context.Context, userID uuid.UUID) (*store.Stats, error)
	TimeSlots() []string
}

type bookingService struct {
	repo      *repository.Repository
	publisher ChangePublisher
	log       *zap.Logger
	now       func() time.Time

	// inflight guards against double-submit: one booking creation per
	// identity at a time, rejected rather than queued.
	mu       sync.Mutex
	inflight map[uuid.UUID]struct{}
}

func NewBookingService(repo *repository.Repository, publisher ChangePublisher, log *zap.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		publisher: publisher,
		log:       log.With(zap.String("service", "booking")),
		now:       time.Now,
		inflight:  make(map[uuid.UUID]struct{}),
	}
}

func (s *bookingService) TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// The identity guard comes before anything else: no session, no
	// repository calls at all.
	if userID == uuid.Nil {
		return nil, fmt.Errorf("unauthorized: no identity")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("CreateBooking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if !s.acquire(userID) {
		return nil, fmt.Errorf("a booking request is already being processed")
	}
	defer s.release(userID)

	caregiverID, err := uuid.Parse(req.CaregiverID)
	if err != nil {
		return nil, fmt.Errorf("invalid caregiver ID %s", req.CaregiverID)
	}
	petID, err := uuid.Parse(req.PetID)
	if err != nil {
		return nil, fmt.Errorf("invalid pet ID %s", req.PetID)
	}

	profile, err := s.repo.Caregiver.FindByUserID(ctx, caregiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to load caregiver")
	}
	if profile == nil {
		return nil, fmt.Errorf("caregiver %s not found", req.CaregiverID)
	}

	svc, ok := profile.OfferedService(req.ServiceType)
	if !ok {
		return nil, fmt.Errorf("caregiver does not offer service %s", req.ServiceType)
	}

	pet, err := s.repo.Pet.FindByID(ctx, petID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pet")
	}
	if pet == nil || pet.OwnerID != userID {
		return nil, fmt.Errorf("pet %s not found", req.PetID)
	}

	start, err := s.resolveStart(req.Date, req.TimeSlot)
	if err != nil {
		return nil, err
	}
	end := start.Add(svc.SessionDuration())

	now := s.now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingRef:  utils.GenerateBookingRef(),
		OwnerID:     userID,
		CaregiverID: caregiverID,
		PetID:       petID,
		ServiceType: req.ServiceType,
		StartDate:   start,
		EndDate:     end,
		// every new booking starts pending, whatever the caller sends
		Status:      entity.BookingStatusPending,
		TotalAmount: svc.Price,
		Notes:       req.Notes,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking")
	}

	s.publisher.Publish(ctx, realtime.OpInsert, booking.ID)
	metrics.BookingCreated()

	s.log.Info("Booking created",
		zap.String("booking_ref", booking.BookingRef),
		zap.String("owner_id", userID.String()),
		zap.String("caregiver_id", caregiverID.String()),
		zap.String("service_type", req.ServiceType),
	)

	owner, err := s.repo.User.FindByID(ctx, userID)
	if err != nil || owner == nil {
		return nil, fmt.Errorf("failed to load booking parties")
	}
	caregiver, err := s.repo.User.FindByID(ctx, caregiverID)
	if err != nil || caregiver == nil {
		return nil, fmt.Errorf("failed to load booking parties")
	}

	detail := &entity.BookingDetail{
		Booking:   *booking,
		Owner:     partyFromUser(owner),
		Caregiver: partyFromUser(caregiver),
		Pet: &entity.PetSummary{
			ID:       pet.ID,
			Name:     pet.Name,
			PetType:  pet.PetType,
			Breed:    pet.Breed,
			PhotoURL: pet.PhotoURL,
		},
	}

	resp := response.BookingToResponse(detail)
	return &resp, nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, userID uuid.UUID, bookingID string, req *request.UpdateBookingStatusRequest) (string, error) {
	if userID == uuid.Nil {
		return "", fmt.Errorf("unauthorized: no identity")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return "", fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findParticipantBooking(ctx, userID, bookingID)
	if err != nil {
		return "", err
	}

	// role follows from the relation, not from the session
	actingRole := entity.RoleCaregiver
	if booking.OwnerID == userID {
		actingRole = entity.RoleOwner
	}

	target := entity.BookingStatus(req.Status)
	if !entity.RoleCanTransition(actingRole, booking.Status, target) {
		return "", fmt.Errorf("cannot change booking from %s to %s", booking.Status, target)
	}

	if actingRole == entity.RoleOwner && target == entity.BookingStatusCancelled &&
		!booking.StartDate.After(s.now()) {
		return "", fmt.Errorf("cannot cancel a booking that has already started")
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, target, actingRole, req.Note); err != nil {
		return "", fmt.Errorf("failed to update booking status")
	}

	s.publisher.Publish(ctx, realtime.OpUpdate, booking.ID)
	metrics.BookingTransition(string(target))

	s.log.Info("Booking status updated",
		zap.String("booking_id", booking.ID.String()),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(target)),
		zap.String("acting_role", string(actingRole)),
	)

	return statusMessages[target], nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, userID uuid.UUID, bookingID string) error {
	if userID == uuid.Nil {
		return fmt.Errorf("unauthorized: no identity")
	}

	booking, err := s.findParticipantBooking(ctx, userID, bookingID)
	if err != nil {
		return err
	}

	// either participant may remove the record, in any status
	if err := s.repo.Booking.Delete(ctx, booking.ID); err != nil {
		return fmt.Errorf("failed to delete booking")
	}

	s.publisher.Publish(ctx, realtime.OpDelete, booking.ID)
	metrics.BookingDeleted()

	return nil
}

func (s *bookingService) GetBookings(ctx context.Context, userID uuid.UUID, view store.View) (*response.BookingListResponse, error) {
	if userID == uuid.Nil {
		return &response.BookingListResponse{
			View:     string(view),
			Bookings: []response.BookingResponse{},
		}, nil
	}

	if !view.Valid() {
		return nil, fmt.Errorf("invalid view %s", view)
	}

	bookings, err := s.repo.Booking.FindByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings")
	}

	filtered := store.FilterByView(bookings, view, s.now())
	resp := response.BookingsToResponse(filtered)
	if resp == nil {
		resp = []response.BookingResponse{}
	}

	return &response.BookingListResponse{
		View:     string(view),
		Bookings: resp,
	}, nil
}

func (s *bookingService) GetDashboard(ctx context.Context, userID uuid.UUID) (*store.Stats, error) {
	if userID == uuid.Nil {
		return &store.Stats{}, nil
	}

	bookings, err := s.repo.Booking.FindByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings")
	}

	stats := store.ComputeStats(bookings, s.now())
	return &stats, nil
}

// findParticipantBooking resolves bookingID and enforces that userID is one of
// its parties.
func (s *bookingService) findParticipantBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID %s", bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if !booking.IsParticipant(userID) {
		return nil, fmt.Errorf("unauthorized: not a participant of booking %s", bookingID)
	}

	return booking, nil
}

// resolveStart assembles the start timestamp from the form's date and slot.
func (s *bookingService) resolveStart(date, slot string) (time.Time, error) {
	valid := false
	for _, t := range timeSlots {
		if t == slot {
			valid = true
			break
		}
	}
	if !valid {
		return time.Time{}, fmt.Errorf("invalid time slot %s", slot)
	}

	start, err := time.Parse("2006-01-02 15:04", date+" "+slot)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid booking date %s", date)
	}

	if !start.After(s.now()) {
		return time.Time{}, fmt.Errorf("cannot book a time slot in the past")
	}

	return start, nil
}

func (s *bookingService) acquire(userID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[userID]; busy {
		return false
	}
	s.inflight[userID] = struct{}{}
	return true
}

func (s *bookingService) release(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, userID)
}

func partyFromUser(user *entity.User) *entity.PartySummary {
	return &entity.PartySummary{
		ID:        user.ID,
		FullName:  user.FullName,
		AvatarURL: user.AvatarURL,
		Phone:     user.Phone,
	}
}
