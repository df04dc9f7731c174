package repository

import (
	"context"
	"fmt"

	"github.com/vinodbargaje/happy-paws-connect/internal/data/entity"
	"github.com/vinodbargaje/happy-paws-connect/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	// FindByParticipant returns every booking where userID is owner or
	// caregiver, joined with pet and both parties' profiles, ordered by
	// start_date ascending. Same call shape regardless of role.
	FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error)
	// UpdateStatus sets the status and, when note is non-nil, exactly one of
	// owner_notes/caregiver_notes depending on the acting role. Never both.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus, role entity.UserRole, note *string) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Maintenance queries used by the sweeper job
	ExpireStalePending(ctx context.Context) (int64, error)
	CountInServiceWindow(ctx context.Context) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, booking_ref, owner_id, caregiver_id, pet_id, service_type,
	start_date, end_date, status, total_amount, notes, owner_notes, caregiver_notes,
	created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.BookingRef,
		&booking.OwnerID,
		&booking.CaregiverID,
		&booking.PetID,
		&booking.ServiceType,
		&booking.StartDate,
		&booking.EndDate,
		&booking.Status,
		&booking.TotalAmount,
		&booking.Notes,
		&booking.OwnerNotes,
		&booking.CaregiverNotes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, booking_ref, owner_id, caregiver_id, pet_id, service_type,
		                      start_date, end_date, status, total_amount, notes,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.BookingRef,
		booking.OwnerID,
		booking.CaregiverID,
		booking.PetID,
		booking.ServiceType,
		booking.StartDate,
		booking.EndDate,
		booking.Status,
		booking.TotalAmount,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_ref", booking.BookingRef),
			zap.String("owner_id", booking.OwnerID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingRef, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error) {
	query := `
		SELECT b.id, b.booking_ref, b.owner_id, b.caregiver_id, b.pet_id, b.service_type,
		       b.start_date, b.end_date, b.status, b.total_amount, b.notes, b.owner_notes,
		       b.caregiver_notes, b.created_at, b.updated_at,
		       o.id, o.full_name, o.avatar_url, o.phone,
		       c.id, c.full_name, c.avatar_url, c.phone,
		       p.id, p.name, p.pet_type, p.breed, p.photo_url
		FROM bookings b
		JOIN users o ON o.id = b.owner_id
		JOIN users c ON c.id = b.caregiver_id
		LEFT JOIN pets p ON p.id = b.pet_id
		WHERE b.owner_id = $1 OR b.caregiver_id = $1
		ORDER BY b.start_date
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by participant",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by participant %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.BookingDetail
	for rows.Next() {
		var detail entity.BookingDetail
		var owner, caregiver entity.PartySummary
		var petID *uuid.UUID
		var petName, petType *string
		var petBreed, petPhoto *string

		err := rows.Scan(
			&detail.ID,
			&detail.BookingRef,
			&detail.OwnerID,
			&detail.CaregiverID,
			&detail.PetID,
			&detail.ServiceType,
			&detail.StartDate,
			&detail.EndDate,
			&detail.Status,
			&detail.TotalAmount,
			&detail.Notes,
			&detail.OwnerNotes,
			&detail.CaregiverNotes,
			&detail.CreatedAt,
			&detail.UpdatedAt,
			&owner.ID,
			&owner.FullName,
			&owner.AvatarURL,
			&owner.Phone,
			&caregiver.ID,
			&caregiver.FullName,
			&caregiver.AvatarURL,
			&caregiver.Phone,
			&petID,
			&petName,
			&petType,
			&petBreed,
			&petPhoto,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}

		detail.Owner = &owner
		detail.Caregiver = &caregiver
		if petID != nil {
			detail.Pet = &entity.PetSummary{
				ID:       *petID,
				Name:     *petName,
				PetType:  *petType,
				Breed:    petBreed,
				PhotoURL: petPhoto,
			}
		}

		bookings = append(bookings, &detail)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus, role entity.UserRole, note *string) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`
	args := []any{id, status}

	if note != nil {
		if role == entity.RoleCaregiver {
			query = `UPDATE bookings SET status = $2, caregiver_notes = $3, updated_at = NOW() WHERE id = $1`
		} else {
			query = `UPDATE bookings SET status = $2, owner_notes = $3, updated_at = NOW() WHERE id = $1`
		}
		args = append(args, note)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) ExpireStalePending(ctx context.Context) (int64, error) {
	query := `
		UPDATE bookings
		SET status = 'cancelled', updated_at = NOW()
		WHERE status = 'pending' AND end_date < NOW()
	`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to expire stale pending bookings", zap.Error(err))
		return 0, fmt.Errorf("expire stale pending bookings: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *bookingRepository) CountInServiceWindow(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE status IN ('confirmed', 'in_progress')
		  AND start_date < NOW()
		  AND end_date >= NOW()
	`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count in-service bookings", zap.Error(err))
		return 0, fmt.Errorf("count in-service bookings: %w", err)
	}

	return count, nil
}
