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

type RoleRepository interface {
	Create(ctx context.Context, assignment *entity.RoleAssignment) error
	// FindByUserID returns (nil, nil) when the identity has no role row.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.RoleAssignment, error)
}

type roleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoleRepository(db database.PgxIface, log *zap.Logger) RoleRepository {
	return &roleRepository{
		db:  db,
		log: log.With(zap.String("repository", "role")),
	}
}

func (r *roleRepository) Create(ctx context.Context, assignment *entity.RoleAssignment) error {
	query := `
		INSERT INTO user_roles (id, user_id, role, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		assignment.ID,
		assignment.UserID,
		assignment.Role,
		assignment.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create role assignment",
			zap.Error(err),
			zap.String("user_id", assignment.UserID.String()),
			zap.String("role", string(assignment.Role)),
		)
		return fmt.Errorf("create role for user %s: %w", assignment.UserID.String(), err)
	}

	return nil
}

func (r *roleRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.RoleAssignment, error) {
	query := `
		SELECT id, user_id, role, created_at
		FROM user_roles
		WHERE user_id = $1
	`

	var assignment entity.RoleAssignment
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&assignment.ID,
		&assignment.UserID,
		&assignment.Role,
		&assignment.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find role by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find role for user %s: %w", userID.String(), err)
	}

	return &assignment, nil
}
