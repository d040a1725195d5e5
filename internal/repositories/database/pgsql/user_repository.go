package pgsql

import (
	"context"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
	"github.com/SscSPs/content_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/content_platform_app/internal/core/ports/repositories"
	"github.com/SscSPs/content_platform_app/internal/models"
	"github.com/SscSPs/content_platform_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userSelectQuery = `
SELECT user_id, tenant_id, email, name, role, permissions, is_active,
	created_at, created_by, last_updated_at, last_updated_by
FROM users
`

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return insertUser(ctx, r.Pool, user)
}

func insertUser(ctx context.Context, db execer, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (
			user_id, tenant_id, email, name, role, permissions, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := db.Exec(ctx, query,
		m.UserID, m.TenantID, m.Email, m.Name, m.Role, m.Permissions, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError("user with email " + m.Email + " already exists in tenant")
		}
		return apperrors.NewAppError(500, "failed to save user", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	rows, err := r.Pool.Query(ctx, userSelectQuery+"WHERE user_id = $1", userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query user", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, errNoRowsToNotFound(err, "user "+userID)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) ListUsersByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.User, error) {
	rows, err := r.Pool.Query(ctx,
		userSelectQuery+"WHERE tenant_id = $1 ORDER BY name, user_id LIMIT $2 OFFSET $3",
		tenantID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users", err)
	}
	defer rows.Close()
	modelUsers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect user rows", err)
	}
	return mapping.ToDomainUserSlice(modelUsers), nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE users
		SET name = $1, role = $2, permissions = $3, is_active = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE user_id = $7 AND tenant_id = $8;`,
		m.Name, m.Role, m.Permissions, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy, m.UserID, m.TenantID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update user", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + m.UserID + " not found")
	}
	return nil
}
