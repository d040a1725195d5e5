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

type PgxTenantRepository struct {
	BaseRepository
}

// newPgxTenantRepository creates a new repository for tenant data.
func newPgxTenantRepository(pool *pgxpool.Pool) *PgxTenantRepository {
	return &PgxTenantRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TenantRepositoryFacade = (*PgxTenantRepository)(nil)

const tenantSelectQuery = `
SELECT tenant_id, name, slug, domain, logo, settings, is_active,
	created_at, created_by, last_updated_at, last_updated_by
FROM tenants
`

func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	rows, err := r.Pool.Query(ctx, tenantSelectQuery+"WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tenant", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Tenant])
	if err != nil {
		return nil, errNoRowsToNotFound(err, "tenant "+tenantID)
	}
	tenant, err := mapping.ToDomainTenant(m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map tenant", err)
	}
	return &tenant, nil
}

func (r *PgxTenantRepository) ListTenants(ctx context.Context, limit, offset int) ([]domain.Tenant, error) {
	rows, err := r.Pool.Query(ctx, tenantSelectQuery+"ORDER BY name, tenant_id LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tenants", err)
	}
	defer rows.Close()
	modelTenants, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Tenant])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect tenant rows", err)
	}
	tenants, err := mapping.ToDomainTenantSlice(modelTenants)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map tenants", err)
	}
	return tenants, nil
}

func (r *PgxTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	return insertTenant(ctx, r.Pool, tenant)
}

func (r *PgxTenantRepository) SaveTenantWithAdmin(ctx context.Context, tenant domain.Tenant, admin *domain.User) error {
	return saveTenantWithAdmin(ctx, r.Pool, tenant, admin)
}

func saveTenantWithAdmin(ctx context.Context, db txStarter, tenant domain.Tenant, admin *domain.User) error {
	return runInTx(ctx, db, func(tx pgx.Tx) error {
		if err := insertTenant(ctx, tx, tenant); err != nil {
			return err
		}
		if admin == nil {
			return nil
		}
		return insertUser(ctx, tx, *admin)
	})
}

func insertTenant(ctx context.Context, db execer, tenant domain.Tenant) error {
	m, err := mapping.ToModelTenant(tenant)
	if err != nil {
		return apperrors.NewAppError(500, "failed to map tenant", err)
	}
	query := `
		INSERT INTO tenants (
			tenant_id, name, slug, domain, logo, settings, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = db.Exec(ctx, query,
		m.TenantID, m.Name, m.Slug, m.Domain, m.Logo, m.Settings, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError("tenant slug " + m.Slug + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save tenant", err)
	}
	return nil
}

func (r *PgxTenantRepository) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	m, err := mapping.ToModelTenant(tenant)
	if err != nil {
		return apperrors.NewAppError(500, "failed to map tenant", err)
	}
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE tenants
		SET name = $1, domain = $2, logo = $3, settings = $4, is_active = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE tenant_id = $8;`,
		m.Name, m.Domain, m.Logo, m.Settings, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy, m.TenantID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update tenant", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("tenant " + m.TenantID + " not found")
	}
	return nil
}
