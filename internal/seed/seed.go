// Package seed loads tenants and users from a YAML file. It writes through
// the repositories directly, which is how the first super admin comes to
// exist before anyone can authenticate.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// File is the top-level document.
type File struct {
	Tenants []Tenant `yaml:"tenants"`
}

type Tenant struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Slug   string `yaml:"slug"`
	Domain string `yaml:"domain"`
	// Settings uses the same keys as the JSON API, e.g. allowedArticleTypes.
	Settings map[string]any `yaml:"settings"`
	Users    []User         `yaml:"users"`
}

type User struct {
	ID    string      `yaml:"id"`
	Email string      `yaml:"email"`
	Name  string      `yaml:"name"`
	Role  domain.Role `yaml:"role"`
}

// TenantSaver and UserSaver are the slices of the repositories seeding needs.
type TenantSaver interface {
	SaveTenant(ctx context.Context, tenant domain.Tenant) error
}

type UserSaver interface {
	SaveUser(ctx context.Context, user domain.User) error
}

// Result counts what Apply did.
type Result struct {
	TenantsCreated int
	UsersCreated   int
	Skipped        int
}

// Load parses a seed document.
func Load(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

// Apply creates every tenant and user in f. Entries that already exist are
// skipped, so a file can be applied more than once. Missing ids are
// generated; users of an existing tenant are only added when the file names
// the tenant's id.
func Apply(ctx context.Context, f *File, tenants TenantSaver, users UserSaver, now time.Time) (Result, error) {
	var res Result
	for _, st := range f.Tenants {
		tenant, err := st.build(now)
		if err != nil {
			return res, fmt.Errorf("tenant %q: %w", st.Name, err)
		}
		created, err := skipDuplicate(tenants.SaveTenant(ctx, tenant))
		if err != nil {
			return res, fmt.Errorf("failed to save tenant %q: %w", tenant.Slug, err)
		}
		if created {
			res.TenantsCreated++
		} else {
			res.Skipped++
			if st.ID == "" {
				// The stored tenant has an id we never saw.
				res.Skipped += len(st.Users)
				continue
			}
		}

		for _, su := range st.Users {
			user, err := domain.NewUser(idOrNew(su.ID), tenant.TenantID, su.Email, su.Name, su.Role, domain.SystemActorID, now)
			if err != nil {
				return res, fmt.Errorf("user %q of tenant %q: %w", su.Email, tenant.Slug, err)
			}
			created, err := skipDuplicate(users.SaveUser(ctx, user))
			if err != nil {
				return res, fmt.Errorf("failed to save user %q: %w", su.Email, err)
			}
			if created {
				res.UsersCreated++
			} else {
				res.Skipped++
			}
		}
	}
	return res, nil
}

func (st Tenant) build(now time.Time) (domain.Tenant, error) {
	var settings *domain.TenantSettings
	if st.Settings != nil {
		// Round-trip through JSON so the seed file shares the API's keys.
		raw, err := json.Marshal(st.Settings)
		if err != nil {
			return domain.Tenant{}, fmt.Errorf("invalid settings: %w", err)
		}
		settings = &domain.TenantSettings{}
		if err := json.Unmarshal(raw, settings); err != nil {
			return domain.Tenant{}, fmt.Errorf("invalid settings: %w", err)
		}
	}
	var tenantDomain *string
	if st.Domain != "" {
		tenantDomain = &st.Domain
	}
	return domain.NewTenant(idOrNew(st.ID), st.Name, st.Slug, tenantDomain, nil, settings, domain.SystemActorID, now)
}

func idOrNew(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func skipDuplicate(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, apperrors.ErrDuplicate):
		return false, nil
	default:
		return false, err
	}
}
