package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
	"github.com/SscSPs/content_platform_app/internal/utils/slug"
)

// DefaultCacheTTLSeconds applies when a tenant enables caching without a TTL.
const DefaultCacheTTLSeconds = 3600

// MaxCacheTTLSeconds caps the per-tenant TTL at seven days.
const MaxCacheTTLSeconds = 7 * 24 * 3600

// Tenant is an isolated publication. Every article, user and schedule is
// scoped to exactly one tenant.
type Tenant struct {
	TenantID string         `json:"tenantID"`
	Name     string         `json:"name"`
	Slug     string         `json:"slug"`
	Domain   *string        `json:"domain,omitempty"`
	Logo     *string        `json:"logo,omitempty"`
	Settings TenantSettings `json:"settings"`
	IsActive bool           `json:"isActive"`
	AuditFields
}

// TenantSettings controls which content a tenant accepts and which features it runs.
type TenantSettings struct {
	AllowedArticleTypes []ArticleType  `json:"allowedArticleTypes"`
	Theme               *TenantTheme   `json:"theme,omitempty"`
	Features            TenantFeatures `json:"features"`
	Caching             CacheSettings  `json:"caching"`
}

type TenantTheme struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}

type TenantFeatures struct {
	Scheduling     bool `json:"scheduling"`
	Analytics      bool `json:"analytics"`
	PremiumContent bool `json:"premiumContent"`
	MultiLanguage  bool `json:"multiLanguage"`
}

type CacheSettings struct {
	Enabled    bool `json:"enabled"`
	TTLSeconds int  `json:"ttlSeconds"`
}

// TTL converts the configured seconds, falling back to the default.
func (c CacheSettings) TTL() time.Duration {
	switch {
	case c.TTLSeconds <= 0:
		return DefaultCacheTTLSeconds * time.Second
	case c.TTLSeconds > MaxCacheTTLSeconds:
		// settings stored before the cap existed are not re-validated on read
		return MaxCacheTTLSeconds * time.Second
	}
	return time.Duration(c.TTLSeconds) * time.Second
}

// DefaultTenantSettings enables every article type, scheduling, analytics and caching.
func DefaultTenantSettings() TenantSettings {
	return TenantSettings{
		AllowedArticleTypes: AllArticleTypes(),
		Features:            TenantFeatures{Scheduling: true, Analytics: true},
		Caching:             CacheSettings{Enabled: true, TTLSeconds: DefaultCacheTTLSeconds},
	}
}

// Validate rejects unknown article types and cache TTLs outside 0..MaxCacheTTLSeconds.
func (s TenantSettings) Validate() error {
	if len(s.AllowedArticleTypes) == 0 {
		return apperrors.NewValidationFailedError("at least one article type must be allowed")
	}
	for _, t := range s.AllowedArticleTypes {
		if !t.IsValid() {
			return apperrors.NewValidationFailedError(fmt.Sprintf("unknown article type %q", t))
		}
	}
	if s.Caching.TTLSeconds < 0 {
		return apperrors.NewValidationFailedError("cache ttl must not be negative")
	}
	if s.Caching.TTLSeconds > MaxCacheTTLSeconds {
		return apperrors.NewValidationFailedError(fmt.Sprintf("cache ttl must not exceed %d seconds", MaxCacheTTLSeconds))
	}
	return nil
}

// NewTenant builds an active tenant; an empty slug is derived from the name.
func NewTenant(tenantID, name, tenantSlug string, domain, logo *string, settings *TenantSettings, createdBy string, now time.Time) (Tenant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Tenant{}, apperrors.NewValidationFailedError("tenant name is required")
	}
	if tenantSlug == "" {
		tenantSlug = slug.Generate(name)
	}
	if !slug.Valid(tenantSlug) {
		return Tenant{}, apperrors.NewValidationFailedError(fmt.Sprintf("invalid tenant slug %q", tenantSlug))
	}
	s := DefaultTenantSettings()
	if settings != nil {
		s = *settings
	}
	if err := s.Validate(); err != nil {
		return Tenant{}, err
	}
	return Tenant{
		TenantID:    tenantID,
		Name:        name,
		Slug:        tenantSlug,
		Domain:      domain,
		Logo:        logo,
		Settings:    s,
		IsActive:    true,
		AuditFields: NewAuditFields(createdBy, now),
	}, nil
}

// AllowsArticleType reports whether new articles of t may be created.
func (t Tenant) AllowsArticleType(at ArticleType) bool {
	return slices.Contains(t.Settings.AllowedArticleTypes, at)
}

// WithSettings returns a copy carrying validated new settings.
func (t Tenant) WithSettings(settings TenantSettings, actorID string, now time.Time) (Tenant, error) {
	if err := settings.Validate(); err != nil {
		return Tenant{}, err
	}
	settings.AllowedArticleTypes = slices.Clone(settings.AllowedArticleTypes)
	t.Settings = settings
	t.Touch(actorID, now)
	return t, nil
}

// Deactivate returns a copy that rejects further content operations.
func (t Tenant) Deactivate(actorID string, now time.Time) Tenant {
	t.IsActive = false
	t.Touch(actorID, now)
	return t
}

// EnsureActive fails with a validation error on a deactivated tenant.
func (t Tenant) EnsureActive() error {
	if !t.IsActive {
		return apperrors.NewValidationFailedError(fmt.Sprintf("tenant %s is inactive", t.TenantID))
	}
	return nil
}
