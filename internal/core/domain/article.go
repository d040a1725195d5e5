package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
	"github.com/SscSPs/content_platform_app/internal/utils/slug"
)

// ArticleStatus is the workflow state of an article.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusReview    ArticleStatus = "review"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

// AllStatuses lists the workflow states in lifecycle order.
func AllStatuses() []ArticleStatus {
	return []ArticleStatus{StatusDraft, StatusReview, StatusPublished, StatusArchived}
}

func (s ArticleStatus) IsValid() bool {
	return slices.Contains(AllStatuses(), s)
}

// AccessControl decides who may read an article once it is visible.
type AccessControl string

const (
	AccessPublic        AccessControl = "public"
	AccessLoginRequired AccessControl = "login_required"
	AccessRoleBased     AccessControl = "role_based"
	AccessPremium       AccessControl = "premium"
)

// ArticleBase holds the caller-editable fields shared by every article type.
type ArticleBase struct {
	Title         string         `json:"title" validate:"required,max=300"`
	Slug          string         `json:"slug" validate:"required,max=120"`
	AccessControl AccessControl  `json:"accessControl" validate:"required,oneof=public login_required role_based premium"`
	Content       string         `json:"content"`
	Excerpt       *string        `json:"excerpt,omitempty" validate:"omitempty,max=1000"`
	FeaturedImage *string        `json:"featuredImage,omitempty" validate:"omitempty,url"`
	Tags          []string       `json:"tags" validate:"max=50,dive,required,max=64"`
	Categories    []string       `json:"categories" validate:"max=20,dive,required,max=64"`
	Metadata      map[string]any `json:"metadata"`
	ExpiresAt     *time.Time     `json:"expiresAt,omitempty"`
	AllowedRoles  []Role         `json:"allowedRoles,omitempty"`
}

// Article is one piece of content. Variant carries the type-specific fields
// and is the only source of the article's type.
type Article struct {
	ArticleID string `json:"id"`
	TenantID  string `json:"tenantId"`
	AuthorID  string `json:"authorId"`
	ArticleBase
	Status             ArticleStatus  `json:"status"`
	PublishedAt        *time.Time     `json:"publishedAt,omitempty"`
	ScheduledPublishAt *time.Time     `json:"scheduledPublishAt,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	ViewCount          int64          `json:"viewCount"`
	Variant            ArticleVariant `json:"-"`
}

// Type is derived from the variant, so it cannot drift from the payload.
func (a Article) Type() ArticleType {
	if a.Variant == nil {
		return ""
	}
	return a.Variant.Type()
}

// NewArticle builds a draft of type t. details must hold only fields of
// that type and must satisfy its required fields.
func NewArticle(articleID, tenantID, authorID string, t ArticleType, base ArticleBase, details json.RawMessage, now time.Time) (Article, error) {
	variant, err := DecodeVariant(t, details)
	if err != nil {
		return Article{}, err
	}
	if base.Slug == "" {
		base.Slug = slug.Generate(base.Title)
	}
	ts := stamp(time.Time{}, now)
	a := Article{
		ArticleID:   articleID,
		TenantID:    tenantID,
		AuthorID:    authorID,
		ArticleBase: base.clone(),
		Status:      StatusDraft,
		CreatedAt:   ts,
		UpdatedAt:   ts,
		Variant:     variant,
	}
	if err := a.Validate(); err != nil {
		return Article{}, err
	}
	return a, nil
}

// Validate checks the base fields, the access rules and the variant.
func (a Article) Validate() error {
	if a.TenantID == "" || a.AuthorID == "" {
		return apperrors.NewValidationFailedError("tenant and author are required")
	}
	if err := validateStruct(a.ArticleBase); err != nil {
		return err
	}
	if !slug.Valid(a.Slug) {
		return apperrors.NewValidationFailedError(fmt.Sprintf("invalid slug %q", a.Slug))
	}
	for _, r := range a.AllowedRoles {
		if !r.IsValid() {
			return apperrors.NewValidationFailedError(fmt.Sprintf("unknown role %q in allowedRoles", r))
		}
	}
	if a.AccessControl == AccessRoleBased && len(a.AllowedRoles) == 0 {
		return apperrors.NewValidationFailedError("role_based access requires at least one allowed role")
	}
	if a.ExpiresAt != nil && a.ScheduledPublishAt != nil && !a.ExpiresAt.After(*a.ScheduledPublishAt) {
		return apperrors.NewValidationFailedError("expiresAt must be after scheduledPublishAt")
	}
	if a.Variant == nil {
		return apperrors.NewValidationFailedError("article details are required")
	}
	return validateVariant(a.Variant)
}

// CheckTenant applies the tenant's content rules. Disallowed types only
// block creation; existing articles of that type stay editable.
func (a Article) CheckTenant(t Tenant, creating bool) error {
	if a.TenantID != t.TenantID {
		return apperrors.NewForbiddenError("article belongs to another tenant")
	}
	if err := t.EnsureActive(); err != nil {
		return err
	}
	if creating && !t.AllowsArticleType(a.Type()) {
		return apperrors.NewValidationFailedError(fmt.Sprintf("article type %q is not enabled for tenant %s", a.Type(), t.TenantID))
	}
	if a.AccessControl == AccessPremium && !t.Settings.Features.PremiumContent {
		return apperrors.NewValidationFailedError("premium content is not enabled for this tenant")
	}
	return nil
}

// ArticlePatch lists optional changes. Nil fields are left untouched.
type ArticlePatch struct {
	Type           *ArticleType
	Title          *string
	Slug           *string
	AccessControl  *AccessControl
	Content        *string
	Excerpt        *string
	FeaturedImage  *string
	Tags           []string
	Categories     []string
	Metadata       map[string]any
	ExpiresAt      *time.Time
	ClearExpiresAt bool // removes the expiry; cannot be combined with ExpiresAt
	AllowedRoles   []Role
	Details        json.RawMessage
}

// Apply returns a new article with the patch merged in and UpdatedAt
// refreshed. The receiver is not modified.
func (a Article) Apply(p ArticlePatch, now time.Time) (Article, error) {
	if p.Type != nil && *p.Type != a.Type() {
		return Article{}, apperrors.NewValidationFailedError(fmt.Sprintf("article type cannot change from %q to %q", a.Type(), *p.Type))
	}
	if p.ClearExpiresAt && p.ExpiresAt != nil {
		return Article{}, apperrors.NewValidationFailedError("expiresAt and clearExpiresAt are mutually exclusive")
	}
	next := a
	next.ArticleBase = a.ArticleBase.clone()
	if p.Title != nil {
		next.Title = *p.Title
	}
	if p.Slug != nil {
		next.Slug = *p.Slug
	}
	if p.AccessControl != nil {
		next.AccessControl = *p.AccessControl
	}
	if p.Content != nil {
		next.Content = *p.Content
	}
	if p.Excerpt != nil {
		next.Excerpt = emptyToNil(*p.Excerpt)
	}
	if p.FeaturedImage != nil {
		next.FeaturedImage = emptyToNil(*p.FeaturedImage)
	}
	if p.Tags != nil {
		next.Tags = slices.Clone(p.Tags)
	}
	if p.Categories != nil {
		next.Categories = slices.Clone(p.Categories)
	}
	if p.Metadata != nil {
		next.Metadata = maps.Clone(p.Metadata)
	}
	if p.ExpiresAt != nil {
		next.ExpiresAt = p.ExpiresAt
	}
	if p.ClearExpiresAt {
		next.ExpiresAt = nil
	}
	if p.AllowedRoles != nil {
		next.AllowedRoles = slices.Clone(p.AllowedRoles)
	}
	if len(p.Details) > 0 {
		variant, err := MergeVariant(a.Variant, p.Details)
		if err != nil {
			return Article{}, err
		}
		next.Variant = variant
	}
	next.UpdatedAt = stamp(a.UpdatedAt, now)
	if err := next.Validate(); err != nil {
		return Article{}, err
	}
	return next, nil
}

// EnsureDeletable rejects removal of articles that left draft or have views.
func (a Article) EnsureDeletable() error {
	if a.Status != StatusDraft {
		return apperrors.NewValidationFailedError(fmt.Sprintf("article in status %q cannot be deleted, archive it instead", a.Status))
	}
	if a.ViewCount > 0 {
		return apperrors.NewValidationFailedError("article has recorded views, archive it instead")
	}
	return nil
}

// IsExpired reports whether a published article has passed its expiry.
func (a Article) IsExpired(now time.Time) bool {
	return a.Status == StatusPublished && a.ExpiresAt != nil && !a.ExpiresAt.After(now)
}

// MarshalJSON writes the base fields flat plus "type" and "details".
func (a Article) MarshalJSON() ([]byte, error) {
	type articleAlias Article
	return json.Marshal(struct {
		articleAlias
		Type    ArticleType    `json:"type"`
		Details ArticleVariant `json:"details"`
	}{
		articleAlias: articleAlias(a),
		Type:         a.Type(),
		Details:      a.Variant,
	})
}

// UnmarshalJSON is the inverse of MarshalJSON; details are decoded strictly
// into the variant named by "type".
func (a *Article) UnmarshalJSON(data []byte) error {
	type articleAlias Article
	aux := struct {
		*articleAlias
		Type    ArticleType     `json:"type"`
		Details json.RawMessage `json:"details"`
	}{articleAlias: (*articleAlias)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	variant, err := decodeVariantFields(aux.Type, aux.Details)
	if err != nil {
		return err
	}
	a.Variant = variant
	return nil
}

// DecodeVariant decodes details into the variant of type t and validates it.
func DecodeVariant(t ArticleType, details json.RawMessage) (ArticleVariant, error) {
	v, err := decodeVariantFields(t, details)
	if err != nil {
		return nil, err
	}
	if err := validateVariant(v); err != nil {
		return nil, err
	}
	return v, nil
}

// RestoreVariant rebuilds stored details without re-running validation, so
// rows written under older rules stay readable.
func RestoreVariant(t ArticleType, details json.RawMessage) (ArticleVariant, error) {
	return decodeVariantFields(t, details)
}

// MergeVariant overlays details onto a copy of existing. Fields that do not
// belong to the existing variant are rejected.
func MergeVariant(existing ArticleVariant, details json.RawMessage) (ArticleVariant, error) {
	if existing == nil {
		return nil, apperrors.NewValidationFailedError("article has no details to merge into")
	}
	current, err := json.Marshal(existing)
	if err != nil {
		return nil, fmt.Errorf("encoding %s details: %w", existing.Type(), err)
	}
	merged, err := decodeVariantFields(existing.Type(), current)
	if err != nil {
		return nil, err
	}
	if err := decodeStrict(details, merged); err != nil {
		return nil, err
	}
	if err := validateVariant(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func decodeVariantFields(t ArticleType, details json.RawMessage) (ArticleVariant, error) {
	factory, ok := variantFactories[t]
	if !ok {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unknown article type %q", t))
	}
	v := factory()
	if err := decodeStrict(details, v); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeStrict(details json.RawMessage, target ArticleVariant) error {
	trimmed := bytes.TrimSpace(details)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return apperrors.NewValidationFailedError(fmt.Sprintf("invalid %s details: %v", target.Type(), err))
	}
	// details must be exactly one JSON object
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return apperrors.NewValidationFailedError(fmt.Sprintf("invalid %s details: unexpected data after object", target.Type()))
	}
	return nil
}

func validateVariant(v ArticleVariant) error {
	if err := validateStruct(v); err != nil {
		return err
	}
	if c, ok := v.(variantChecker); ok {
		return c.check()
	}
	return nil
}

func (b ArticleBase) clone() ArticleBase {
	b.Tags = cloneOrEmpty(b.Tags)
	b.Categories = cloneOrEmpty(b.Categories)
	b.AllowedRoles = slices.Clone(b.AllowedRoles)
	if b.Metadata == nil {
		b.Metadata = map[string]any{}
	} else {
		b.Metadata = maps.Clone(b.Metadata)
	}
	return b
}

func cloneOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// stamp truncates to the storage precision and keeps the result strictly
// after prev, so UpdatedAt always changes on mutation.
func stamp(prev, now time.Time) time.Time {
	t := now.UTC().Truncate(time.Microsecond)
	if !t.After(prev) {
		t = prev.Add(time.Microsecond)
	}
	return t
}
