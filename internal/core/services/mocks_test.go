package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/SscSPs/content_platform_app/internal/core/ports"
	portsrepo "github.com/SscSPs/content_platform_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsersByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock TenantRepository ---
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	var tenant *domain.Tenant
	if args.Get(0) != nil {
		tenant = args.Get(0).(*domain.Tenant)
	}
	return tenant, args.Error(1)
}

func (m *MockTenantRepository) ListTenants(ctx context.Context, limit, offset int) ([]domain.Tenant, error) {
	args := m.Called(ctx, limit, offset)
	var tenants []domain.Tenant
	if args.Get(0) != nil {
		tenants = args.Get(0).([]domain.Tenant)
	}
	return tenants, args.Error(1)
}

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) SaveTenantWithAdmin(ctx context.Context, tenant domain.Tenant, admin *domain.User) error {
	args := m.Called(ctx, tenant, admin)
	return args.Error(0)
}

func (m *MockTenantRepository) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

// --- Mock ArticleRepository ---
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) FindArticleByID(ctx context.Context, tenantID, articleID string) (*domain.Article, error) {
	args := m.Called(ctx, tenantID, articleID)
	var article *domain.Article
	if args.Get(0) != nil {
		article = args.Get(0).(*domain.Article)
	}
	return article, args.Error(1)
}

func (m *MockArticleRepository) ListArticles(ctx context.Context, tenantID string, filter domain.ArticleFilter) (domain.ArticlePage, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(domain.ArticlePage), args.Error(1)
}

func (m *MockArticleRepository) ListExpiredArticles(ctx context.Context, now time.Time, limit int) ([]domain.Article, error) {
	args := m.Called(ctx, now, limit)
	var articles []domain.Article
	if args.Get(0) != nil {
		articles = args.Get(0).([]domain.Article)
	}
	return articles, args.Error(1)
}

func (m *MockArticleRepository) SaveArticle(ctx context.Context, article domain.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) UpdateArticle(ctx context.Context, article domain.Article, expectedUpdatedAt time.Time) error {
	args := m.Called(ctx, article, expectedUpdatedAt)
	return args.Error(0)
}

func (m *MockArticleRepository) DeleteArticle(ctx context.Context, tenantID, articleID string) error {
	args := m.Called(ctx, tenantID, articleID)
	return args.Error(0)
}

func (m *MockArticleRepository) IncrementViewCount(ctx context.Context, tenantID, articleID string) error {
	args := m.Called(ctx, tenantID, articleID)
	return args.Error(0)
}

// --- Mock WorkflowRepository ---
type MockWorkflowRepository struct {
	mock.Mock
}

func (m *MockWorkflowRepository) ListTransitionsByArticle(ctx context.Context, tenantID, articleID string) ([]domain.WorkflowTransition, error) {
	args := m.Called(ctx, tenantID, articleID)
	var entries []domain.WorkflowTransition
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.WorkflowTransition)
	}
	return entries, args.Error(1)
}

func (m *MockWorkflowRepository) ListRecentTransitions(ctx context.Context, tenantID string, limit int) ([]domain.WorkflowTransition, error) {
	args := m.Called(ctx, tenantID, limit)
	var entries []domain.WorkflowTransition
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.WorkflowTransition)
	}
	return entries, args.Error(1)
}

func (m *MockWorkflowRepository) ApplyTransition(ctx context.Context, commit portsrepo.TransitionCommit) error {
	args := m.Called(ctx, commit)
	return args.Error(0)
}

// --- Mock ScheduleRepository ---
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) FindScheduleByID(ctx context.Context, tenantID, scheduleID string) (*domain.ScheduledPublish, error) {
	args := m.Called(ctx, tenantID, scheduleID)
	var schedule *domain.ScheduledPublish
	if args.Get(0) != nil {
		schedule = args.Get(0).(*domain.ScheduledPublish)
	}
	return schedule, args.Error(1)
}

func (m *MockScheduleRepository) ListSchedules(ctx context.Context, tenantID string, status *domain.ScheduleStatus, limit, offset int) ([]domain.ScheduledPublish, error) {
	args := m.Called(ctx, tenantID, status, limit, offset)
	var schedules []domain.ScheduledPublish
	if args.Get(0) != nil {
		schedules = args.Get(0).([]domain.ScheduledPublish)
	}
	return schedules, args.Error(1)
}

func (m *MockScheduleRepository) ListDueSchedules(ctx context.Context, now time.Time, limit int) ([]domain.ScheduledPublish, error) {
	args := m.Called(ctx, now, limit)
	var schedules []domain.ScheduledPublish
	if args.Get(0) != nil {
		schedules = args.Get(0).([]domain.ScheduledPublish)
	}
	return schedules, args.Error(1)
}

func (m *MockScheduleRepository) SaveSchedule(ctx context.Context, schedule domain.ScheduledPublish) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) UpdateScheduleStatus(ctx context.Context, schedule domain.ScheduledPublish) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

// --- Mock AnalyticsRepository ---
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) CountArticlesByStatus(ctx context.Context, tenantID string) (domain.StatusCounts, error) {
	args := m.Called(ctx, tenantID)
	var counts domain.StatusCounts
	if args.Get(0) != nil {
		counts = args.Get(0).(domain.StatusCounts)
	}
	return counts, args.Error(1)
}

func (m *MockAnalyticsRepository) CountArticlesByType(ctx context.Context, tenantID string) ([]domain.TypeCount, error) {
	args := m.Called(ctx, tenantID)
	var counts []domain.TypeCount
	if args.Get(0) != nil {
		counts = args.Get(0).([]domain.TypeCount)
	}
	return counts, args.Error(1)
}

func (m *MockAnalyticsRepository) ListTopArticles(ctx context.Context, tenantID string, limit int) ([]domain.TopArticle, error) {
	args := m.Called(ctx, tenantID, limit)
	var top []domain.TopArticle
	if args.Get(0) != nil {
		top = args.Get(0).([]domain.TopArticle)
	}
	return top, args.Error(1)
}

func (m *MockAnalyticsRepository) SumViews(ctx context.Context, tenantID string) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnalyticsRepository) CountPendingSchedules(ctx context.Context, tenantID string) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock EventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// --- Mock ArticleCache ---
type MockArticleCache struct {
	mock.Mock
}

func (m *MockArticleCache) GetOrLoad(ctx context.Context, tenantID, articleID string, ttl time.Duration, load ports.ArticleLoader) (*domain.Article, error) {
	args := m.Called(ctx, tenantID, articleID, ttl, load)
	var article *domain.Article
	if args.Get(0) != nil {
		article = args.Get(0).(*domain.Article)
	}
	return article, args.Error(1)
}

func (m *MockArticleCache) Invalidate(ctx context.Context, tenantID, articleID string) error {
	args := m.Called(ctx, tenantID, articleID)
	return args.Error(0)
}
