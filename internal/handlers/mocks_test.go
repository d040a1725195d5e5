package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
	portssvc "github.com/SscSPs/content_platform_app/internal/core/ports/services"
	"github.com/SscSPs/content_platform_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Article ---

type MockArticleService struct {
	mock.Mock
}

func (m *MockArticleService) CreateArticle(ctx context.Context, tenantID string, req dto.CreateArticleRequest, actorID string) (*domain.Article, error) {
	args := m.Called(ctx, tenantID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleService) GetArticle(ctx context.Context, tenantID, articleID, actorID string) (*domain.Article, error) {
	args := m.Called(ctx, tenantID, articleID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleService) ListArticles(ctx context.Context, tenantID string, params dto.ListArticlesParams, actorID string) (domain.ArticlePage, error) {
	args := m.Called(ctx, tenantID, params, actorID)
	return args.Get(0).(domain.ArticlePage), args.Error(1)
}

func (m *MockArticleService) ListArticleTypes(ctx context.Context, tenantID, actorID string) ([]dto.ArticleTypeInfo, error) {
	args := m.Called(ctx, tenantID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ArticleTypeInfo), args.Error(1)
}

func (m *MockArticleService) UpdateArticle(ctx context.Context, tenantID, articleID string, req dto.UpdateArticleRequest, actorID string) (*domain.Article, error) {
	args := m.Called(ctx, tenantID, articleID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleService) DeleteArticle(ctx context.Context, tenantID, articleID, actorID string) error {
	return m.Called(ctx, tenantID, articleID, actorID).Error(0)
}

func (m *MockArticleService) RecordView(ctx context.Context, tenantID, articleID, actorID string) error {
	return m.Called(ctx, tenantID, articleID, actorID).Error(0)
}

var _ portssvc.ArticleSvcFacade = (*MockArticleService)(nil)

// --- Workflow ---

type MockWorkflowService struct {
	mock.Mock
}

func (m *MockWorkflowService) TransitionStatus(ctx context.Context, tenantID, articleID string, req dto.TransitionRequest, actorID string) (*domain.Article, *domain.WorkflowTransition, error) {
	args := m.Called(ctx, tenantID, articleID, req, actorID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Article), args.Get(1).(*domain.WorkflowTransition), args.Error(2)
}

func (m *MockWorkflowService) ListTransitions(ctx context.Context, tenantID, articleID, actorID string) ([]domain.WorkflowTransition, error) {
	args := m.Called(ctx, tenantID, articleID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkflowTransition), args.Error(1)
}

var _ portssvc.WorkflowSvc = (*MockWorkflowService)(nil)

// --- Schedule ---

type MockScheduleService struct {
	mock.Mock
}

func (m *MockScheduleService) SchedulePublish(ctx context.Context, tenantID, articleID string, req dto.SchedulePublishRequest, actorID string) (*domain.ScheduledPublish, error) {
	args := m.Called(ctx, tenantID, articleID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduledPublish), args.Error(1)
}

func (m *MockScheduleService) CancelSchedule(ctx context.Context, tenantID, scheduleID, actorID string) (*domain.ScheduledPublish, error) {
	args := m.Called(ctx, tenantID, scheduleID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduledPublish), args.Error(1)
}

func (m *MockScheduleService) ListSchedules(ctx context.Context, tenantID string, params dto.ListSchedulesParams, actorID string) ([]domain.ScheduledPublish, error) {
	args := m.Called(ctx, tenantID, params, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduledPublish), args.Error(1)
}

func (m *MockScheduleService) ExecuteDueSchedules(ctx context.Context, now time.Time, batchSize int) (dto.ScheduleRunReport, error) {
	args := m.Called(ctx, now, batchSize)
	return args.Get(0).(dto.ScheduleRunReport), args.Error(1)
}

func (m *MockScheduleService) ArchiveExpiredArticles(ctx context.Context, now time.Time, batchSize int) (int, error) {
	args := m.Called(ctx, now, batchSize)
	return args.Int(0), args.Error(1)
}

var _ portssvc.ScheduleSvcFacade = (*MockScheduleService)(nil)

// --- Authority ---

type MockAuthority struct {
	mock.Mock
}

func (m *MockAuthority) ResolveActor(ctx context.Context, tenantID, userID string) (*domain.User, error) {
	args := m.Called(ctx, tenantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthority) CheckPermission(ctx context.Context, tenantID, userID string, perm domain.Permission) error {
	return m.Called(ctx, tenantID, userID, perm).Error(0)
}

func (m *MockAuthority) HasPermission(user domain.User, perm domain.Permission) bool {
	return m.Called(user, perm).Bool(0)
}

func (m *MockAuthority) PermissionsForRole(role domain.Role) domain.PermissionSet {
	return m.Called(role).Get(0).(domain.PermissionSet)
}

var _ portssvc.PermissionAuthoritySvc = (*MockAuthority)(nil)

// --- Tenant ---

type MockTenantService struct {
	mock.Mock
}

func (m *MockTenantService) GetTenant(ctx context.Context, tenantID, actorID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) ListTenants(ctx context.Context, params dto.ListTenantsParams, actorID string) ([]domain.Tenant, error) {
	args := m.Called(ctx, params, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

func (m *MockTenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, actorID string) (*domain.Tenant, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) UpdateTenantSettings(ctx context.Context, tenantID string, req dto.UpdateTenantSettingsRequest, actorID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) DeactivateTenant(ctx context.Context, tenantID, actorID string) error {
	return m.Called(ctx, tenantID, actorID).Error(0)
}

var _ portssvc.TenantSvcFacade = (*MockTenantService)(nil)

// --- User ---

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUser(ctx context.Context, tenantID, userID, actorID string) (*domain.User, error) {
	args := m.Called(ctx, tenantID, userID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, tenantID string, params dto.ListUsersParams, actorID string) ([]domain.User, error) {
	args := m.Called(ctx, tenantID, params, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, tenantID string, req dto.CreateUserRequest, actorID string) (*domain.User, error) {
	args := m.Called(ctx, tenantID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ChangeUserRole(ctx context.Context, tenantID, userID string, req dto.ChangeRoleRequest, actorID string) (*domain.User, error) {
	args := m.Called(ctx, tenantID, userID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) SyncUserPermissions(ctx context.Context, tenantID, userID, actorID string) (*domain.User, error) {
	args := m.Called(ctx, tenantID, userID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeactivateUser(ctx context.Context, tenantID, userID, actorID string) error {
	return m.Called(ctx, tenantID, userID, actorID).Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Analytics ---

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) DashboardMetrics(ctx context.Context, tenantID, actorID string) (*domain.DashboardMetrics, error) {
	args := m.Called(ctx, tenantID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardMetrics), args.Error(1)
}

var _ portssvc.AnalyticsSvc = (*MockAnalyticsService)(nil)
