package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
	"github.com/SscSPs/content_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/content_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/content_platform_app/internal/core/ports/services"
	"github.com/SscSPs/content_platform_app/internal/core/services"
	"github.com/SscSPs/content_platform_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ScheduleServiceTestSuite struct {
	suite.Suite
	mockUserRepo     *MockUserRepository
	mockTenantRepo   *MockTenantRepository
	mockArticleRepo  *MockArticleRepository
	mockWorkflowRepo *MockWorkflowRepository
	mockScheduleRepo *MockScheduleRepository
	mockPublisher    *MockEventPublisher
	mockCache        *MockArticleCache
	tenant           *domain.Tenant
	service          portssvc.ScheduleSvcFacade
	ctx              context.Context
}

func (suite *ScheduleServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockTenantRepo = new(MockTenantRepository)
	suite.mockArticleRepo = new(MockArticleRepository)
	suite.mockWorkflowRepo = new(MockWorkflowRepository)
	suite.mockScheduleRepo = new(MockScheduleRepository)
	suite.mockPublisher = new(MockEventPublisher)
	suite.mockCache = new(MockArticleCache)
	suite.ctx = context.Background()
	suite.tenant = fixtureTenant(suite.T(), testTenantID)
	suite.mockTenantRepo.On("FindTenantByID", suite.ctx, testTenantID).Return(suite.tenant, nil)
	suite.service = services.NewScheduleService(
		suite.mockScheduleRepo,
		suite.mockArticleRepo,
		suite.mockTenantRepo,
		suite.mockWorkflowRepo,
		services.WithScheduleAuthority(services.NewAuthorityService(suite.mockUserRepo)),
		services.WithSchedulePublisher(suite.mockPublisher),
		services.WithScheduleCache(suite.mockCache),
	)
}

func (suite *ScheduleServiceTestSuite) givenUser(userID string, role domain.Role) {
	suite.mockUserRepo.On("FindUserByID", suite.ctx, userID).Return(fixtureUser(suite.T(), userID, testTenantID, role), nil)
}

func pendingSchedule(scheduleID, articleID string, at time.Time) domain.ScheduledPublish {
	return domain.ScheduledPublish{
		ScheduleID:  scheduleID,
		ArticleID:   articleID,
		TenantID:    testTenantID,
		ScheduledAt: at,
		Status:      domain.SchedulePending,
		CreatedBy:   "editor-1",
		CreatedAt:   at.Add(-time.Hour),
	}
}

// --- SchedulePublish Tests ---
func (suite *ScheduleServiceTestSuite) TestSchedulePublish_Success() {
	suite.givenUser("editor-1", domain.RoleEditor)
	article := fixtureArticle(suite.T(), "art-1", "author-1", domain.StatusReview)
	suite.mockArticleRepo.On("FindArticleByID", suite.ctx, testTenantID, "art-1").Return(article, nil).Once()
	suite.mockScheduleRepo.On("SaveSchedule", suite.ctx, mock.MatchedBy(func(s domain.ScheduledPublish) bool {
		return s.ArticleID == "art-1" && s.Status == domain.SchedulePending && s.CreatedBy == "editor-1"
	})).Return(nil).Once()
	suite.mockCache.On("Invalidate", suite.ctx, testTenantID, "art-1").Return(nil).Once()

	at := time.Now().Add(2 * time.Hour)
	schedule, err := suite.service.SchedulePublish(suite.ctx, testTenantID, "art-1", dto.SchedulePublishRequest{ScheduledAt: at}, "editor-1")

	suite.Require().NoError(err)
	suite.NotEmpty(schedule.ScheduleID)
	suite.WithinDuration(at, schedule.ScheduledAt, time.Microsecond)
	suite.mockScheduleRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestSchedulePublish_InPast() {
	suite.givenUser("editor-1", domain.RoleEditor)
	article := fixtureArticle(suite.T(), "art-1", "author-1", domain.StatusReview)
	suite.mockArticleRepo.On("FindArticleByID", suite.ctx, testTenantID, "art-1").Return(article, nil).Once()

	_, err := suite.service.SchedulePublish(suite.ctx, testTenantID, "art-1",
		dto.SchedulePublishRequest{ScheduledAt: time.Now().Add(-time.Minute)}, "editor-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockScheduleRepo.AssertNotCalled(suite.T(), "SaveSchedule", mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestSchedulePublish_RequiresPublishPermission() {
	suite.givenUser("author-1", domain.RoleAuthor)
	article := fixtureArticle(suite.T(), "art-1", "author-1", domain.StatusReview)
	suite.mockArticleRepo.On("FindArticleByID", suite.ctx, testTenantID, "art-1").Return(article, nil).Once()

	_, err := suite.service.SchedulePublish(suite.ctx, testTenantID, "art-1",
		dto.SchedulePublishRequest{ScheduledAt: time.Now().Add(time.Hour)}, "author-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ScheduleServiceTestSuite) TestSchedulePublish_FeatureDisabled() {
	suite.givenUser("editor-1", domain.RoleEditor)
	suite.tenant.Settings.Features.Scheduling = false

	_, err := suite.service.SchedulePublish(suite.ctx, testTenantID, "art-1",
		dto.SchedulePublishRequest{ScheduledAt: time.Now().Add(time.Hour)}, "editor-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockArticleRepo.AssertNotCalled(suite.T(), "FindArticleByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestSchedulePublish_AlreadyPending() {
	suite.givenUser("editor-1", domain.RoleEditor)
	article := fixtureArticle(suite.T(), "art-1", "author-1", domain.StatusReview)
	suite.mockArticleRepo.On("FindArticleByID", suite.ctx, testTenantID, "art-1").Return(article, nil).Once()
	suite.mockScheduleRepo.On("SaveSchedule", suite.ctx, mock.Anything).
		Return(apperrors.NewConflictError("article art-1 already has a pending schedule")).Once()

	_, err := suite.service.SchedulePublish(suite.ctx, testTenantID, "art-1",
		dto.SchedulePublishRequest{ScheduledAt: time.Now().Add(time.Hour)}, "editor-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
}

// --- CancelSchedule Tests ---
func (suite *ScheduleServiceTestSuite) TestCancelSchedule_OwnArticle() {
	suite.givenUser("author-1", domain.RoleAuthor)
	schedule := pendingSchedule("sch-1", "art-1", time.Now().Add(time.Hour))
	suite.mockScheduleRepo.On("FindScheduleByID", suite.ctx, testTenantID, "sch-1").Return(&schedule, nil).Once()
	suite.mockArticleRepo.On("FindArticleByID", suite.ctx, testTenantID, "art-1").
		Return(fixtureArticle(suite.T(), "art-1", "author-1", domain.StatusReview), nil).Once()
	suite.mockScheduleRepo.On("UpdateScheduleStatus", suite.ctx, mock.MatchedBy(func(s domain.ScheduledPublish) bool {
		return s.Status == domain.ScheduleCancelled && s.ExecutedAt != nil
	})).Return(nil).Once()
	suite.mockCache.On("Invalidate", suite.ctx, testTenantID, "art-1").Return(nil).Once()

	cancelled, err := suite.service.CancelSchedule(suite.ctx, testTenantID, "sch-1", "author-1")

	suite.Require().NoError(err)
	suite.Equal(domain.ScheduleCancelled, cancelled.Status)
	suite.mockScheduleRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestCancelSchedule_OtherAuthorDenied() {
	suite.givenUser("author-2", domain.RoleAuthor)
	schedule := pendingSchedule("sch-1", "art-1", time.Now().Add(time.Hour))
	suite.mockScheduleRepo.On("FindScheduleByID", suite.ctx, testTenantID, "sch-1").Return(&schedule, nil).Once()
	suite.mockArticleRepo.On("FindArticleByID", suite.ctx, testTenantID, "art-1").
		Return(fixtureArticle(suite.T(), "art-1", "author-1", domain.StatusReview), nil).Once()

	_, err := suite.service.CancelSchedule(suite.ctx, testTenantID, "sch-1", "author-2")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockScheduleRepo.AssertNotCalled(suite.T(), "UpdateScheduleStatus", mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestCancelSchedule_NotPending() {
	suite.givenUser("editor-1", domain.RoleEditor)
	schedule := pendingSchedule("sch-1", "art-1", time.Now().Add(-time.Hour))
	schedule.Status = domain.SchedulePublished
	suite.mockScheduleRepo.On("FindScheduleByID", suite.ctx, testTenantID, "sch-1").Return(&schedule, nil).Once()
	suite.mockArticleRepo.On("FindArticleByID", suite.ctx, testTenantID, "art-1").
		Return(fixtureArticle(suite.T(), "art-1", "author-1", domain.StatusPublished), nil).Once()

	_, err := suite.service.CancelSchedule(suite.ctx, testTenantID, "sch-1", "editor-1")

	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
}

// --- ListSchedules Tests ---
func (suite *ScheduleServiceTestSuite) TestListSchedules_UnknownStatus() {
	suite.givenUser("viewer-1", domain.RoleViewer)
	status := domain.ScheduleStatus("running")

	_, err := suite.service.ListSchedules(suite.ctx, testTenantID, dto.ListSchedulesParams{Status: &status}, "viewer-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ScheduleServiceTestSuite) TestListSchedules_Empty() {
	suite.givenUser("viewer-1", domain.RoleViewer)
	suite.mockScheduleRepo.On("ListSchedules", suite.ctx, testTenantID, (*domain.ScheduleStatus)(nil), 20, 0).Return(nil, nil).Once()

	schedules, err := suite.service.ListSchedules(suite.ctx, testTenantID, dto.ListSchedulesParams{}, "viewer-1")

	suite.Require().NoError(err)
	suite.NotNil(schedules)
	suite.Empty(schedules)
}

// --- ExecuteDueSchedules Tests ---
func (suite *ScheduleServiceTestSuite) TestExecuteDueSchedules_PublishesWithSystemActor() {
	now := time.Now().UTC()
	expires := now.Add(48 * time.Hour)
	schedule := pendingSchedule("sch-1", "art-1", now.Add(-time.Minute))
	schedule.ExpiresAt = &expires
	suite.mockScheduleRepo.On("ListDueSchedules", suite.ctx, now, 50).Return([]domain.ScheduledPublish{schedule}, nil).Once()
	article := fixtureArticle(suite.T(), "art-1", "author-1", domain.StatusReview)
	suite.mockArticleRepo.On("FindArticleByID", suite.ctx, testTenantID, "art-1").Return(article, nil).Once()

	var commit portsrepo.TransitionCommit
	suite.mockWorkflowRepo.On("ApplyTransition", suite.ctx, mock.Anything).
		Run(func(args mock.Arguments) { commit = args.Get(1).(portsrepo.TransitionCommit) }).
		Return(nil).Once()
	suite.mockCache.On("Invalidate", suite.ctx, testTenantID, "art-1").Return(nil).Once()
	suite.mockPublisher.On("Publish", suite.ctx, mock.AnythingOfType("domain.ArticleTransitioned")).Return(nil).Once()

	report, err := suite.service.ExecuteDueSchedules(suite.ctx, now, 50)

	suite.Require().NoError(err)
	suite.Equal(dto.ScheduleRunReport{Published: 1}, report)
	suite.Equal(domain.StatusPublished, commit.Article.Status)
	suite.Equal(&expires, commit.Article.ExpiresAt)
	suite.Equal(domain.SystemActorID, commit.Entry.UserID)
	suite.Require().NotNil(commit.Schedule)
	suite.Equal(domain.SchedulePublished, commit.Schedule.Status)
	suite.Require().NotNil(commit.Schedule.ExecutedAt)
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestExecuteDueSchedules_FailureMarksScheduleFailed() {
	now := time.Now().UTC()
	schedule := pendingSchedule("sch-1", "art-1", now.Add(-time.Minute))
	suite.mockScheduleRepo.On("ListDueSchedules", suite.ctx, now, 50).Return([]domain.ScheduledPublish{schedule}, nil).Once()
	// Drafts cannot move straight to published.
	article := fixtureArticle(suite.T(), "art-1", "author-1", domain.StatusDraft)
	suite.mockArticleRepo.On("FindArticleByID", suite.ctx, testTenantID, "art-1").Return(article, nil).Once()
	suite.mockScheduleRepo.On("UpdateScheduleStatus", suite.ctx, mock.MatchedBy(func(s domain.ScheduledPublish) bool {
		return s.Status == domain.ScheduleFailed && s.Error != nil && s.ExecutedAt != nil
	})).Return(nil).Once()
	suite.mockPublisher.On("Publish", suite.ctx, mock.MatchedBy(func(e domain.Event) bool {
		ev, ok := e.(domain.SchedulePublishFailed)
		return ok && ev.ScheduleID == "sch-1" && ev.ArticleID == "art-1" && ev.Error != ""
	})).Return(nil).Once()

	report, err := suite.service.ExecuteDueSchedules(suite.ctx, now, 50)

	suite.Require().NoError(err)
	suite.Equal(dto.ScheduleRunReport{Failed: 1}, report)
	suite.mockWorkflowRepo.AssertNotCalled(suite.T(), "ApplyTransition", mock.Anything, mock.Anything)
	suite.mockScheduleRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestExecuteDueSchedules_ContinuesAfterFailure() {
	now := time.Now().UTC()
	missing := pendingSchedule("sch-1", "art-gone", now.Add(-2*time.Minute))
	ok := pendingSchedule("sch-2", "art-2", now.Add(-time.Minute))
	suite.mockScheduleRepo.On("ListDueSchedules", suite.ctx, now, 10).Return([]domain.ScheduledPublish{missing, ok}, nil).Once()
	suite.mockArticleRepo.On("FindArticleByID", suite.ctx, testTenantID, "art-gone").Return(nil, apperrors.NewNotFoundError("article art-gone not found")).Once()
	suite.mockArticleRepo.On("FindArticleByID", suite.ctx, testTenantID, "art-2").
		Return(fixtureArticle(suite.T(), "art-2", "author-1", domain.StatusReview), nil).Once()
	suite.mockScheduleRepo.On("UpdateScheduleStatus", suite.ctx, mock.Anything).Return(nil).Once()
	suite.mockWorkflowRepo.On("ApplyTransition", suite.ctx, mock.Anything).Return(nil).Once()
	suite.mockCache.On("Invalidate", suite.ctx, testTenantID, "art-2").Return(nil).Once()
	suite.mockPublisher.On("Publish", suite.ctx, mock.Anything).Return(nil).Twice()

	report, err := suite.service.ExecuteDueSchedules(suite.ctx, now, 10)

	suite.Require().NoError(err)
	suite.Equal(dto.ScheduleRunReport{Published: 1, Failed: 1}, report)
}

// --- ArchiveExpiredArticles Tests ---
func (suite *ScheduleServiceTestSuite) TestArchiveExpiredArticles() {
	now := time.Now().UTC()
	expired := fixtureArticle(suite.T(), "art-1", "author-1", domain.StatusPublished)
	past := now.Add(-time.Minute)
	expired.ExpiresAt = &past
	suite.mockArticleRepo.On("ListExpiredArticles", suite.ctx, now, 25).Return([]domain.Article{*expired}, nil).Once()
	suite.mockWorkflowRepo.On("ApplyTransition", suite.ctx, mock.MatchedBy(func(c portsrepo.TransitionCommit) bool {
		return c.Article.Status == domain.StatusArchived && c.Entry.UserID == domain.SystemActorID && c.Schedule == nil
	})).Return(nil).Once()
	suite.mockCache.On("Invalidate", suite.ctx, testTenantID, "art-1").Return(nil).Once()
	suite.mockPublisher.On("Publish", suite.ctx, mock.Anything).Return(nil).Once()

	archived, err := suite.service.ArchiveExpiredArticles(suite.ctx, now, 25)

	suite.Require().NoError(err)
	suite.Equal(1, archived)
	suite.mockWorkflowRepo.AssertExpectations(suite.T())
}

func TestScheduleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}
