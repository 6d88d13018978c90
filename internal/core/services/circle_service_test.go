package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tallmate/trust-circle/internal/apperrors"
	"github.com/tallmate/trust-circle/internal/core/domain"
	portsrepo "github.com/tallmate/trust-circle/internal/core/ports/repositories"
	portssvc "github.com/tallmate/trust-circle/internal/core/ports/services"
	"github.com/tallmate/trust-circle/internal/core/services"
	"github.com/tallmate/trust-circle/internal/dto"
)

// --- Mock CircleRepository ---
type MockCircleRepository struct {
	mock.Mock
}

func (m *MockCircleRepository) SaveCircle(ctx context.Context, circle *domain.Circle) error {
	args := m.Called(ctx, circle)
	return args.Error(0)
}

func (m *MockCircleRepository) UpdateCircle(ctx context.Context, circle *domain.Circle) error {
	args := m.Called(ctx, circle)
	return args.Error(0)
}

func (m *MockCircleRepository) DeleteCircle(ctx context.Context, circleID string) error {
	args := m.Called(ctx, circleID)
	return args.Error(0)
}

func (m *MockCircleRepository) FindCircleByID(ctx context.Context, circleID string) (*domain.Circle, error) {
	args := m.Called(ctx, circleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Circle), args.Error(1)
}

func (m *MockCircleRepository) ListCircles(ctx context.Context, limit int, offset int) ([]domain.Circle, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Circle), args.Error(1)
}

var _ portsrepo.CircleRepositoryFacade = (*MockCircleRepository)(nil)

// --- Test Suite ---
type CircleServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCircleRepository
	service  portssvc.CircleSvcFacade
	t1       time.Time
	t2       time.Time
}

func (suite *CircleServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCircleRepository)
	suite.service = services.NewCircleService(suite.mockRepo)
	suite.t1 = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	suite.t2 = suite.t1.Add(time.Hour)
}

func (suite *CircleServiceTestSuite) TestCreateCircle_LeavesTimestampsToRepository() {
	ctx := context.Background()
	req := dto.CreateCircleRequest{Name: "  Family  ", Description: "close ones"}

	suite.mockRepo.On("SaveCircle", ctx, mock.MatchedBy(func(c *domain.Circle) bool {
		return c.Name == "Family" && c.CircleID != "" && c.CreatedAt.IsZero() && c.UpdatedAt.IsZero()
	})).Run(func(args mock.Arguments) {
		c := args.Get(1).(*domain.Circle)
		c.CreatedAt, c.UpdatedAt = suite.t1, suite.t1
	}).Return(nil).Once()

	circle, err := suite.service.CreateCircle(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("Family", circle.Name)
	suite.Equal("close ones", circle.Description)
	suite.Equal(suite.t1, circle.CreatedAt)
	suite.Equal(circle.CreatedAt, circle.UpdatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CircleServiceTestSuite) TestCreateCircle_BlankName() {
	circle, err := suite.service.CreateCircle(context.Background(), dto.CreateCircleRequest{Name: "   "})

	suite.Nil(circle)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCircle", mock.Anything, mock.Anything)
}

func (suite *CircleServiceTestSuite) TestCreateCircle_SaveError() {
	ctx := context.Background()
	suite.mockRepo.On("SaveCircle", ctx, mock.AnythingOfType("*domain.Circle")).Return(assert.AnError).Once()

	circle, err := suite.service.CreateCircle(ctx, dto.CreateCircleRequest{Name: "Err"})

	suite.Require().Error(err)
	suite.Nil(circle)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CircleServiceTestSuite) TestUpdateCircle_AppliesChangesAndKeepsCreatedAt() {
	ctx := context.Background()
	stored := &domain.Circle{
		CircleID:    "c1",
		Name:        "Family",
		Description: "old",
		AuditFields: domain.AuditFields{CreatedAt: suite.t1, UpdatedAt: suite.t1},
	}
	newName := "Close family"
	req := dto.UpdateCircleRequest{Name: &newName}

	suite.mockRepo.On("FindCircleByID", ctx, "c1").Return(stored, nil).Once()
	suite.mockRepo.On("UpdateCircle", ctx, mock.MatchedBy(func(c *domain.Circle) bool {
		return c.Name == newName && c.Description == "old" && c.CreatedAt.Equal(suite.t1)
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Circle).UpdatedAt = suite.t2
	}).Return(nil).Once()

	circle, err := suite.service.UpdateCircle(ctx, "c1", req)

	suite.Require().NoError(err)
	suite.Equal(newName, circle.Name)
	suite.Equal(suite.t1, circle.CreatedAt)
	suite.Equal(suite.t2, circle.UpdatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CircleServiceTestSuite) TestUpdateCircle_BlankName() {
	ctx := context.Background()
	blank := " "
	suite.mockRepo.On("FindCircleByID", ctx, "c1").Return(&domain.Circle{CircleID: "c1", Name: "x"}, nil).Once()

	circle, err := suite.service.UpdateCircle(ctx, "c1", dto.UpdateCircleRequest{Name: &blank})

	suite.Nil(circle)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCircle", mock.Anything, mock.Anything)
}

func (suite *CircleServiceTestSuite) TestUpdateCircle_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindCircleByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	circle, err := suite.service.UpdateCircle(ctx, "missing", dto.UpdateCircleRequest{})

	suite.Nil(circle)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CircleServiceTestSuite) TestGetCircleByID() {
	ctx := context.Background()
	expected := &domain.Circle{CircleID: "c1"}
	suite.mockRepo.On("FindCircleByID", ctx, "c1").Return(expected, nil).Once()

	circle, err := suite.service.GetCircleByID(ctx, "c1")

	suite.Require().NoError(err)
	suite.Equal(expected, circle)
}

func (suite *CircleServiceTestSuite) TestListCircles_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("ListCircles", ctx, 20, 0).Return(nil, nil).Once()

	circles, err := suite.service.ListCircles(ctx, 20, 0)

	suite.Require().NoError(err)
	suite.NotNil(circles)
	suite.Empty(circles)
}

func (suite *CircleServiceTestSuite) TestListCircles_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListCircles", ctx, 5, 10).Return(nil, assert.AnError).Once()

	circles, err := suite.service.ListCircles(ctx, 5, 10)

	suite.Nil(circles)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *CircleServiceTestSuite) TestDeleteCircle_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteCircle", ctx, "c1").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCircle(ctx, "c1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestCircleService(t *testing.T) {
	suite.Run(t, new(CircleServiceTestSuite))
}
