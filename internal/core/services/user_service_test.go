package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/trackmyspend/expense_tracker_app/internal/apperrors"
	"github.com/trackmyspend/expense_tracker_app/internal/core/domain"
	portssvc "github.com/trackmyspend/expense_tracker_app/internal/core/ports/services"
	"github.com/trackmyspend/expense_tracker_app/internal/core/services"
	"github.com/trackmyspend/expense_tracker_app/internal/dto"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "  alice  ",
		Email:    " Alice@Example.COM ",
		Password: "hunter22",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal("alice", user.Username)
	suite.Equal("alice@example.com", user.Email)
	suite.Equal(domain.ProviderLocal, user.AuthProvider)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))
	suite.WithinDuration(time.Now(), user.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_Duplicate() {
	ctx := context.Background()
	req := dto.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "hunter22"}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	suite.Require().NoError(err)
	stored := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "alice",
		PasswordHash: string(hash),
		AuthProvider: domain.ProviderLocal,
	}

	suite.mockRepo.On("FindUserByUsername", ctx, "alice").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "alice", "hunter22")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Username: "alice", PasswordHash: string(hash)}

	suite.mockRepo.On("FindUserByUsername", ctx, "alice").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "alice", "wrong")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUsernameLooksTheSame() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "nobody", "hunter22")

	suite.Require().Error(err)
	suite.Nil(user)
	// Unknown username and wrong password are indistinguishable to the caller
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_OAuthOnlyAccountHasNoPassword() {
	ctx := context.Background()
	stored := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "alice@example.com",
		AuthProvider: domain.ProviderGoogle,
	}

	suite.mockRepo.On("FindUserByUsername", ctx, "alice@example.com").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "alice@example.com", "anything")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_ExistingAccount() {
	ctx := context.Background()
	stored := &domain.User{
		UserID:         uuid.NewString(),
		Username:       "alice@example.com",
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: "google-sub-123",
	}

	suite.mockRepo.On("FindUserByProvider", ctx, domain.ProviderGoogle, "google-sub-123").Return(stored, nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, domain.GoogleUserInfo{ID: "google-sub-123", Email: "alice@example.com"})

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_FirstSignInProvisions() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByProvider", ctx, domain.ProviderGoogle, "google-sub-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.AuthProvider == domain.ProviderGoogle && u.ProviderUserID == "google-sub-123" && u.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, domain.GoogleUserInfo{ID: "google-sub-123", Email: "Alice@Example.com", Name: "Alice"})

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal("alice@example.com", user.Email)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_LookupError() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByProvider", ctx, domain.ProviderGoogle, "google-sub-123").Return(nil, assert.AnError).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, domain.GoogleUserInfo{ID: "google-sub-123", Email: "alice@example.com"})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
