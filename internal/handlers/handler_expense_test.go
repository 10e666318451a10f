package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/trackmyspend/expense_tracker_app/internal/apperrors"
	"github.com/trackmyspend/expense_tracker_app/internal/core/domain"
	portssvc "github.com/trackmyspend/expense_tracker_app/internal/core/ports/services"
	"github.com/trackmyspend/expense_tracker_app/internal/dto"
	"github.com/trackmyspend/expense_tracker_app/internal/handlers"
	"github.com/trackmyspend/expense_tracker_app/internal/middleware"
)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) GetExpenseByID(ctx context.Context, userID string, expenseID string) (*domain.ExpenseEntry, error) {
	args := m.Called(ctx, userID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseEntry), args.Error(1)
}

func (m *MockExpenseService) ListExpenses(ctx context.Context, userID string, params dto.ListExpensesParams) ([]domain.ExpenseEntry, *string, error) {
	args := m.Called(ctx, userID, params)
	var entries []domain.ExpenseEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.ExpenseEntry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

func (m *MockExpenseService) CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.ExpenseEntry, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseEntry), args.Error(1)
}

func (m *MockExpenseService) UpdateExpense(ctx context.Context, userID string, expenseID string, req dto.UpdateExpenseRequest) (*domain.ExpenseEntry, error) {
	args := m.Called(ctx, userID, expenseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseEntry), args.Error(1)
}

func (m *MockExpenseService) DeleteExpense(ctx context.Context, userID string, expenseID string) (*domain.ExpenseEntry, error) {
	args := m.Called(ctx, userID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseEntry), args.Error(1)
}

func (m *MockExpenseService) GetExpenseStats(ctx context.Context, userID string) (*domain.ExpenseStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseStats), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Test Suite ---
type ExpenseHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockExpenseService
	jwtSecret   string
	userID      string
}

// generateTestToken creates a signed JWT for the suite's user.
func (suite *ExpenseHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "expense-tracker-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ExpenseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockExpenseService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterExpenseRoutes(v1, suite.mockService)
}

// performRequest sends an authenticated request through the full middleware chain.
func (suite *ExpenseHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ExpenseHandlerTestSuite) sampleExpense() domain.ExpenseEntry {
	now := time.Now().UTC().Truncate(time.Second)
	return domain.ExpenseEntry{
		ExpenseID: uuid.NewString(),
		UserID:    suite.userID,
		Title:     "Groceries",
		Amount:    decimal.RequireFromString("42.50"),
		Type:      domain.Expense,
		Category:  "Food",
		Date:      now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
}

// --- Test Cases ---

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_Success() {
	expense := suite.sampleExpense()

	suite.mockService.On("CreateExpense", mock.Anything, suite.userID, mock.AnythingOfType("dto.CreateExpenseRequest")).Return(&expense, nil).Once()

	body := gin.H{"title": "Groceries", "amount": "42.50", "type": "Expense", "category": "Food"}
	w := suite.performRequest(http.MethodPost, "/api/v1/expenses", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ExpenseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expense.ExpenseID, resp.ExpenseID)
	suite.Equal("Expense", resp.Type)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_ValidationErrorListsAllFields() {
	verr := apperrors.NewValidationError("title is required", "amount is required")
	suite.mockService.On("CreateExpense", mock.Anything, suite.userID, mock.AnythingOfType("dto.CreateExpenseRequest")).Return(nil, verr).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/expenses", gin.H{"type": "Expense", "category": "Food"})

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp["error"], "title is required")
	suite.Contains(resp["error"], "amount is required")
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_MissingToken() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", bytes.NewBufferString("{}"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseHandlerTestSuite) TestGetExpense_Success() {
	expense := suite.sampleExpense()

	suite.mockService.On("GetExpenseByID", mock.Anything, suite.userID, expense.ExpenseID).Return(&expense, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/expenses/"+expense.ExpenseID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ExpenseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expense.Title, resp.Title)
}

func (suite *ExpenseHandlerTestSuite) TestGetExpense_MalformedID() {
	suite.mockService.On("GetExpenseByID", mock.Anything, suite.userID, "not-a-uuid").
		Return(nil, fmt.Errorf("%w: %q is not a valid expense ID", apperrors.ErrInvalidID, "not-a-uuid")).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/expenses/not-a-uuid", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ExpenseHandlerTestSuite) TestGetExpense_NotFound() {
	expenseID := uuid.NewString()
	suite.mockService.On("GetExpenseByID", mock.Anything, suite.userID, expenseID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/expenses/"+expenseID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ExpenseHandlerTestSuite) TestListExpenses_ForwardsFilters() {
	expense := suite.sampleExpense()

	suite.mockService.On("ListExpenses", mock.Anything, suite.userID, mock.MatchedBy(func(p dto.ListExpensesParams) bool {
		return p.Type == "Expense" && p.Category == "Food" && p.Limit == 5 &&
			p.StartDate != nil && p.StartDate.Format("2006-01-02") == "2024-01-01"
	})).Return([]domain.ExpenseEntry{expense}, nil, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/expenses?type=Expense&category=Food&startDate=2024-01-01&limit=5", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListExpensesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.Count)
	suite.Nil(resp.NextToken)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestListExpenses_EmptyLedger() {
	suite.mockService.On("ListExpenses", mock.Anything, suite.userID, mock.AnythingOfType("dto.ListExpensesParams")).Return([]domain.ExpenseEntry{}, nil, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/expenses", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListExpensesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(0, resp.Count)
	suite.NotNil(resp.Expenses)
}

func (suite *ExpenseHandlerTestSuite) TestUpdateExpense_Success() {
	expense := suite.sampleExpense()
	expense.Title = "Weekly groceries"

	suite.mockService.On("UpdateExpense", mock.Anything, suite.userID, expense.ExpenseID, mock.MatchedBy(func(r dto.UpdateExpenseRequest) bool {
		return r.Title != nil && *r.Title == "Weekly groceries" && r.Amount == nil
	})).Return(&expense, nil).Once()

	w := suite.performRequest(http.MethodPut, "/api/v1/expenses/"+expense.ExpenseID, gin.H{"title": "Weekly groceries"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ExpenseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Weekly groceries", resp.Title)
}

func (suite *ExpenseHandlerTestSuite) TestUpdateExpense_NotFound() {
	expenseID := uuid.NewString()
	suite.mockService.On("UpdateExpense", mock.Anything, suite.userID, expenseID, mock.AnythingOfType("dto.UpdateExpenseRequest")).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodPut, "/api/v1/expenses/"+expenseID, gin.H{"title": "x"})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ExpenseHandlerTestSuite) TestDeleteExpense_ReturnsSnapshot() {
	expense := suite.sampleExpense()

	suite.mockService.On("DeleteExpense", mock.Anything, suite.userID, expense.ExpenseID).Return(&expense, nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/expenses/"+expense.ExpenseID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ExpenseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expense.ExpenseID, resp.ExpenseID)
	suite.Equal(expense.Title, resp.Title)
}

func (suite *ExpenseHandlerTestSuite) TestGetExpenseStats_Success() {
	stats := &domain.ExpenseStats{
		TotalIncome:  decimal.RequireFromString("100"),
		TotalExpense: decimal.RequireFromString("40"),
		Balance:      decimal.RequireFromString("60"),
		Count:        3,
		CategoryBreakdown: []domain.CategoryTotal{
			{Category: "Work", Total: decimal.RequireFromString("100"), Count: 1},
			{Category: "Food", Total: decimal.RequireFromString("40"), Count: 2},
		},
	}

	suite.mockService.On("GetExpenseStats", mock.Anything, suite.userID).Return(stats, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/expenses/stats", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ExpenseStatsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.RequireFromString("60")))
	suite.Require().Len(resp.CategoryBreakdown, 2)
	suite.Equal("Work", resp.CategoryBreakdown[0].Category)
}

func TestExpenseHandler(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}
