package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ritualnet/backend/internal/domain"
	"github.com/ritualnet/backend/internal/user"
)

// MockUserService implements user.Service for testing
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) GetProfile(ctx context.Context, userID int64) (*user.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Profile), args.Error(1)
}

func TestHandleRegister(t *testing.T) {
	svc := new(MockUserService)
	svc.On("Register", mock.Anything, "alice", "alice@example.com", "longenough").
		Return(&domain.User{ID: 1, Username: "alice", Email: "alice@example.com"}, nil)

	body, _ := json.Marshal(RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "longenough"})
	req := httptest.NewRequest(http.MethodPost, "/user/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	HandleRegister(svc)(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
}

func TestHandleRegister_ValidationFailure(t *testing.T) {
	svc := new(MockUserService)

	body, _ := json.Marshal(RegisterRequest{Username: "al", Email: "not-an-email", Password: "short"})
	req := httptest.NewRequest(http.MethodPost, "/user/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	HandleRegister(svc)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "email")
	assert.Contains(t, resp.Fields, "password")
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleRegister_EmailTaken(t *testing.T) {
	svc := new(MockUserService)
	svc.On("Register", mock.Anything, "alice", "alice@example.com", "longenough").
		Return(nil, domain.ErrEmailTaken)

	body, _ := json.Marshal(RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "longenough"})
	req := httptest.NewRequest(http.MethodPost, "/user/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	HandleRegister(svc)(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleLogin(t *testing.T) {
	svc := new(MockUserService)
	svc.On("Login", mock.Anything, "alice@example.com", "longenough").Return("signed-token", nil)

	body, _ := json.Marshal(LoginRequest{Email: "alice@example.com", Password: "longenough"})
	req := httptest.NewRequest(http.MethodPost, "/user/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	HandleLogin(svc)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
}

func TestHandleLogin_BadCredentials(t *testing.T) {
	svc := new(MockUserService)
	svc.On("Login", mock.Anything, "alice@example.com", "wrong").Return("", domain.ErrInvalidCredentials)

	body, _ := json.Marshal(LoginRequest{Email: "alice@example.com", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/user/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	HandleLogin(svc)(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleGetProfile(t *testing.T) {
	svc := new(MockUserService)
	svc.On("GetProfile", mock.Anything, int64(42)).Return(&user.Profile{
		User:  &domain.User{ID: 42, Username: "alice", SilverAmount: 250},
		Items: []domain.UserItem{{UserID: 42, ItemID: 7}},
	}, nil)

	req := authedRequest(http.MethodGet, "/user/profile", nil, 42)
	rec := httptest.NewRecorder()

	HandleGetProfile(svc)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var profile user.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, 250, profile.User.SilverAmount)
	assert.Len(t, profile.Items, 1)
}
