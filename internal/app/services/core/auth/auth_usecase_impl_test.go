package auth

import (
	"bpa-panel-service/internal/app/config"
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/constvars"
	"bpa-panel-service/internal/pkg/dto/requests"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockBackendClient struct {
	mock.Mock
}

func (m *MockBackendClient) Get(ctx context.Context, path string, credentials models.BackendCredentials, out interface{}) error {
	return m.Called(ctx, path, credentials, out).Error(0)
}

func (m *MockBackendClient) Post(ctx context.Context, path string, credentials models.BackendCredentials, body, out interface{}) error {
	return m.Called(ctx, path, credentials, body, out).Error(0)
}

func (m *MockBackendClient) Patch(ctx context.Context, path string, credentials models.BackendCredentials, body, out interface{}) error {
	return m.Called(ctx, path, credentials, body, out).Error(0)
}

func (m *MockBackendClient) Delete(ctx context.Context, path string, credentials models.BackendCredentials, out interface{}) error {
	return m.Called(ctx, path, credentials, out).Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishAuthEvent(ctx context.Context, event *models.AuthEvent) error {
	return m.Called(ctx, event).Error(0)
}

func newTestAuthUsecase(backend *MockBackendClient, publisher *MockEventPublisher) *authUsecase {
	internalConfig := &config.InternalConfig{
		App: config.App{PublicOrigin: "https://app.example.com"},
		Auth: config.AppAuth{
			CentralAuthURL: "https://auth.example.com",
			DevOrigins:     []string{"localhost:*"},
		},
		Backend: config.AppBackend{
			BaseUrl:    "https://api.example.com",
			LogoutPath: "/auth/logout",
		},
	}
	return NewAuthUsecase(backend, publisher, internalConfig, zap.NewNop()).(*authUsecase)
}

func TestLogout(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "BPA_SVC_req-1")

	t.Run("Backend Success Is Confirmed", func(t *testing.T) {
		backend := new(MockBackendClient)
		publisher := new(MockEventPublisher)
		credentials := models.BackendCredentials{Token: "tok", Cookie: "access_token=tok"}
		backend.On("Post", mock.Anything, "/auth/logout", credentials, nil, nil).Return(nil)
		publisher.On("PublishAuthEvent", mock.Anything, mock.MatchedBy(func(event *models.AuthEvent) bool {
			return event.Type == constvars.AuthEventLogout &&
				event.Outcome == string(models.LogoutConfirmed) &&
				event.Subject == "user-1" &&
				event.RequestID == "BPA_SVC_req-1"
		})).Return(nil)

		result := newTestAuthUsecase(backend, publisher).Logout(ctx, &requests.Logout{
			Token:   "tok",
			Cookie:  "access_token=tok",
			Subject: "user-1",
			Panel:   "owner",
		})

		assert.True(t, result.Confirmed())
		backend.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("Backend Failure Is Local Only", func(t *testing.T) {
		backend := new(MockBackendClient)
		publisher := new(MockEventPublisher)
		backend.On("Post", mock.Anything, "/auth/logout", mock.Anything, nil, nil).Return(errors.New("connection refused"))
		publisher.On("PublishAuthEvent", mock.Anything, mock.MatchedBy(func(event *models.AuthEvent) bool {
			return event.Outcome == string(models.LogoutLocalOnly)
		})).Return(nil)

		result := newTestAuthUsecase(backend, publisher).Logout(ctx, &requests.Logout{Token: "tok"})

		assert.True(t, result.Attempted)
		assert.Error(t, result.Err)
		assert.Equal(t, models.LogoutLocalOnly, models.LogoutResult{Backend: result}.Outcome())
	})

	t.Run("No Credentials Skips Backend", func(t *testing.T) {
		backend := new(MockBackendClient)
		publisher := new(MockEventPublisher)
		publisher.On("PublishAuthEvent", mock.Anything, mock.Anything).Return(nil)

		result := newTestAuthUsecase(backend, publisher).Logout(ctx, &requests.Logout{})

		assert.False(t, result.Attempted)
		backend.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Publish Failure Does Not Change Result", func(t *testing.T) {
		backend := new(MockBackendClient)
		publisher := new(MockEventPublisher)
		backend.On("Post", mock.Anything, mock.Anything, mock.Anything, nil, nil).Return(nil)
		publisher.On("PublishAuthEvent", mock.Anything, mock.Anything).Return(errors.New("channel closed"))

		result := newTestAuthUsecase(backend, publisher).Logout(ctx, &requests.Logout{Token: "tok"})
		assert.True(t, result.Confirmed())
	})
}

func TestBuildAuthRedirectURLUsecase(t *testing.T) {
	uc := newTestAuthUsecase(new(MockBackendClient), new(MockEventPublisher))

	t.Run("Builds From Request", func(t *testing.T) {
		target, err := uc.BuildAuthRedirectURL(context.Background(), &requests.AuthRedirect{
			Panel:    "Partner",
			Action:   "login",
			ReturnTo: "https://evil.example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "auth.example.com", target.Host)
		assert.Equal(t, "/login", target.Path)
		assert.Equal(t, "partner", target.Query().Get("app"))
		assert.Equal(t, "/partner/dashboard", target.Query().Get("next"))
	})

	t.Run("Unknown Panel Is Rejected", func(t *testing.T) {
		_, err := uc.BuildAuthRedirectURL(context.Background(), &requests.AuthRedirect{Panel: "warehouse", Action: "login"})
		assert.Error(t, err)
	})
}
