package session

import (
	"bpa-panel-service/internal/app/config"
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/utils"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockBackendClient struct {
	mock.Mock
}

func (m *MockBackendClient) Get(ctx context.Context, path string, credentials models.BackendCredentials, out interface{}) error {
	args := m.Called(ctx, path, credentials, out)
	if profile, ok := args.Get(1).(*models.BackendProfile); ok && profile != nil {
		*(out.(*models.BackendProfile)) = *profile
	}
	return args.Error(0)
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

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims utils.AccessTokenClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newTestService(backend *MockBackendClient, secret string) *sessionService {
	internalConfig := &config.InternalConfig{
		JWT:     config.AppJWT{Secret: secret},
		Backend: config.AppBackend{MePath: "/auth/me"},
	}
	return NewSessionService(backend, internalConfig, zap.NewNop()).(*sessionService)
}

func TestResolvePrincipal(t *testing.T) {
	ctx := context.Background()

	t.Run("No Credentials Is Anonymous", func(t *testing.T) {
		backend := new(MockBackendClient)
		principal := newTestService(backend, testSecret).ResolvePrincipal(ctx, models.BackendCredentials{})

		assert.False(t, principal.IsAuthenticated())
		assert.True(t, principal.Permissions.IsEmpty())
		backend.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Valid Token Is Verified Locally", func(t *testing.T) {
		backend := new(MockBackendClient)
		token := signToken(t, testSecret, utils.AccessTokenClaims{
			Permissions: []string{"order.read", "branch.read"},
			Roles:       []string{"owner"},
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		principal := newTestService(backend, testSecret).ResolvePrincipal(ctx, models.BackendCredentials{Token: token})

		assert.Equal(t, "user-1", principal.Subject)
		assert.True(t, principal.Permissions.Has("branch.read"))
		assert.Equal(t, []string{"owner"}, principal.Roles)
		backend.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Expired Token Falls Back To Backend", func(t *testing.T) {
		backend := new(MockBackendClient)
		token := signToken(t, testSecret, utils.AccessTokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		credentials := models.BackendCredentials{Token: token}
		backend.On("Get", ctx, "/auth/me", credentials, mock.Anything).
			Return(nil, &models.BackendProfile{ID: "user-1", Permissions: []string{"task.read"}})

		principal := newTestService(backend, testSecret).ResolvePrincipal(ctx, credentials)

		assert.Equal(t, "user-1", principal.Subject)
		assert.True(t, principal.Permissions.Has("task.read"))
		backend.AssertExpectations(t)
	})

	t.Run("Token Signed With Other Secret Is Not Trusted", func(t *testing.T) {
		backend := new(MockBackendClient)
		token := signToken(t, "other-secret", utils.AccessTokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "attacker"},
		})
		backend.On("Get", ctx, "/auth/me", mock.Anything, mock.Anything).Return(errors.New("unauthorized"), nil)

		principal := newTestService(backend, testSecret).ResolvePrincipal(ctx, models.BackendCredentials{Token: token})
		assert.False(t, principal.IsAuthenticated())
	})

	t.Run("Cookie Only Session Uses Backend", func(t *testing.T) {
		backend := new(MockBackendClient)
		credentials := models.BackendCredentials{Cookie: "sid=abc"}
		backend.On("Get", ctx, "/auth/me", credentials, mock.Anything).
			Return(nil, &models.BackendProfile{ID: "user-7"})

		principal := newTestService(backend, "").ResolvePrincipal(ctx, credentials)
		assert.Equal(t, "user-7", principal.Subject)
	})
}
