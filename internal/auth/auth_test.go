package auth

import (
	"casino-backend/internal/config"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "super-secret-jwt-key"
	testAudience = "authenticated"
)

func TestJWTVerifier_Verify(t *testing.T) {
	userID := uuid.New()
	token, err := GenerateToken(userID, "player@example.com", "admin", testSecret, testAudience, time.Hour)
	require.NoError(t, err)

	identity, err := NewJWTVerifier(testSecret, testAudience).Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "player@example.com", identity.Email)
	assert.Equal(t, "admin", identity.Role)
}

func TestJWTVerifier_Verify_Expired(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "a@b.c", "", testSecret, testAudience, -time.Minute)
	require.NoError(t, err)

	_, err = NewJWTVerifier(testSecret, testAudience).Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTVerifier_Verify_WrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "a@b.c", "", "other-secret", testAudience, time.Hour)
	require.NoError(t, err)

	_, err = NewJWTVerifier(testSecret, testAudience).Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTVerifier_Verify_WrongAudience(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "a@b.c", "", testSecret, "anon", time.Hour)
	require.NoError(t, err)

	_, err = NewJWTVerifier(testSecret, testAudience).Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_EmptySecret(t *testing.T) {
	_, err := ValidateToken("anything", "", testAudience)
	assert.ErrorIs(t, err, ErrEmptyJWTSecret)
}

func TestSupabaseClient_Verify(t *testing.T) {
	userID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "anon", r.Header.Get("apikey"))
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"id":"` + userID.String() + `","email":"p@example.com","app_metadata":{"role":"admin"}}`))
	}))
	defer server.Close()

	client := NewSupabaseClient(server.URL, "anon")

	identity, err := client.Verify(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "admin", identity.Role)

	_, err = client.Verify(context.Background(), "bad-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewVerifier(t *testing.T) {
	v, err := NewVerifier(config.AuthConfig{JWTSecret: testSecret})
	require.NoError(t, err)
	assert.IsType(t, &JWTVerifier{}, v)

	v, err = NewVerifier(config.AuthConfig{SupabaseURL: "https://x.supabase.co", SupabaseAnonKey: "anon"})
	require.NoError(t, err)
	assert.IsType(t, &SupabaseClient{}, v)

	_, err = NewVerifier(config.AuthConfig{})
	assert.ErrorIs(t, err, ErrNoVerifier)
}

func setupRouter(verifier TokenVerifier, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{Middleware(verifier)}
	if role != "" {
		handlers = append(handlers, RequireRole(role))
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, ok := GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.String())
	})
	r.GET("/protected", handlers...)
	return r
}

func TestMiddleware(t *testing.T) {
	userID := uuid.New()
	playerToken, err := GenerateToken(userID, "p@example.com", "", testSecret, testAudience, time.Hour)
	require.NoError(t, err)
	adminToken, err := GenerateToken(userID, "a@example.com", "admin", testSecret, testAudience, time.Hour)
	require.NoError(t, err)

	verifier := NewJWTVerifier(testSecret, testAudience)

	tests := []struct {
		name   string
		header string
		role   string
		status int
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "bad scheme", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc", status: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + playerToken, status: http.StatusOK},
		{name: "player on admin route", header: "Bearer " + playerToken, role: "admin", status: http.StatusForbidden},
		{name: "admin on admin route", header: "Bearer " + adminToken, role: "admin", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(verifier, tt.role)
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, userID.String(), w.Body.String())
			}
		})
	}
}
