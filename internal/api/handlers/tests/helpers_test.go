package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"timebill-api/config"
	"timebill-api/ent"
	"timebill-api/ent/enttest"
	"timebill-api/internal/api/routes"
	"timebill-api/internal/app"

	_ "github.com/mattn/go-sqlite3"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func generateTestToken(userID uuid.UUID, secret string, expiration time.Duration) (string, error) {
	expirationTime := time.Now().Add(expiration)
	claims := &jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(expirationTime),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// newTestRouter wires the full route table against an in-memory database.
// The Redis client stays nil; these tests never touch the auth endpoints
// that need it.
func newTestRouter(t *testing.T) (*gin.Engine, *ent.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { db.Close() })

	application := &app.Application{
		Config: &config.Config{
			JWT: config.JWTConfig{
				Secret:            testJWTSecret,
				Expiration:        15 * time.Minute,
				RefreshExpiration: 7 * 24 * time.Hour,
			},
		},
		EntClient: db,
		Validator: validator.New(),
	}

	router := gin.New()
	routes.RegisterRoutes(router, application)
	return router, db
}

// doJSON performs an authenticated JSON request against the test router and
// returns the recorder.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	token, err := generateTestToken(uuid.New(), testJWTSecret, time.Minute)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a recorder's JSON body into out.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "body: %s", rec.Body.String())
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "unexpected status, body: %s", rec.Body.String())
}
