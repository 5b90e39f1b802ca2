package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoseMolina94/youtube-api-integration/internal/domain"
)

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleRegister_Success(t *testing.T) {
	app := &mockApp{
		registerFn: func(_ context.Context, name, email, password string) (*domain.User, error) {
			assert.Equal(t, "Ana", name)
			assert.Equal(t, "ana@x.com", email)
			assert.Equal(t, "secret1", password)
			return &domain.User{ID: uuid.New(), Name: name, Email: email, PasswordHash: "hash"}, nil
		},
	}
	srv, _ := newTestServer(t, app, &mockCatalog{})

	rec := doRequest(srv, jsonRequest(http.MethodPost, "/auth/register",
		`{"name":"Ana","email":"ana@x.com","password":"secret1"}`))

	assert.Equal(t, 201, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestHandleRegister_DuplicateEmail(t *testing.T) {
	app := &mockApp{
		registerFn: func(context.Context, string, string, string) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	srv, _ := newTestServer(t, app, &mockCatalog{})

	rec := doRequest(srv, jsonRequest(http.MethodPost, "/auth/register",
		`{"name":"Ana","email":"ana@x.com","password":"secret1"}`))

	assert.Equal(t, 400, rec.Code)
	body := decodeBody(t, rec.Body)
	assert.Equal(t, "duplicate", body["type"])
}

func TestHandleRegister_ValidationError(t *testing.T) {
	app := &mockApp{
		registerFn: func(context.Context, string, string, string) (*domain.User, error) {
			return nil, domain.ErrPasswordTooShort
		},
	}
	srv, _ := newTestServer(t, app, &mockCatalog{})

	rec := doRequest(srv, jsonRequest(http.MethodPost, "/auth/register",
		`{"name":"Ana","email":"ana@x.com","password":"x"}`))

	assert.Equal(t, 400, rec.Code)
	body := decodeBody(t, rec.Body)
	assert.Equal(t, "validation", body["type"])
}

func TestHandleLogin_Success(t *testing.T) {
	userID := uuid.New()
	app := &mockApp{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			assert.Equal(t, "ana@x.com", email)
			return "signed-token", &domain.User{ID: userID, Name: "Ana", Email: email}, nil
		},
	}
	srv, _ := newTestServer(t, app, &mockCatalog{})

	rec := doRequest(srv, jsonRequest(http.MethodPost, "/auth/login",
		`{"email":"ana@x.com","password":"secret1"}`))

	require.Equal(t, 200, rec.Code)
	body := decodeBody(t, rec.Body)
	assert.Equal(t, "signed-token", body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ana", user["name"])
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	app := &mockApp{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	srv, _ := newTestServer(t, app, &mockCatalog{})

	rec := doRequest(srv, jsonRequest(http.MethodPost, "/auth/login",
		`{"email":"nobody@x.com","password":"wrong"}`))

	assert.Equal(t, 400, rec.Code)
	body := decodeBody(t, rec.Body)
	assert.Equal(t, "invalid credentials", body["message"])
}

func TestHandleMe_Success(t *testing.T) {
	userID := uuid.New()
	app := &mockApp{
		currentUserFn: func(_ context.Context, id uuid.UUID) (*domain.User, error) {
			assert.Equal(t, userID, id)
			return &domain.User{ID: userID, Name: "Ana", Email: "ana@x.com", PasswordHash: "hash"}, nil
		},
	}
	srv, tokens := newTestServer(t, app, &mockCatalog{})

	rec := doRequest(srv, bearerRequest(t, tokens, http.MethodGet, "/auth/me", userID))

	require.Equal(t, 200, rec.Code)
	body := decodeBody(t, rec.Body)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ana", user["name"])
	assert.Equal(t, "ana@x.com", user["email"])

	// The password hash never leaves the API.
	assert.NotContains(t, rec.Body.String(), "hash")
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)
}

func TestHandleMe_MissingToken(t *testing.T) {
	srv, _ := newTestServer(t, &mockApp{}, &mockCatalog{})

	rec := doRequest(srv, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, 401, rec.Code)
}

func TestHandleMe_InvalidToken(t *testing.T) {
	srv, _ := newTestServer(t, &mockApp{}, &mockCatalog{})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	rec := doRequest(srv, req)
	assert.Equal(t, 403, rec.Code)
}

func TestHandleMe_UserGone(t *testing.T) {
	app := &mockApp{
		currentUserFn: func(context.Context, uuid.UUID) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	srv, tokens := newTestServer(t, app, &mockCatalog{})

	rec := doRequest(srv, bearerRequest(t, tokens, http.MethodGet, "/auth/me", uuid.New()))
	assert.Equal(t, 404, rec.Code)
}

func TestHandleMe_ServiceError(t *testing.T) {
	app := &mockApp{
		currentUserFn: func(context.Context, uuid.UUID) (*domain.User, error) {
			return nil, fmt.Errorf("db down")
		},
	}
	srv, tokens := newTestServer(t, app, &mockCatalog{})

	rec := doRequest(srv, bearerRequest(t, tokens, http.MethodGet, "/auth/me", uuid.New()))
	assert.Equal(t, 500, rec.Code)
}
