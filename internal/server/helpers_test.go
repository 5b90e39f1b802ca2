package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/JoseMolina94/youtube-api-integration/internal/auth"
	"github.com/JoseMolina94/youtube-api-integration/internal/config"
	"github.com/JoseMolina94/youtube-api-integration/internal/domain"
)

// --- Mocks ---

type mockApp struct {
	registerFn    func(ctx context.Context, name, email, password string) (*domain.User, error)
	loginFn       func(ctx context.Context, email, password string) (string, *domain.User, error)
	currentUserFn func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	addFn         func(ctx context.Context, userID uuid.UUID, list domain.List, itemID string) ([]string, error)
	removeFn      func(ctx context.Context, userID uuid.UUID, list domain.List, itemID string) ([]string, error)
	listFn        func(ctx context.Context, userID uuid.UUID, list domain.List) ([]string, error)
}

func (m *mockApp) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	return m.registerFn(ctx, name, email, password)
}

func (m *mockApp) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockApp) CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return m.currentUserFn(ctx, userID)
}

func (m *mockApp) AddListItem(ctx context.Context, userID uuid.UUID, list domain.List, itemID string) ([]string, error) {
	return m.addFn(ctx, userID, list, itemID)
}

func (m *mockApp) RemoveListItem(ctx context.Context, userID uuid.UUID, list domain.List, itemID string) ([]string, error) {
	return m.removeFn(ctx, userID, list, itemID)
}

func (m *mockApp) ListItems(ctx context.Context, userID uuid.UUID, list domain.List) ([]string, error) {
	return m.listFn(ctx, userID, list)
}

type mockCatalog struct {
	searchFn  func(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error)
	channelFn func(ctx context.Context, channelID string) (*domain.Channel, error)
	videoFn   func(ctx context.Context, videoID string) (*domain.Video, error)
	relatedFn func(ctx context.Context, videoID, pageToken string) (*domain.SearchResult, error)
}

func (m *mockCatalog) Search(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
	return m.searchFn(ctx, params)
}

func (m *mockCatalog) GetChannel(ctx context.Context, channelID string) (*domain.Channel, error) {
	return m.channelFn(ctx, channelID)
}

func (m *mockCatalog) GetVideo(ctx context.Context, videoID string) (*domain.Video, error) {
	return m.videoFn(ctx, videoID)
}

func (m *mockCatalog) GetRelated(ctx context.Context, videoID, pageToken string) (*domain.SearchResult, error) {
	return m.relatedFn(ctx, videoID, pageToken)
}

type stubDB struct {
	pingErr error
}

func (s *stubDB) Ping(context.Context) error { return s.pingErr }

// --- Helpers ---

const testJWTSecret = "server-test-secret-16+"

// newTestServer builds a Server with a real token service so that bearer auth
// behaves as in production.
func newTestServer(t *testing.T, app domain.AppService, catalog domain.VideoCatalog) (*Server, *auth.TokenService) {
	t.Helper()

	cfg := &config.Config{
		Port:           "0",
		AllowedOrigins: []string{"*"},
		TokenTTL:       7 * 24 * time.Hour,
	}
	tokens := auth.NewTokenService(testJWTSecret, cfg.TokenTTL, clockwork.NewRealClock())

	return NewServer(cfg, app, catalog, tokens, &stubDB{}), tokens
}

// doRequest serves req through the full middleware chain.
func doRequest(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func bearerRequest(t *testing.T, tokens *auth.TokenService, method, path string, userID uuid.UUID) *http.Request {
	t.Helper()
	token, err := tokens.Issue(userID)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func decodeBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var decoded map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&decoded))
	return decoded
}
