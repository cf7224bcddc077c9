package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/metrics"
	"github.com/MKhiriev/go-posts/internal/service"
	"github.com/MKhiriev/go-posts/internal/state"
	"github.com/MKhiriev/go-posts/internal/store"
	"github.com/MKhiriev/go-posts/internal/utils"
	"github.com/MKhiriev/go-posts/internal/validators"
	"github.com/MKhiriev/go-posts/models"
)

const testToken = "test-token"

// ---- Fakes ----

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(m.version, "", "")
}

// tokenSet accepts only the tokens it holds.
type tokenSet map[string]bool

func (s tokenSet) IsTokenValid(_ context.Context, token string) bool {
	return s[token]
}

// ---- Helpers ----

// newTestStates builds memory-backed states whose users provider accepts
// testToken only.
func newTestStates() *state.States {
	ids := utils.NewUUIDGenerator()
	users := store.NewMemoryUsersProvider(ids, tokenSet{testToken: true}, logger.Nop())

	return &state.States{
		Global: state.NewGlobal(users),
		Posts:  &state.Posts{Provider: store.NewMemoryPostsProvider(ids, logger.Nop())},
		Users:  &state.Users{Provider: users},
	}
}

func newTestValidator(t *testing.T) validators.Validator {
	t.Helper()
	v, err := validators.NewSchemaValidator()
	require.NoError(t, err)
	return v
}

func newTestServices() *service.Services {
	return &service.Services{
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}
}

func newTestHandler(t *testing.T, states *state.States, m *metrics.Metrics) *Handler {
	t.Helper()
	return NewHandler(states, newTestServices(), newTestValidator(t), m,
		config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
}

// newTestRouter builds the complete router over fresh memory states.
func newTestRouter(t *testing.T) (http.Handler, *state.States) {
	t.Helper()
	states := newTestStates()
	return newTestHandler(t, states, nil).Init(), states
}

// injectLogger puts zerolog.Logger into request context the same way
// withTraceID middleware does (via zerolog/log.Ctx).
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	ctx := l.WithContext(r.Context())
	return r.WithContext(ctx)
}

// newTestLogger creates a logger that writes to the provided buffer.
func newTestLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf).With().Timestamp().Logger()
}

// makeRequest creates a test request with a logger in context.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return injectLogger(req, newTestLogger(buf))
}

// do sends one request through router. An empty token sends no
// Authorization header.
func do(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const alicePost = `{"author":"alice","content":"hello","date":"2024-01-01T00:00:00Z"}`
