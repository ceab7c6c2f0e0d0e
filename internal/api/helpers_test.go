package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ccrayp/portfolio-api/internal/api"
	"github.com/ccrayp/portfolio-api/internal/config"
	"github.com/ccrayp/portfolio-api/internal/mocks"
	"github.com/ccrayp/portfolio-api/internal/platform/database"
	"github.com/ccrayp/portfolio-api/internal/service"
	"github.com/ccrayp/portfolio-api/internal/service/auth"
	"github.com/ccrayp/portfolio-api/internal/testdb"
)

const (
	testSecret   = "test-jwt-secret-that-is-32-chars-long"
	testUser     = "admin"
	testPassword = "s3cret"
)

// testEnv is a full router backed by an in-memory SQLite database.
type testEnv struct {
	handler http.Handler
	token   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testdb.OpenSQLite(t)

	posts, err := service.NewPostService(db, database.NewPostStore(db, nil), nil)
	require.NoError(t, err)
	projects, err := service.NewProjectService(db, database.NewProjectStore(db, nil), nil)
	require.NoError(t, err)
	techs, err := service.NewTechnologyService(db, database.NewTechnologyStore(db, nil), nil)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	authCfg := config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 60,
		AdminUsername:        testUser,
		AdminPasswordHash:    string(hash),
	}
	jwtService, err := auth.NewJWTService(authCfg)
	require.NoError(t, err)
	authenticator, err := auth.NewAuthenticator(authCfg, jwtService, nil, nil)
	require.NoError(t, err)

	token, err := authenticator.Login(context.Background(), testUser, testPassword)
	require.NoError(t, err)

	return &testEnv{
		handler: api.NewRouter(api.RouterDeps{
			Auth:         api.NewAuthHandler(authenticator, nil),
			Posts:        api.NewPostHandler(posts, nil),
			Projects:     api.NewProjectHandler(projects, nil),
			Technologies: api.NewTechnologyHandler(techs, nil),
			JWTService:   jwtService,
		}),
		token: token,
	}
}

// mockEnv is a router whose services are mocks and whose every token is
// accepted as the admin's.
type mockEnv struct {
	handler  http.Handler
	login    *mocks.MockLoginService
	posts    *mocks.MockPostService
	projects *mocks.MockProjectService
	techs    *mocks.MockTechnologyService
}

func newMockEnv() *mockEnv {
	e := &mockEnv{
		login:    &mocks.MockLoginService{},
		posts:    &mocks.MockPostService{},
		projects: &mocks.MockProjectService{},
		techs:    &mocks.MockTechnologyService{},
	}
	e.handler = api.NewRouter(api.RouterDeps{
		Auth:         api.NewAuthHandler(e.login, nil),
		Posts:        api.NewPostHandler(e.posts, nil),
		Projects:     api.NewProjectHandler(e.projects, nil),
		Technologies: api.NewTechnologyHandler(e.techs, nil),
		JWTService: &mocks.MockJWTService{
			ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
				if token != "valid" {
					return nil, auth.ErrInvalidToken
				}
				return &auth.Claims{Subject: testUser}, nil
			},
		},
	})
	return e
}

// request options
type reqOpt func(*http.Request)

func withToken(token string) reqOpt {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func withForm(values url.Values) reqOpt {
	return func(r *http.Request) {
		r.Body = http.NoBody
		if values != nil {
			body := values.Encode()
			r.Body = io.NopCloser(strings.NewReader(body))
			r.ContentLength = int64(len(body))
		}
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
}

func withJSON(body string) reqOpt {
	return func(r *http.Request) {
		r.Body = io.NopCloser(strings.NewReader(body))
		r.ContentLength = int64(len(body))
		r.Header.Set("Content-Type", "application/json")
	}
}

func serve(t *testing.T, h http.Handler, method, path string, opts ...reqOpt) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Message
}

func postForm() url.Values {
	return url.Values{
		"label": {"Hello"},
		"text":  {"First post"},
		"img":   {"hello.png"},
		"link":  {"https://example.com/hello"},
		"date":  {"2024-05-01"},
		"mode":  {"dark"},
	}
}

func projectForm() url.Values {
	return url.Values{
		"label": {"CMS"},
		"text":  {"Content API"},
		"img":   {"cms.png"},
		"stack": {"Go, SQLite"},
		"link":  {"https://example.com/cms"},
	}
}

func technologyForm(group string) url.Values {
	return url.Values{
		"label": {"Go"},
		"img":   {"go.png"},
		"group": {group},
		"mode":  {"dark"},
	}
}
