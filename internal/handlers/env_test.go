package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gashtstore/admin/internal/config"
	"github.com/gashtstore/admin/internal/db"
	"github.com/gashtstore/admin/internal/repo"
	"github.com/gashtstore/admin/internal/service"
	"github.com/gashtstore/admin/internal/session"
	"github.com/gashtstore/admin/internal/upload"
)

type testEnv struct {
	T         *testing.T
	E         *echo.Echo
	DB        *gorm.DB
	Svc       *service.StoreService
	Sessions  *session.Manager
	Uploads   *upload.Store
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Products  *ProductHandler
	Profile   *ProfileHandler
	InitDB    *InitDBHandler
	Files     *UploadHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	uploads, err := upload.NewStore(t.TempDir(), upload.DefaultMaxBytes)
	require.NoError(t, err)

	sessions := &session.Manager{Secret: []byte("test-secret")}
	svc := service.New(repo.New(gdb))

	e := echo.New()
	renderer, err := NewRenderer()
	require.NoError(t, err)
	e.Renderer = renderer
	e.HTTPErrorHandler = HTTPErrorHandler

	cfg := &config.Config{
		AppEnv:    "development",
		SecretKey: "test-secret",
		AdminPass: "admin",
	}

	return &testEnv{
		T:         t,
		E:         e,
		DB:        gdb,
		Svc:       svc,
		Sessions:  sessions,
		Uploads:   uploads,
		Auth:      &AuthHandler{Svc: svc, Sessions: sessions},
		Dashboard: &DashboardHandler{Svc: svc, Sessions: sessions},
		Products:  &ProductHandler{Svc: svc, Sessions: sessions, Uploads: uploads},
		Profile:   &ProfileHandler{Svc: svc, Sessions: sessions, Uploads: uploads},
		InitDB:    &InitDBHandler{DB: gdb, Svc: svc, Sessions: sessions, Cfg: cfg},
		Files:     &UploadHandler{Uploads: uploads},
	}
}

func (env *testEnv) doFormRequest(method, path string, form url.Values, cookies ...*http.Cookie) (*httptest.ResponseRecorder, echo.Context) {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) loginCookie() *http.Cookie {
	env.T.Helper()

	rec, c := env.doFormRequest(http.MethodGet, "/", nil)
	require.NoError(env.T, env.Sessions.SetSession(c, 1))
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.SessionCookie {
			return ck
		}
	}
	env.T.Fatal("session cookie not issued")
	return nil
}

func validServiceInput() service.ProductInput {
	return service.ProductInput{
		Name:     "Classic Istanbul T-Shirt",
		Price:    29.99,
		Category: "T-Shirts",
		Stock:    50,
	}
}

func flashCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.FlashCookie && ck.Value != "" {
			return ck
		}
	}
	return nil
}
