package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(e *echo.Echo, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func issuedCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	t.Fatalf("cookie %s not set", name)
	return nil
}

func TestSessionRoundTrip(t *testing.T) {
	e := echo.New()
	m := &Manager{Secret: []byte("test-secret")}

	c, rec := newContext(e)
	require.NoError(t, m.SetSession(c, 1))
	ck := issuedCookie(t, rec, SessionCookie)
	require.True(t, ck.HttpOnly)

	c2, _ := newContext(e, ck)
	id, ok := m.AdminID(c2)
	require.True(t, ok)
	require.EqualValues(t, 1, id)
}

func TestSessionRejectsTamperedToken(t *testing.T) {
	e := echo.New()
	m := &Manager{Secret: []byte("test-secret")}
	other := &Manager{Secret: []byte("other-secret")}

	c, rec := newContext(e)
	require.NoError(t, other.SetSession(c, 1))
	ck := issuedCookie(t, rec, SessionCookie)

	c2, _ := newContext(e, ck)
	_, ok := m.AdminID(c2)
	require.False(t, ok)
}

func TestClearSession(t *testing.T) {
	e := echo.New()
	m := &Manager{Secret: []byte("test-secret")}

	c, rec := newContext(e)
	m.ClearSession(c)
	ck := issuedCookie(t, rec, SessionCookie)
	require.Empty(t, ck.Value)
}

func TestRequireLoginRedirectsAnonymous(t *testing.T) {
	e := echo.New()
	m := &Manager{Secret: []byte("test-secret")}

	handler := m.RequireLogin(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	c, rec := newContext(e)
	require.NoError(t, handler(c))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireLoginPassesAuthenticated(t *testing.T) {
	e := echo.New()
	m := &Manager{Secret: []byte("test-secret")}

	c, rec := newContext(e)
	require.NoError(t, m.SetSession(c, 7))
	ck := issuedCookie(t, rec, SessionCookie)

	handler := m.RequireLogin(func(c echo.Context) error {
		require.EqualValues(t, 7, c.Get("adminID"))
		return c.NoContent(http.StatusOK)
	})

	c2, rec2 := newContext(e, ck)
	require.NoError(t, handler(c2))
	require.Equal(t, http.StatusOK, rec2.Code)
}

func TestFlashPopsExactlyOnce(t *testing.T) {
	e := echo.New()
	m := &Manager{Secret: []byte("test-secret")}

	c, rec := newContext(e)
	require.NoError(t, m.AddFlash(c, "success", "Product created successfully."))
	ck := issuedCookie(t, rec, FlashCookie)

	c2, rec2 := newContext(e, ck)
	flash := m.PopFlash(c2)
	require.NotNil(t, flash)
	require.Equal(t, "success", flash.Kind)
	require.Equal(t, "Product created successfully.", flash.Message)

	// Pop clears the cookie so the next request carries nothing.
	cleared := issuedCookie(t, rec2, FlashCookie)
	require.Empty(t, cleared.Value)

	c3, _ := newContext(e)
	require.Nil(t, m.PopFlash(c3))
}

func TestFlashRejectsTamperedCookie(t *testing.T) {
	e := echo.New()
	m := &Manager{Secret: []byte("test-secret")}

	ck := &http.Cookie{Name: FlashCookie, Value: "not-a-token", Path: "/"}
	c, _ := newContext(e, ck)
	require.Nil(t, m.PopFlash(c))
}
