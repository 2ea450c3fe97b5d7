// Package session manages the admin login cookie and one-shot flash
// messages. Both are HS256-signed tokens so no server-side session state
// exists outside the cookie itself.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	SessionCookie = "session"
	FlashCookie   = "flash"

	sessionTTL = 12 * time.Hour
)

type Manager struct {
	Secret []byte
	Secure bool
}

func CreateCookie(name, value, path string, expires time.Time, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  expires,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (m *Manager) signSession(adminID uint, exp time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": adminID,
		"typ": "session",
		"exp": exp.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.Secret)
}

func (m *Manager) parse(raw string) (jwt.MapClaims, error) {
	t, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signature method: %v", t.Header["alg"])
		}
		return m.Secret, nil
	})
	if err != nil || !t.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("cannot parse claims")
	}
	return claims, nil
}

// SetSession issues the login cookie for the admin.
func (m *Manager) SetSession(c echo.Context, adminID uint) error {
	exp := time.Now().Add(sessionTTL)
	token, err := m.signSession(adminID, exp)
	if err != nil {
		return err
	}
	c.SetCookie(CreateCookie(SessionCookie, token, "/", exp, m.Secure))
	return nil
}

func (m *Manager) ClearSession(c echo.Context) {
	c.SetCookie(CreateCookie(SessionCookie, "", "/", time.Unix(0, 0), m.Secure))
}

// AdminID reads and verifies the login cookie.
func (m *Manager) AdminID(c echo.Context) (uint, bool) {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return 0, false
	}

	claims, err := m.parse(cookie.Value)
	if err != nil {
		return 0, false
	}
	if typ, ok := claims["typ"].(string); !ok || typ != "session" {
		return 0, false
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, false
	}
	return uint(sub), true
}

// RequireLogin redirects anonymous requests to the login page.
func (m *Manager) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := m.AdminID(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		c.Set("adminID", id)
		return next(c)
	}
}
