package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const flashTTL = 5 * time.Minute

// Flash is a one-time notification carried to the next rendered page.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// AddFlash stores a signed flash cookie read exactly once by PopFlash.
func (m *Manager) AddFlash(c echo.Context, kind, message string) error {
	exp := time.Now().Add(flashTTL)
	claims := jwt.MapClaims{
		"typ":  "flash",
		"kind": kind,
		"msg":  message,
		"exp":  exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
	if err != nil {
		return err
	}
	c.SetCookie(CreateCookie(FlashCookie, token, "/", exp, m.Secure))
	return nil
}

// PopFlash returns the pending flash, if any, and clears it so it renders
// exactly once. Tampered or expired cookies are dropped silently.
func (m *Manager) PopFlash(c echo.Context) *Flash {
	cookie, err := c.Cookie(FlashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}

	c.SetCookie(CreateCookie(FlashCookie, "", "/", time.Unix(0, 0), m.Secure))

	claims, err := m.parse(cookie.Value)
	if err != nil {
		return nil
	}
	if typ, ok := claims["typ"].(string); !ok || typ != "flash" {
		return nil
	}

	kind, _ := claims["kind"].(string)
	msg, _ := claims["msg"].(string)
	if msg == "" {
		return nil
	}
	return &Flash{Kind: kind, Message: msg}
}
