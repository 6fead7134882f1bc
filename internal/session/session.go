package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleVolunteer    Role = "volunteer"
	RoleOrganization Role = "organization"
)

var (
	ErrNotLoggedIn = errors.New("not logged in")
	ErrWrongRole   = errors.New("wrong role for this page")
)

const (
	cookieName = "session"
	sessionTTL = 24 * time.Hour
)

// Claims is the signed session payload. UserID and Role are always written
// and cleared together.
type Claims struct {
	UserID int64 `json:"uid"`
	Role   Role  `json:"role"`
	jwt.RegisteredClaims
}

// Manager identifies the current actor across requests via an HS256-signed
// HttpOnly cookie.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Issue establishes a session for the given actor and role.
func (m *Manager) Issue(c *gin.Context, userID int64, role Role) error {
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return err
	}

	c.SetCookie(
		cookieName,               // name
		signed,                   // value
		int(sessionTTL.Seconds()), // expires in 1 day
		"/",                      // path
		"",                       // domain (same origin)
		false,                    // secure (false for localhost; true for HTTPS)
		true,                     // HttpOnly
	)
	return nil
}

// Current returns the claims of the logged-in actor. A missing, expired, or
// tampered cookie yields ErrNotLoggedIn, never a fault.
func (m *Manager) Current(c *gin.Context) (*Claims, error) {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie == "" {
		return nil, ErrNotLoggedIn
	}

	token, err := jwt.ParseWithClaims(cookie, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNotLoggedIn
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrNotLoggedIn
	}
	if claims.Role != RoleVolunteer && claims.Role != RoleOrganization {
		return nil, ErrNotLoggedIn
	}
	return claims, nil
}

// Clear removes the session. Clearing without an active session reports
// ErrNotLoggedIn so callers can surface it instead of faulting.
func (m *Manager) Clear(c *gin.Context) error {
	if _, err := m.Current(c); err != nil {
		return ErrNotLoggedIn
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
	return nil
}

// CurrentWithRole returns the claims only when the actor holds the given
// role; otherwise ErrNotLoggedIn or ErrWrongRole.
func (m *Manager) CurrentWithRole(c *gin.Context, role Role) (*Claims, error) {
	claims, err := m.Current(c)
	if err != nil {
		return nil, err
	}
	if claims.Role != role {
		return nil, ErrWrongRole
	}
	return claims, nil
}

// Require gates a route to one role. Anonymous visitors and actors with a
// different role are redirected to /home; no entity lookups happen first.
func (m *Manager) Require(role Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.CurrentWithRole(c, role)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/home")
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}
