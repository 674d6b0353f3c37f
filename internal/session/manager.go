// Package session tracks the authenticated identity for the duration of a
// session. The only transitions are Anonymous -> Authenticated (login) and
// Authenticated -> Anonymous (explicit revoke).
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"minisocial/internal/common"
	"minisocial/internal/dbmysql"
)

// Session carries the identity every controller operation is gated on.
type Session struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// Claims is the JWT payload backing a session token.
type Claims struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// Manager issues, resolves, and revokes session tokens. Revocation is held
// in memory; a restart signs everyone out, which is acceptable for a single
// backend instance.
type Manager struct {
	secret []byte
	ttl    time.Duration

	mu      sync.Mutex
	revoked map[string]struct{}
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret:  []byte(secret),
		ttl:     ttl,
		revoked: make(map[string]struct{}),
	}
}

// Issue signs a token for the user.
func (m *Manager) Issue(user *dbmysql.User) (string, error) {
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "minisocial",
			Subject:   "user-auth",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Resolve validates the token and returns the session it carries. Expired,
// malformed, tampered, and revoked tokens all resolve to ErrUnauthenticated.
func (m *Manager) Resolve(tokenString string) (*Session, error) {
	m.mu.Lock()
	_, revoked := m.revoked[tokenString]
	m.mu.Unlock()
	if revoked {
		return nil, fmt.Errorf("%w: token revoked", common.ErrUnauthenticated)
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnauthenticated, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", common.ErrUnauthenticated)
	}
	return &Session{
		UserID:   claims.UserID,
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
	}, nil
}

// Revoke signs the token out. Unknown tokens are a no-op.
func (m *Manager) Revoke(tokenString string) {
	m.mu.Lock()
	m.revoked[tokenString] = struct{}{}
	m.mu.Unlock()
}
