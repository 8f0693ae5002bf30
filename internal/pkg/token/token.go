package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const DefaultTTL = 30 * time.Minute

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims is the decoded identity carried by a verified bearer token.
type Claims struct {
	UserId uuid.UUID
	Email  string
}

type jwtClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service issues and verifies HS256 bearer tokens. The signing secret is
// loaded once at construction and must never be logged.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue produces a signed token carrying the subject id and email claims
// with an absolute expiry s.ttl from now.
func (s *Service) Issue(userId uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userId.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the decoded identity.
// Expired tokens yield ErrTokenExpired; everything else that fails
// (bad signature, malformed token, missing subject) yields ErrTokenInvalid.
func (s *Service) Verify(tokenStr string) (*Claims, error) {
	var claims jwtClaims
	t, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !t.Valid {
		return nil, ErrTokenInvalid
	}

	userId, err := uuid.Parse(claims.Subject)
	if err != nil || userId == uuid.Nil {
		return nil, ErrTokenInvalid
	}

	return &Claims{UserId: userId, Email: claims.Email}, nil
}

// Refresh re-issues a token with a fresh expiry window from already-verified
// claims. Callers must only pass claims returned by Verify.
func (s *Service) Refresh(c *Claims) (string, error) {
	return s.Issue(c.UserId, c.Email)
}
