package auth

import (
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Verification failures. Handlers collapse all of these into a plain 401;
// the distinction exists for logs and tests only.
var (
	ErrMissingToken     = errors.New("missing token")
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrExpired          = errors.New("token expired")
)

const bearerPrefix = "Bearer "

type Claims struct {
	Sub  string `json:"sub"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 tokens against a process-wide
// secret. The secret is read once at startup and never changes afterwards,
// so validation is pure computation with no shared mutable state.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the subject and role. Callers must have
// verified credentials before calling this; issuance itself cannot fail on
// valid inputs.
func (tm *TokenManager) Issue(sub, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Sub:  sub,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// ValidateBearer extracts the token from an Authorization header value and
// validates it. An empty header is ErrMissingToken; a header without the
// Bearer prefix is ErrMalformedToken.
func (tm *TokenManager) ValidateBearer(header string) (*Claims, error) {
	if header == "" {
		return nil, ErrMissingToken
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, ErrMalformedToken
	}
	return tm.Validate(strings.TrimPrefix(header, bearerPrefix))
}

// Validate checks signature and expiry and returns the embedded claims.
func (tm *TokenManager) Validate(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrMalformedToken
		}
		return tm.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		default:
			return nil, ErrMalformedToken
		}
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, ErrMalformedToken
	}
	return c, nil
}
