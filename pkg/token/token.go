// Package token issues and verifies the stateless session tokens carried
// on every authenticated request. Tokens are HS256-signed JWTs holding the
// subject user id, optional email/role claims and an absolute expiry; there
// is no server-side revocation, expiry is the only lifetime bound.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired means the signature checked out but the expiry is in the past.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers malformed tokens, wrong signatures and wrong algorithms.
	ErrTokenInvalid = errors.New("token invalid")
)

const DefaultTTL = 24 * time.Hour

// Claims carried inside a session token. Email and Role are optional;
// Subject user id and expiry are always present.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token codec requires a signing secret")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}, nil
}

func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for the given subject. A non-positive ttl falls back
// to the codec default.
func (c *Codec) Issue(userID int64, email, role string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = c.ttl
	}

	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token string. The signing method is pinned
// to HS256; tokens signed with any other algorithm fail as invalid.
func (c *Codec) Verify(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	parsed, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.UserID == 0 {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
