package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenTypeAccess = "access"

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	TokenType string    `json:"token_type"`

	jwtlib.RegisteredClaims
}

// Service verifies access tokens issued by the auth system. Token issuing
// lives with that system; the matcher only needs to know who is asking.
type Service interface {
	ValidateAccessToken(tokenString string) (Claims, error)
}

type HMACVerifier struct {
	accessSecret []byte
	now          func() time.Time
}

func NewHMACVerifier(accessSecret string) *HMACVerifier {
	return &HMACVerifier{
		accessSecret: []byte(accessSecret),
		now:          time.Now,
	}
}

func (s *HMACVerifier) ValidateAccessToken(tokenString string) (Claims, error) {
	if len(s.accessSecret) == 0 {
		return Claims{}, ErrTokenInvalid
	}

	parser := jwtlib.NewParser(jwtlib.WithValidMethods([]string{"HS256"}))

	var c Claims
	tok, err := parser.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}

	if c.ExpiresAt != nil && s.now().UTC().After(c.ExpiresAt.Time.UTC()) {
		return Claims{}, ErrTokenExpired
	}

	if c.TokenType != TokenTypeAccess {
		return Claims{}, ErrTokenInvalid
	}
	if c.UserID == uuid.Nil {
		if c.Subject != "" {
			parsed, err := uuid.Parse(c.Subject)
			if err != nil {
				return Claims{}, ErrTokenInvalid
			}
			c.UserID = parsed
		} else {
			return Claims{}, ErrTokenInvalid
		}
	}

	return c, nil
}
