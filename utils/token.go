package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"coursehub/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// TokenClaims are the claims carried by a session token.
type TokenClaims struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	jwt.RegisteredClaims
}

// UserID returns the numeric account id stored in the subject claim.
func (c *TokenClaims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid subject %q", c.Subject)
	}
	return uint(id), nil
}

// IssuedTokens is the result of a successful login or registration.
type IssuedTokens struct {
	Token        string
	RefreshToken string
	ExpiresAt    time.Time
}

// TokenIssuer signs HS256 session tokens with a server-held key.
type TokenIssuer struct {
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

func NewTokenIssuer(key, issuer, audience string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		key:      []byte(key),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Issue creates a signed session token and an opaque refresh token for user.
func (t *TokenIssuer) Issue(user models.User) (IssuedTokens, error) {
	issuedAt := t.now().UTC()
	expiresAt := issuedAt.Add(t.ttl)

	claims := &TokenClaims{
		Email:     user.Email,
		Name:      user.DisplayName(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			Issuer:    t.issuer,
			Audience:  jwt.ClaimStrings{t.audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.key)
	if err != nil {
		return IssuedTokens{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return IssuedTokens{
		Token:        signed,
		RefreshToken: NewRefreshToken(),
		ExpiresAt:    expiresAt,
	}, nil
}

// Parse verifies signature, expiry, issuer and audience of a session token.
func (t *TokenIssuer) Parse(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if !claims.VerifyIssuer(t.issuer, true) {
		return nil, errors.New("unexpected token issuer")
	}
	if !claims.VerifyAudience(t.audience, true) {
		return nil, errors.New("unexpected token audience")
	}
	return claims, nil
}

// NewRefreshToken returns a random opaque identifier with no embedded claims.
func NewRefreshToken() string {
	return uuid.NewString()
}
