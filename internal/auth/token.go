package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// Token validation errors. All three mean "unauthenticated" to callers, but
// they are kept distinct so the failure can be logged precisely.
var (
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenMalformed        = errors.New("malformed token")
	ErrTokenInvalidSignature = errors.New("invalid token signature")
)

// Claims bind a session token to an account identity.
type Claims struct {
	AccountID            string `json:"account_id"` // Custom claim for account ID
	Email                string `json:"email"`      // Login identity the token was issued for
	jwt.RegisteredClaims        // Standard JWT claims
}

// TokenIssuer signs and validates session tokens with a process-wide HS256
// secret. It is stateless: there is no revocation list, so a leaked token
// stays valid until its natural expiry.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer builds an issuer from the shared signing secret and token
// lifetime. Constructed once at startup and read-only afterwards.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token asserting the given account identity.
func (i *TokenIssuer) Issue(accountID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID: accountID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Validate parses a token string and returns its claims, or one of the
// ErrToken* errors above.
func (i *TokenIssuer) Validate(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalidSignature
		}
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalidSignature
	}
	return claims, nil
}
