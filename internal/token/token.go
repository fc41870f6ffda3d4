package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that does not validate: malformed
// input, bad signature, unexpected algorithm, or expired claims.
var ErrInvalidToken = errors.New("invalid token")

// Claims represents the claims embedded in an access token
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service mints and validates HS256-signed access tokens. It is stateless:
// validity is fully determined by the signature and the claims.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// New creates a token service. A ttl of 0 issues tokens without an exp claim,
// which never expire.
func New(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue generates a signed token carrying the username claim
func (s *Service) Issue(username string) (string, error) {
	claims := Claims{Username: username}
	if s.ttl > 0 {
		claims.RegisteredClaims = jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifies a token and returns its claims. It fails closed: any parse
// error, signature mismatch, non-HMAC signing method, or expired exp claim
// yields ErrInvalidToken.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Username == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
