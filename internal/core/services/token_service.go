package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidAccessKey = errors.New("invalid access key")

const tokenSubject = "owner"

// TokenService guards the API with a single owner. The owner exchanges the
// access key, stored as a bcrypt hash, for a signed JWT.
type TokenService struct {
	secretKey     []byte
	issuer        string
	tokenDuration time.Duration
	accessKeyHash []byte
}

func NewTokenService(secretKey string, issuer string, tokenDuration time.Duration, accessKeyHash string) *TokenService {
	return &TokenService{
		secretKey:     []byte(secretKey),
		issuer:        issuer,
		tokenDuration: tokenDuration,
		accessKeyHash: []byte(accessKeyHash),
	}
}

// Enabled reports whether an access key is configured. Without one the API is open.
func (s *TokenService) Enabled() bool {
	return len(s.accessKeyHash) > 0
}

// Issue checks the access key and returns a fresh token.
func (s *TokenService) Issue(accessKey string) (string, error) {
	if !s.Enabled() {
		return "", ErrInvalidAccessKey
	}
	if err := bcrypt.CompareHashAndPassword(s.accessKeyHash, []byte(accessKey)); err != nil {
		return "", ErrInvalidAccessKey
	}
	return s.GenerateToken(tokenSubject)
}

func (s *TokenService) GenerateToken(subject string) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(s.tokenDuration).Unix(),
		"iat": time.Now().Unix(),
		"iss": s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("token service: failed to sign token: %w", err)
	}

	return signedToken, nil
}

func (s *TokenService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}
	if iss, ok := claims["iss"].(string); !ok || iss != s.issuer {
		return "", fmt.Errorf("invalid token issuer")
	}
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", fmt.Errorf("invalid token subject")
	}
	return subject, nil
}
