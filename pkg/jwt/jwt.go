package jwt

import (
	"errors"
	"fmt"
	"time"

	"dental-clinic-api/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	AccessToken TokenType = "access"
)

type Claims struct {
	PersonnelID int       `json:"personnel_id"`
	Role        string    `json:"role"`
	TokenType   TokenType `json:"token_type"`
	TokenID     string    `json:"token_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

// GenerateAccessToken signs an access token for a personnel member and
// returns the token together with its id.
func (s *JWTService) GenerateAccessToken(personnelID int, role string) (string, string, error) {
	tokenID := uuid.New().String()
	issuedAt := time.Now()
	claims := Claims{
		PersonnelID: personnelID,
		Role:        role,
		TokenType:   AccessToken,
		TokenID:     tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.AccessExpiry)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *JWTService) GetAccessExpiry() time.Duration {
	return s.config.AccessExpiry
}

// AccessTokenKey is the Redis key under which an issued access token is allowlisted.
func AccessTokenKey(personnelID int, tokenID string) string {
	return fmt.Sprintf("access_token:%d:%s", personnelID, tokenID)
}
