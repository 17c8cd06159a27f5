package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// clockSkew is tolerated between this service and the identity service
// that mints tokens for the portal.
const clockSkew = 30 * time.Second

var errEmptyToken = errors.New("token is empty")

// JWTManager signs and verifies HS256 access tokens. The portal's identity
// service mints tokens for signed-in users; here tokens are only verified,
// and minted for operators through mslctl.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	parser    *jwt.Parser
	now       func() time.Time
}

// NewJWTManager creates a JWT manager. secret must be at least 32 characters.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockSkew),
		),
		now: time.Now,
	}
}

type accessClaims struct {
	jwt.RegisteredClaims
	Role      string `json:"role,omitempty"`
	StudentID int    `json:"student_id,omitempty"`
}

// GenerateAccessToken signs a token whose subject is the account ID. Role and
// student number travel as custom claims; the student number is omitted for
// accounts that have none.
func (m *JWTManager) GenerateAccessToken(id Identity) (string, error) {
	now := m.now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   id.UserID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role:      id.Role,
		StudentID: id.StudentID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken verifies signature, expiry and issuer, and returns the
// identity the token carries.
func (m *JWTManager) ValidateAccessToken(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, errEmptyToken
	}

	var claims accessClaims
	if _, err := m.parser.ParseWithClaims(tokenString, &claims, m.key); err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}

	// Checked here rather than with jwt.WithIssuer so the error names both sides.
	if claims.Issuer != m.issuer {
		return Identity{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid subject UUID: %w", err)
	}
	if claims.StudentID < 0 {
		return Identity{}, fmt.Errorf("invalid student id %d", claims.StudentID)
	}

	return Identity{UserID: userID, Role: claims.Role, StudentID: claims.StudentID}, nil
}

func (m *JWTManager) key(*jwt.Token) (any, error) {
	return m.secret, nil
}
