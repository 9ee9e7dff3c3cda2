package middelware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"risun-backend/models"
	"risun-backend/utils"
	"risun-backend/utils/logger"
)

const (
	// ContextEmailKey is the gin context key holding the authenticated email.
	ContextEmailKey = "auth_email"
	// ContextClaimsKey is the gin context key holding the full token claims.
	ContextClaimsKey = "auth_claims"
)

// JWTManager signs and verifies session tokens issued at login.
type JWTManager struct {
	secret    []byte
	expiresIn time.Duration
	logger    logger.Logger
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(cfg *models.Config, log logger.Logger) *JWTManager {
	return &JWTManager{
		secret:    []byte(cfg.JWTSecret),
		expiresIn: cfg.JWTExpiresIn,
		logger:    log,
	}
}

// GenerateToken issues an HS256 token carrying the organization identity.
func (m *JWTManager) GenerateToken(org *models.Organization) (string, error) {
	now := time.Now()
	claims := &models.JWTClaims{
		OrganizationID:   org.ID,
		Email:            org.Email,
		OrganizationName: org.OrganizationName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        utils.GenerateUUID(),
			Subject:   org.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiresIn)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		m.logger.Errorf("Failed to sign token: %v", err)
		return "", err
	}

	return signed, nil
}

// ValidateToken parses and verifies a signed token, rejecting any signing
// method other than HMAC.
func (m *JWTManager) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// Identity resolves the caller's identity from a Bearer token when one is
// present and stores it in the request context. Requests without a valid
// token pass through unauthenticated; handlers fall back to the User-Email
// header for those.
func (m *JWTManager) Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			claims, err := m.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				m.logger.Warnf("Invalid bearer token: %v", err)
			} else {
				c.Set(ContextEmailKey, claims.Email)
				c.Set(ContextClaimsKey, claims)
			}
		}
		c.Next()
	}
}
