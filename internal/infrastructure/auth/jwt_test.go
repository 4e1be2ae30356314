package auth

import (
	"testing"
	"time"

	"github.com/estateops/backend/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret: "test-secret-key-for-jwt-tests-32chars!!",
		Issuer: "backoffice-backend",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService()
	tenantID := uuid.New()
	userID := uuid.New()

	token, err := svc.GenerateToken(GenerateTokenInput{
		TenantID: tenantID,
		UserID:   userID,
		Username: "accountant",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, tenantID.String(), claims.TenantID)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "accountant", claims.Username)
	assert.False(t, claims.Admin)
}

func TestValidateToken_AdminClaim(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateToken(GenerateTokenInput{
		TenantID: uuid.New(),
		UserID:   uuid.New(),
		Username: "owner",
		Admin:    true,
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.Admin)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateToken(GenerateTokenInput{
		TenantID: uuid.New(),
		UserID:   uuid.New(),
		TTL:      -time.Minute,
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestService()
	other := NewJWTService(config.JWTConfig{
		Secret: "a-completely-different-secret-value-here",
		Issuer: "backoffice-backend",
	})

	token, err := other.GenerateToken(GenerateTokenInput{
		TenantID: uuid.New(),
		UserID:   uuid.New(),
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_MissingTenantID(t *testing.T) {
	svc := newTestService()

	// Sign a token without a tenant_id claim
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "backoffice-backend",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: uuid.New().String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret-key-for-jwt-tests-32chars!!"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrMissingTenantID)
}

func TestValidateToken_MissingUserID(t *testing.T) {
	svc := newTestService()

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "backoffice-backend",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		TenantID: uuid.New().String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret-key-for-jwt-tests-32chars!!"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrMissingUserID)
}

func TestClaims_UUIDHelpers(t *testing.T) {
	tenantID := uuid.New()
	userID := uuid.New()
	claims := &Claims{TenantID: tenantID.String(), UserID: userID.String()}

	gotTenant, err := claims.GetTenantUUID()
	require.NoError(t, err)
	assert.Equal(t, tenantID, gotTenant)

	gotUser, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, gotUser)

	bad := &Claims{TenantID: "nope"}
	_, err = bad.GetTenantUUID()
	assert.Error(t, err)
}
