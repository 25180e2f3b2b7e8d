package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/devraj/lecturehall/internal/app/models"
)

func testJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "lecturehall.test",
	})
}

func testUser() *models.User {
	name := "Priya Gupta"
	return &models.User{
		ID:    2,
		Name:  &name,
		Email: "priya.gupta@gmail.com",
		Role:  models.RoleInstructor,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService(time.Hour)

	token, err := svc.GenerateToken(testUser())
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), claims.UserID)
	assert.Equal(t, "priya.gupta@gmail.com", claims.Email)
	assert.Equal(t, string(models.RoleInstructor), claims.Role)
	assert.Equal(t, "lecturehall.test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := testJWTService(-time.Minute)

	token, err := svc.GenerateToken(testUser())
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := testJWTService(time.Hour).GenerateToken(testUser())
	assert.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", TokenExp: time.Hour})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := testJWTService(time.Hour).ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("abc.def.ghi")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("Basic dXNlcjpwYXNz")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
