package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Admin@123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Admin@123", hash)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("Instructor@Priya456")
	assert.NoError(t, err)

	assert.True(t, CheckPassword(hash, "Instructor@Priya456"))
	assert.False(t, CheckPassword(hash, "Instructor@Priya457"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestCheckPasswordInvalidHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "whatever"))
}
