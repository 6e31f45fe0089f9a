package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zulhafiz/wellness-events/models"
)

func sampleVendor() *models.User {
	return &models.User{
		ID:    7,
		Name:  "Mike Chen",
		Email: "mike.chen@yogastudio.com",
		Role:  models.RoleVendor,
	}
}

func TestIssueAndParseToken(t *testing.T) {
	user := sampleVendor()

	tokenString, err := IssueToken(user, "test-secret", 7*24*time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := ParseToken(tokenString, "test-secret")
	assert.NoError(t, err)
	assert.Equal(t, float64(7), claims["id"])
	assert.Equal(t, "vendor", claims["role"])
	assert.Equal(t, "mike.chen@yogastudio.com", claims["email"])

	exp := int64(claims["exp"].(float64))
	expected := time.Now().Add(7 * 24 * time.Hour).Unix()
	assert.InDelta(t, expected, exp, 5)
}

func TestParseToken_WrongSecret(t *testing.T) {
	tokenString, err := IssueToken(sampleVendor(), "test-secret", time.Hour)
	assert.NoError(t, err)

	claims, err := ParseToken(tokenString, "other-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseToken_Expired(t *testing.T) {
	tokenString, err := IssueToken(sampleVendor(), "test-secret", -time.Hour)
	assert.NoError(t, err)

	claims, err := ParseToken(tokenString, "test-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseToken_Garbage(t *testing.T) {
	claims, err := ParseToken("not.a.token", "test-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
