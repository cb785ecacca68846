package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/sajiloprint/press-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, "user-1", "admin-1", "admin", "press-api-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, adminID, role, err := pkgjwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "admin-1", adminID)
	assert.Equal(t, "admin", role)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, "user-1", "admin-1", "staff", "press-api-test", 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("another-secret", token)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, "user-1", "admin-1", "admin", "press-api-test", -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, token)
	assert.Error(t, err)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", "user-1", "admin-1", "admin", "press-api-test", 60)
	assert.Error(t, err)
}
