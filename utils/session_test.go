package utils_test

import (
	"testing"

	"github.com/dukahq/duka-api/utils"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	token, err := utils.SignSessionToken(utils.SessionClaims{UserID: "user-1", CartID: "cart-1"})
	require.NoError(t, err)

	claims, err := utils.ParseSessionToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "cart-1", claims.CartID)
}

func TestSessionTokenUnboundCart(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	token, err := utils.SignSessionToken(utils.SessionClaims{UserID: "user-1"})
	require.NoError(t, err)

	claims, err := utils.ParseSessionToken(token)
	require.NoError(t, err)
	require.Empty(t, claims.CartID)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	token, err := utils.SignSessionToken(utils.SessionClaims{UserID: "user-1"})
	require.NoError(t, err)

	t.Setenv("SESSION_SECRET", "other-secret")
	_, err = utils.ParseSessionToken(token)
	require.Error(t, err)
}

func TestSessionTokenRequiresUser(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	token, err := utils.SignSessionToken(utils.SessionClaims{})
	require.NoError(t, err)

	_, err = utils.ParseSessionToken(token)
	require.Error(t, err)
}

func TestSessionTokenGarbage(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	_, err := utils.ParseSessionToken("not-a-token")
	require.Error(t, err)
}
