package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount_NormalizesUsername(t *testing.T) {
	for _, name := range []string{"Admin", "admin", "ADMIN", "aDmIn"} {
		acc := NewAccount(name, "hash")
		assert.Equal(t, "admin", acc.Username)
	}
}

func TestAccount_HashNotSerialized(t *testing.T) {
	acc := NewAccount("Admin", "$2a$10$secrethashbytes")

	b, err := json.Marshal(acc)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secrethashbytes")
	assert.JSONEq(t, `{"username":"admin"}`, string(b))
}
