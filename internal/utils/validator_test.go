// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type passwordFixture struct {
	Password string `validate:"strong_password"`
}

type usernameFixture struct {
	Username string `validate:"username"`
}

func TestStrongPasswordValidation(t *testing.T) {
	assert.NoError(t, ValidateStruct(&passwordFixture{Password: "Str0ng!pass"}))
	assert.Error(t, ValidateStruct(&passwordFixture{Password: "weak"}))
	assert.Error(t, ValidateStruct(&passwordFixture{Password: "nouppercase1!"}))
	assert.Error(t, ValidateStruct(&passwordFixture{Password: "NoSpecial123"}))
}

func TestUsernameValidation(t *testing.T) {
	assert.NoError(t, ValidateStruct(&usernameFixture{Username: "shop_owner_7"}))
	assert.Error(t, ValidateStruct(&usernameFixture{Username: "ab"}))
	assert.Error(t, ValidateStruct(&usernameFixture{Username: "has space"}))
	assert.Error(t, ValidateStruct(&usernameFixture{Username: "emoji🙂"}))
}
