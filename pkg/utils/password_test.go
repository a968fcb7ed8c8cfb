package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Abc12345", true},
		{"abc12345", false}, // no uppercase
		{"ABC12345", false}, // no lowercase
		{"Abcdefgh", false}, // no digit
		{"Ab1", false},      // too short
		{"", false},
		{"Contraseña1", true},
	}

	for _, tc := range cases {
		ok, message := ValidatePassword(tc.password)
		assert.Equal(t, tc.ok, ok, "password %q", tc.password)
		if !tc.ok {
			assert.NotEmpty(t, message)
		}
	}
}
