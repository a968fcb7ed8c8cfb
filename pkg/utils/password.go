package utils

import "unicode"

// ValidatePassword enforces the account password policy: minimum 8
// characters with at least one uppercase letter, one lowercase letter
// and one digit. Returns false with the failing rule's message.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "La contraseña debe tener al menos 8 caracteres"
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return false, "La contraseña debe incluir al menos una letra mayúscula"
	}
	if !hasLower {
		return false, "La contraseña debe incluir al menos una letra minúscula"
	}
	if !hasDigit {
		return false, "La contraseña debe incluir al menos un número"
	}

	return true, ""
}
