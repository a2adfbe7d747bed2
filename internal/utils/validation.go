package utils

import (
	"fmt"
	"net/mail"
	"strings"
)

// ValidateEmail validates an email address
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("invalid email format")
	}

	return nil
}

// ValidateRequired validates that a string is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidateObjectID validates a backend entity id
func ValidateObjectID(id, fieldName string) error {
	if err := ValidateRequired(id, fieldName); err != nil {
		return err
	}
	if strings.ContainsAny(id, " /") {
		return fmt.Errorf("%s is not a valid id", fieldName)
	}
	return nil
}
