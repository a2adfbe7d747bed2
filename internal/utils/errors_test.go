package utils

import (
	"fmt"
	"net/http"
	"testing"
)

func TestIsAuthError(t *testing.T) {
	err := NewAPIError(http.StatusUnauthorized, "unauthorized")
	if !IsAuthError(err) {
		t.Error("401 APIError should classify as auth error")
	}
	if IsAuthError(NewAPIError(http.StatusBadRequest, "nope")) {
		t.Error("400 APIError should not classify as auth error")
	}
	if IsAuthError(fmt.Errorf("plain error")) {
		t.Error("plain error should not classify as auth error")
	}

	wrapped := fmt.Errorf("calling backend: %w", err)
	if !IsAuthError(wrapped) {
		t.Error("wrapped APIError should still classify as auth error")
	}
}

func TestIsNotFoundError(t *testing.T) {
	if !IsNotFoundError(NewAPIError(http.StatusNotFound, "missing")) {
		t.Error("404 APIError should classify as not found")
	}
	if IsNotFoundError(NewAPIError(http.StatusInternalServerError, "boom")) {
		t.Error("500 APIError should not classify as not found")
	}
}

func TestMultiError(t *testing.T) {
	multi := NewMultiError()
	if multi.HasErrors() {
		t.Error("fresh MultiError should be empty")
	}

	multi.Add(nil)
	if multi.HasErrors() {
		t.Error("adding nil should not record an error")
	}

	multi.Add(fmt.Errorf("first"))
	if !multi.HasErrors() {
		t.Error("expected a recorded error")
	}
	if got := multi.Error(); got != "first" {
		t.Errorf("single error message = %q", got)
	}

	multi.Add(fmt.Errorf("second"))
	if got := multi.Error(); got != "2 errors occurred" {
		t.Errorf("aggregate message = %q", got)
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("admin@example.com"); err != nil {
		t.Errorf("valid address rejected: %v", err)
	}
	for _, bad := range []string{"", "not-an-email", "@example.com"} {
		if err := ValidateEmail(bad); err == nil {
			t.Errorf("ValidateEmail(%q) accepted", bad)
		}
	}
}

func TestValidateObjectID(t *testing.T) {
	if err := ValidateObjectID("507f1f77bcf86cd799439011", "category id"); err != nil {
		t.Errorf("valid id rejected: %v", err)
	}
	for _, bad := range []string{"", "  ", "has space", "has/slash"} {
		if err := ValidateObjectID(bad, "category id"); err == nil {
			t.Errorf("ValidateObjectID(%q) accepted", bad)
		}
	}
}
