// ABOUTME: Tests for Destination model.
// ABOUTME: Validates verified versus pending state.

package models

import "testing"

func TestDestinationIsVerified(t *testing.T) {
	d := &Destination{Email: "me@inbox.test"}
	if d.IsVerified() {
		t.Error("expected pending destination")
	}

	d.Verified = "2024-01-02T03:04:05Z"
	if !d.IsVerified() {
		t.Error("expected verified destination")
	}
}
