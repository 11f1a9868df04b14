package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"invalid order", ErrInvalidOrder},
		{"invalid service type", ErrInvalidServiceType},
		{"invalid status", ErrInvalidStatus},
		{"invalid comment", ErrInvalidComment},
		{"forbidden", ErrForbidden},
		{"invalid attachment", ErrInvalidAttachment},
		{"storage unavailable", ErrStorageUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
			wrapped := fmt.Errorf("load order: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match: %v", wrapped)
			}
		})
	}
}
