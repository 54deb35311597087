package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"sentimentservice/internal/domain"
	"sentimentservice/internal/testutil"
)

// TestMapErrorToCode tests translation of domain errors into machine codes
func TestMapErrorToCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.ErrorCode
	}{
		{
			name: "missing input",
			err:  domain.ErrMissingInput,
			want: domain.CodeMissingInput,
		},
		{
			name: "user not found",
			err:  domain.ErrUserNotFound,
			want: domain.CodeUserNotFound,
		},
		{
			name: "invalid credentials",
			err:  domain.ErrInvalidCredentials,
			want: domain.CodeInvalidCredentials,
		},
		{
			name: "username taken",
			err:  domain.ErrUsernameTaken,
			want: domain.CodeUsernameTaken,
		},
		{
			name: "not found",
			err:  domain.ErrNotFound,
			want: domain.CodeNotFound,
		},
		{
			name: "wrapped domain error",
			err:  fmt.Errorf("failed to create account: %w", domain.ErrUsernameTaken),
			want: domain.CodeUsernameTaken,
		},
		{
			name: "unknown error",
			err:  errors.New("connection refused"),
			want: domain.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.MapErrorToCode(tt.err)
			testutil.AssertEqual(t, got, tt.want, "error code")
		})
	}
}
