package repository

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"

	"atrium/shared/failure"
)

func TestWrapConstraint(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "exclusion violation becomes conflict",
			err:      &pq.Error{Code: "23P01", Constraint: "reservations_no_overlap"},
			wantCode: http.StatusConflict,
		},
		{
			name:     "unique violation becomes conflict",
			err:      &pq.Error{Code: "23505", Constraint: "rooms_name_key"},
			wantCode: http.StatusConflict,
		},
		{
			name:     "foreign key violation becomes bad request",
			err:      &pq.Error{Code: "23503", Constraint: "reservations_user_id_fkey"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "check violation becomes bad request",
			err:      &pq.Error{Code: "23514", Constraint: "valid_interval"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "wrapped pq error is still translated",
			err:      fmt.Errorf("failed to insert reservation: %w", &pq.Error{Code: "23P01"}),
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapConstraint(tt.err, "reservation")

			if code := failure.GetCode(got); code != tt.wantCode {
				t.Errorf("WrapConstraint() code = %d, want %d", code, tt.wantCode)
			}
		})
	}
}

func TestWrapConstraint_Passthrough(t *testing.T) {
	t.Run("other pq codes pass through", func(t *testing.T) {
		err := &pq.Error{Code: "57014"}

		if got := WrapConstraint(err, "reservation"); !errors.Is(got, err) {
			t.Errorf("WrapConstraint() = %v, want the original error", got)
		}
	})

	t.Run("non pq errors pass through", func(t *testing.T) {
		err := errors.New("connection refused")

		if got := WrapConstraint(err, "reservation"); !errors.Is(got, err) {
			t.Errorf("WrapConstraint() = %v, want the original error", got)
		}
	})
}
