package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsInputError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "invalid date", err: ErrInvalidDateTime, want: true},
		{name: "wrapped invalid date", err: fmt.Errorf("query orders: %w", ErrInvalidDateTime), want: true},
		{name: "account required", err: ErrAccountRequired, want: true},
		{name: "station failure", err: ErrStationResolve, want: false},
		{name: "joined", err: errors.Join(errors.New("x"), ErrAccountRequired), want: true},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInputError(tt.err); got != tt.want {
				t.Errorf("IsInputError() = %v, want %v", got, tt.want)
			}
		})
	}
}
