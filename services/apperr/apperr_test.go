package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", New(Unauthenticated, "x"), http.StatusUnauthorized},
		{"forbidden", New(Forbidden, "x"), http.StatusForbidden},
		{"not friends", New(NotFriends, "x"), http.StatusForbidden},
		{"not found", New(NotFound, "x"), http.StatusNotFound},
		{"invalid input", New(InvalidInput, "x"), http.StatusBadRequest},
		{"offer exhausted", New(OfferExhausted, "x"), http.StatusBadRequest},
		{"conflict", New(Conflict, "x"), http.StatusConflict},
		{"insufficient funds", New(InsufficientFunds, "x"), http.StatusPaymentRequired},
		{"wrapped", fmt.Errorf("purchase: %w", New(Conflict, "x")), http.StatusConflict},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("outer: %w", Newf(NothingToClaim, "mission %s", "m1"))
	assert.True(t, Is(err, NothingToClaim))
	assert.False(t, Is(err, Conflict))
	assert.False(t, Is(nil, Internal))
	assert.Equal(t, "outer: mission m1", err.Error())
	assert.Equal(t, "nothing_to_claim", KindOf(err).String())
}
