package domain_test

import (
	"errors"
	"testing"

	"shareit-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingFilter(t *testing.T) {
	cases := []struct {
		in   string
		want domain.BookingFilter
	}{
		{"", domain.BookingFilterAll},
		{"ALL", domain.BookingFilterAll},
		{"all", domain.BookingFilterAll},
		{"Current", domain.BookingFilterCurrent},
		{"past", domain.BookingFilterPast},
		{"FUTURE", domain.BookingFilterFuture},
		{"waiting", domain.BookingFilterWaiting},
		{"rejected", domain.BookingFilterRejected},
	}
	for _, tc := range cases {
		got, err := domain.ParseBookingFilter(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := domain.ParseBookingFilter("NONSENSE")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		err  error
		kind error
	}{
		{domain.NotFoundf("item not found: id=%d", 5), domain.ErrNotFound},
		{domain.Validationf("bad input"), domain.ErrValidation},
		{domain.ConditionsNotMetf("item busy"), domain.ErrConditionsNotMet},
		{domain.Conflictf("email taken"), domain.ErrConflict},
		{domain.NoRights(), domain.ErrNoRights},
	}
	for _, tc := range cases {
		assert.ErrorIs(t, tc.err, tc.kind)
	}

	err := domain.NotFoundf("item not found: id=%d", 5)
	assert.Equal(t, "item not found: id=5", err.Error())
	assert.False(t, errors.Is(err, domain.ErrConflict))
}
