package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaffle_Revenue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		price string
		sold  int64
		want  string
	}{
		{name: "no sales", price: "10", sold: 0, want: "0"},
		{name: "whole price", price: "10", sold: 3, want: "30"},
		{name: "fractional price keeps precision", price: "0.1", sold: 3, want: "0.3"},
		{name: "large count", price: "2500.50", sold: 1000, want: "2500500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raffle := &Raffle{Price: decimal.RequireFromString(tt.price)}
			got := raffle.Revenue(tt.sold)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got.String())
		})
	}
}

func TestValidateRaffleTerms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		amount  int
		price   decimal.Decimal
		wantErr bool
	}{
		{name: "valid", amount: 100, price: decimal.NewFromInt(5)},
		{name: "zero amount", amount: 0, price: decimal.NewFromInt(5), wantErr: true},
		{name: "negative amount", amount: -1, price: decimal.NewFromInt(5), wantErr: true},
		{name: "zero price", amount: 100, price: decimal.Zero, wantErr: true},
		{name: "negative price", amount: 100, price: decimal.NewFromInt(-5), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateRaffleTerms(tt.amount, tt.price)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseRaffleState(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"waiting", "started", "complete", "STARTED"} {
		state, err := ParseRaffleState(s)
		require.NoError(t, err, s)
		assert.True(t, state.IsValid())
	}

	_, err := ParseRaffleState("cancelled")
	assert.Error(t, err)
}
