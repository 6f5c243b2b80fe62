package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dashboard-api/pkg/money"
)

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{100, "$1.00"},
		{8888, "$88.88"},
		{123456, "$1,234.56"},
		{100000000, "$1,000,000.00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, money.FormatCents(c.cents), "cents=%d", c.cents)
	}
}

func TestToDollars(t *testing.T) {
	d := money.ToDollars(6655)
	assert.True(t, d.Equal(decimal.RequireFromString("66.55")), "got %s", d)
}

func TestFromDollars_RoundTrip(t *testing.T) {
	in := decimal.RequireFromString("88.88")
	cents := money.FromDollars(in)
	require.EqualValues(t, 8888, cents)
	assert.True(t, money.ToDollars(cents).Equal(in))
}
