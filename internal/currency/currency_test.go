package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	cur, err := ParseCurrency("eur")
	require.NoError(t, err)
	assert.Equal(t, EUR, cur)

	cur, err = ParseCurrency("")
	require.NoError(t, err)
	assert.Equal(t, RSD, cur)

	_, err = ParseCurrency("USD")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestConvert(t *testing.T) {
	assert.Equal(t, 23400.0, Convert(23400, RSD, 117))
	assert.Equal(t, 200.0, Convert(23400, EUR, 117))
	assert.Equal(t, 23400.0, Convert(23400, EUR, 0))
}

func TestConvert_RoundTripIsLossless(t *testing.T) {
	amounts := []float64{0, 1, 23792, 24160.5, 1234567.89, -5000}
	rates := []float64{117, 117.17, 1, 0.5}

	for _, rate := range rates {
		for _, amount := range amounts {
			assert.InDelta(t, amount, Convert(amount, EUR, rate)*rate, 1e-6)
		}
	}
}

func TestConvert_DoesNotTouchInput(t *testing.T) {
	total := 23792.0
	_ = Convert(total, EUR, 117)

	assert.Equal(t, 23792.0, total)
}

func TestRateOrDefault(t *testing.T) {
	assert.Equal(t, 118.5, RateOrDefault(118.5))
	assert.Equal(t, DefaultEURRate, RateOrDefault(0))
	assert.Equal(t, DefaultEURRate, RateOrDefault(-3))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "23.792,00 RSD", Format(23792, RSD, 117))
	assert.Equal(t, "200,00 EUR", Format(23400, EUR, 117))
	assert.Equal(t, "0,00 RSD", Format(0, "", 117))
	assert.Equal(t, "1.234.567,89 RSD", Format(1234567.89, RSD, 117))
	assert.Equal(t, "-500,00 RSD", Format(-500, RSD, 117))
}

func TestFormat_InvalidRateUsesDefault(t *testing.T) {
	assert.Equal(t, "200,00 EUR", Format(23400, EUR, 0))
	assert.Equal(t, "200,00 EUR", Format(23400, EUR, -5))
	assert.Equal(t, "23.400,00 RSD", Format(23400, RSD, 0))
}
