package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/sizeconv/internal/domain"
)

func TestPrintPointsToScreenPixels(t *testing.T) {
	tests := []struct {
		name   string
		screen float64
		points float64
		opts   []Option
		want   float64
	}{
		{name: "default print resolution", screen: 96, points: 12, want: 5.12},
		{name: "explicit print resolution", screen: 96, points: 12, opts: []Option{WithPrintResolution(300)}, want: 5.12},
		{name: "high resolution printer", screen: 96, points: 12, opts: []Option{WithPrintResolution(600)}, want: 2.56},
		{name: "quadratic in screen resolution", screen: 144, points: 10.5, want: 10.08},
		{name: "two decimals", screen: 96, points: 24, want: 10.24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(&fixedProvider{dpi: tt.screen})
			got, err := c.PrintPointsToScreenPixels(tt.points, tt.opts...)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPrintPointsToScreenPixels_ExplicitScreen(t *testing.T) {
	p := &fixedProvider{dpi: 200}
	c := New(p)

	got, err := c.PrintPointsToScreenPixels(12, WithResolution(96))
	require.NoError(t, err)
	assert.InDelta(t, 5.12, got, 1e-9)
	assert.Zero(t, p.calls)
}

func TestPrintPointsToScreenPixels_Validation(t *testing.T) {
	c := New(&fixedProvider{dpi: 96})

	tests := []struct {
		name    string
		points  float64
		opts    []Option
		wantArg string
	}{
		{name: "zero points", points: 0, wantArg: "print font size"},
		{name: "negative points", points: -12, wantArg: "print font size"},
		{name: "nan points", points: math.NaN(), wantArg: "print font size"},
		{name: "zero print dpi", points: 12, opts: []Option{WithPrintResolution(0)}, wantArg: "print resolution"},
		{name: "negative print dpi", points: 12, opts: []Option{WithPrintResolution(-300)}, wantArg: "print resolution"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.PrintPointsToScreenPixels(tt.points, tt.opts...)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantArg, verr.Arg)
		})
	}
}

func TestPrintPointsToScreenPixelsBatch(t *testing.T) {
	c := New(&fixedProvider{dpi: 96})

	got, err := c.PrintPointsToScreenPixelsBatch([]float64{12, 24}, WithPrintResolution(300))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, 5.12, got[0], 1e-9)
	assert.InDelta(t, 10.24, got[1], 1e-9)

	_, err = c.PrintPointsToScreenPixelsBatch([]float64{12, 0})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 1.01, roundHalfUp(1.005000001, 2))
	assert.Equal(t, 2.0, roundHalfUp(1.999, 2))
	assert.Equal(t, 5.12, roundHalfUp(5.1199999999, 2))
}
