package oadate

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTime(t *testing.T) {
	tests := []struct {
		d    float64
		want time.Time
	}{
		{0, time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)},
		{1, time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC)},
		{2.5, time.Date(1900, 1, 1, 12, 0, 0, 0, time.UTC)},
		{38406, time.Date(2005, 2, 23, 0, 0, 0, 0, time.UTC)},
		{0.25, time.Date(1899, 12, 30, 6, 0, 0, 0, time.UTC)},
		{-1.25, time.Date(1899, 12, 29, 6, 0, 0, 0, time.UTC)},
		{-1, time.Date(1899, 12, 29, 0, 0, 0, 0, time.UTC)},
		{2958465.5, time.Date(9999, 12, 31, 12, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := ToTime(tt.d)
		require.NoError(t, err, "ToTime(%v)", tt.d)
		assert.True(t, tt.want.Equal(got), "ToTime(%v) = %v, expected %v", tt.d, got, tt.want)
	}
}

func TestToTimeOutOfRange(t *testing.T) {
	for _, d := range []float64{MinValue, MaxValue, MaxValue + 1, MinValue - 1} {
		_, err := ToTime(d)
		assert.True(t, errors.Is(err, ErrOutOfRange), "ToTime(%v) error = %v", d, err)
	}
}

func TestFromTime(t *testing.T) {
	tests := []struct {
		t    time.Time
		want float64
	}{
		{time.Time{}, 0},
		{time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2005, 2, 23, 0, 0, 0, 0, time.UTC), 38406},
		{time.Date(1900, 1, 1, 12, 0, 0, 0, time.UTC), 2.5},
		{time.Date(1899, 12, 29, 6, 0, 0, 0, time.UTC), -1.25},
		{time.Date(1899, 12, 29, 0, 0, 0, 0, time.UTC), -1},
		{time.Date(50, 1, 1, 0, 0, 0, 0, time.UTC), MinValue + 0.001},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, FromTime(tt.t), 1e-9, "FromTime(%v)", tt.t)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, d := range []float64{1, 0.5, 45000.75, -10.5, -700.125} {
		tm, err := ToTime(d)
		require.NoError(t, err)
		assert.InDelta(t, d, FromTime(tm), 1e-9, "round trip of %v", d)
	}
}
