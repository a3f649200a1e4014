package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceSamePointIsZero(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{9.0054, 38.7636},
		{-33.8688, 151.2093},
		{90, 0},
	}

	for _, p := range points {
		d, err := Distance(p[0], p[1], p[0], p[1])
		require.NoError(t, err)
		assert.Zero(t, d)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	cases := [][4]float64{
		{9.0054, 38.7636, 8.9806, 38.8000},
		{40.730610, -73.935242, 35.7031509, 139.7745439},
		{-1.2921, 36.8219, 9.0054, 38.7636},
	}

	for _, c := range cases {
		ab, err := Distance(c[0], c[1], c[2], c[3])
		require.NoError(t, err)
		ba, err := Distance(c[2], c[3], c[0], c[1])
		require.NoError(t, err)
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestDistanceAddisToBole(t *testing.T) {
	// Addis Ababa center to Bole, roughly 7-9 km.
	d, err := Distance(9.0054, 38.7636, 8.9806, 38.8000)
	require.NoError(t, err)
	assert.Greater(t, d, 4000.0)
	assert.Less(t, d, 9000.0)
}

func TestDistanceInvalidInput(t *testing.T) {
	_, err := Distance(math.NaN(), 0, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	_, err = Distance(0, 0, math.Inf(1), 0)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestCheckWithinRadius(t *testing.T) {
	siteLat, siteLon := 9.0054, 38.7636

	t.Run("same coordinate is inside", func(t *testing.T) {
		v := CheckWithinRadius(siteLat, siteLon, siteLat, siteLon, 100)
		assert.True(t, v.WithinRadius)
		assert.Less(t, v.DistanceMeters, 100.0)
	})

	t.Run("three kilometers away is outside", func(t *testing.T) {
		v := CheckWithinRadius(9.0324, 38.7636, siteLat, siteLon, 100)
		assert.False(t, v.WithinRadius)
		assert.Greater(t, v.DistanceMeters, 100.0)
	})

	t.Run("boundary counts as outside", func(t *testing.T) {
		d, err := Distance(9.0060, 38.7636, siteLat, siteLon)
		require.NoError(t, err)

		v := CheckWithinRadius(9.0060, 38.7636, siteLat, siteLon, d)
		assert.False(t, v.WithinRadius)
	})

	t.Run("garbage input is outside, not an error", func(t *testing.T) {
		v := CheckWithinRadius(math.NaN(), 0, siteLat, siteLon, 100)
		assert.False(t, v.WithinRadius)
	})

	t.Run("zero coordinate is just far away", func(t *testing.T) {
		v := CheckWithinRadius(0, 0, siteLat, siteLon, 100)
		assert.False(t, v.WithinRadius)
		assert.Greater(t, v.DistanceMeters, 1000000.0)
	})
}
