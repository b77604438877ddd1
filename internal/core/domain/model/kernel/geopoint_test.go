package kernel_test

import (
	"testing"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("creates_valid_point", func(t *testing.T) {
		// When
		point, err := kernel.NewGeoPoint(-26.2041, 28.0473)

		// Then
		require.NoError(t, err)
		require.NoError(t, point.Validate())
		assert.InDelta(t, -26.2041, point.Latitude(), 1e-9)
		assert.InDelta(t, 28.0473, point.Longitude(), 1e-9)
	})

	t.Run("accepts_boundary_values", func(t *testing.T) {
		for _, coords := range [][2]float64{
			{kernel.LatitudeMin, kernel.LongitudeMin},
			{kernel.LatitudeMax, kernel.LongitudeMax},
			{0, 0},
		} {
			_, err := kernel.NewGeoPoint(coords[0], coords[1])
			require.NoError(t, err)
		}
	})

	t.Run("rejects_out_of_range_latitude", func(t *testing.T) {
		// When
		_, err := kernel.NewGeoPoint(91, 0)

		// Then
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_out_of_range_longitude", func(t *testing.T) {
		// When
		_, err := kernel.NewGeoPoint(0, -181)

		// Then
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		// Given
		var point kernel.GeoPoint

		// When
		err := point.Validate()

		// Then
		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal_coordinates", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(-26.2041, 28.0473)
		b, _ := kernel.NewGeoPoint(-26.2041, 28.0473)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different_coordinates", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(-26.2041, 28.0473)
		b, _ := kernel.NewGeoPoint(-33.9249, 18.4241)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("unconstructed_point_errors", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(1, 1)
		var b kernel.GeoPoint

		_, err := a.IsEqual(b)
		require.Error(t, err)
	})
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("distance_to_self_is_zero", func(t *testing.T) {
		point, _ := kernel.NewGeoPoint(-26.2041, 28.0473)

		distance, err := point.DistanceKm(point)
		require.NoError(t, err)
		assert.InDelta(t, 0, distance, 1e-9)
	})

	t.Run("johannesburg_to_cape_town", func(t *testing.T) {
		jhb, _ := kernel.NewGeoPoint(-26.2041, 28.0473)
		cpt, _ := kernel.NewGeoPoint(-33.9249, 18.4241)

		distance, err := jhb.DistanceKm(cpt)
		require.NoError(t, err)
		// Great-circle distance is roughly 1260 km.
		assert.InDelta(t, 1260, distance, 15)
	})

	t.Run("distance_is_symmetric", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(-26.2041, 28.0473)
		b, _ := kernel.NewGeoPoint(-29.8587, 31.0218)

		d1, err := a.DistanceKm(b)
		require.NoError(t, err)
		d2, err := b.DistanceKm(a)
		require.NoError(t, err)
		assert.InDelta(t, d1, d2, 1e-9)
	})
}
