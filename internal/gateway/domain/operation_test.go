package domain

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/vehiclebff/internal/fallback"
)

func TestOperation_ExpandPath(t *testing.T) {
	t.Run("escapes parameter values", func(t *testing.T) {
		path, err := VehicleModels.ExpandPath(map[string]string{
			"year": "2021",
			"make": "Land Rover/Range",
		})

		require.NoError(t, err)
		assert.Equal(t, "/Vehicles/models/2021/Land%20Rover%2FRange", path)
	})

	t.Run("path without parameters", func(t *testing.T) {
		path, err := VehicleYears.ExpandPath(nil)

		require.NoError(t, err)
		assert.Equal(t, "/Vehicles/years", path)
	})

	t.Run("missing parameter", func(t *testing.T) {
		_, err := AppointmentCancel.ExpandPath(map[string]string{"customerVehicleId": "42"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "phoneNumber")
	})

	t.Run("unterminated parameter", func(t *testing.T) {
		op := Operation{Name: "broken", Path: "/a/{id"}

		_, err := op.ExpandPath(map[string]string{"id": "1"})

		assert.Error(t, err)
	})
}

func TestCatalogue(t *testing.T) {
	store, err := fallback.NewStore()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, op := range Catalogue() {
		assert.False(t, names[op.Name], "duplicate operation name %s", op.Name)
		names[op.Name] = true

		assert.True(t, strings.HasPrefix(op.Path, "/"), op.Name)
		assert.Contains(t, []string{http.MethodGet, http.MethodPost}, op.Method, op.Name)
		assert.GreaterOrEqual(t, op.SuccessStatus, 200, op.Name)
		assert.Less(t, op.SuccessStatus, 300, op.Name)

		if op.FallbackKey != "" {
			_, ok := store.Lookup(op.FallbackKey)
			assert.True(t, ok, "missing fixture %s for %s", op.FallbackKey, op.Name)
		}
	}
}

func TestAttributionVisitorStatuses(t *testing.T) {
	assert.Equal(t, AttributionVisitorLookup.Path, AttributionVisitorCreate.Path)
	assert.Equal(t, http.StatusOK, AttributionVisitorLookup.SuccessStatus)
	assert.Equal(t, http.StatusCreated, AttributionVisitorCreate.SuccessStatus)
	assert.Equal(t, http.StatusAccepted, SchedulingOTPRequest.SuccessStatus)
	assert.Empty(t, SmsSend.FallbackKey)
	assert.Empty(t, VehicleTrims.FallbackKey)
}
