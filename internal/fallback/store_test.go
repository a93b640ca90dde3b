package fallback

import (
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	t.Run("vehicle lists", func(t *testing.T) {
		payload, ok := store.Lookup("vehicle_makes")
		require.True(t, ok)

		var makes []string
		require.NoError(t, json.Unmarshal(payload, &makes))
		assert.Equal(t, []string{"Toyota", "Honda", "Ford", "Chevrolet", "Nissan"}, makes)

		payload, ok = store.Lookup("vehicle_years")
		require.True(t, ok)

		var years []int
		require.NoError(t, json.Unmarshal(payload, &years))
		assert.Contains(t, years, 2021)
	})

	t.Run("every fixture is compact valid JSON", func(t *testing.T) {
		keys := store.Keys()
		assert.Contains(t, keys, "branches")
		assert.Contains(t, keys, "valuation_with_damage")
		assert.Contains(t, keys, "customer_journey_updated")

		for _, key := range keys {
			payload, ok := store.Lookup(key)
			require.True(t, ok, key)
			assert.True(t, json.Valid(payload), key)
			assert.NotContains(t, string(payload), "\n", key)
		}
	})

	t.Run("unknown and empty keys miss", func(t *testing.T) {
		_, ok := store.Lookup("sms_send")
		assert.False(t, ok)

		_, ok = store.Lookup("")
		assert.False(t, ok)
	})
}

func TestLoad_RejectsInvalidFixture(t *testing.T) {
	fsys := fstest.MapFS{
		"data/good.json":  {Data: []byte(`{"ok": true}`)},
		"data/bad.json":   {Data: []byte(`{"ok": `)},
		"data/readme.txt": {Data: []byte(`ignored`)},
	}

	_, err := load(fsys, "data")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
}

func TestNewStoreFromMap(t *testing.T) {
	source := map[string]json.RawMessage{"vehicle_years": json.RawMessage(`[2020]`)}
	store := NewStoreFromMap(source)
	source["vehicle_years"] = json.RawMessage(`[1999]`)

	payload, ok := store.Lookup("vehicle_years")
	require.True(t, ok)
	assert.JSONEq(t, `[2020]`, string(payload))
	assert.Equal(t, []string{"vehicle_years"}, store.Keys())
}

func TestStore_LookupReturnsCopy(t *testing.T) {
	t.Run("from map", func(t *testing.T) {
		source := json.RawMessage(`[2020]`)
		store := NewStoreFromMap(map[string]json.RawMessage{"vehicle_years": source})
		source[1] = '1'

		first, ok := store.Lookup("vehicle_years")
		require.True(t, ok)
		first[1] = '9'

		second, ok := store.Lookup("vehicle_years")
		require.True(t, ok)
		assert.Equal(t, `[2020]`, string(second))
	})

	t.Run("embedded fixtures", func(t *testing.T) {
		store, err := NewStore()
		require.NoError(t, err)

		first, ok := store.Lookup("vehicle_years")
		require.True(t, ok)
		original := string(first)
		for i := range first {
			first[i] = ' '
		}

		second, ok := store.Lookup("vehicle_years")
		require.True(t, ok)
		assert.Equal(t, original, string(second))
	})
}
