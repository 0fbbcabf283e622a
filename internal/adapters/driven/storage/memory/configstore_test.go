package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("calendar.default", "ops"))
	require.NoError(t, store.Set("calendar.default", "finance"))

	val, ok := store.Get("calendar.default")
	assert.True(t, ok)
	assert.Equal(t, "finance", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("s", "text"))
	require.NoError(t, store.Set("f", 1.5))
	require.NoError(t, store.Set("i", 3))
	require.NoError(t, store.Set("i64", int64(7)))

	assert.Equal(t, "text", store.GetString("s"))
	assert.Equal(t, "", store.GetString("f"))
	assert.Equal(t, 1.5, store.GetFloat("f"))
	assert.Equal(t, 3.0, store.GetFloat("i"))
	assert.Equal(t, 7.0, store.GetFloat("i64"))
	assert.Equal(t, 0.0, store.GetFloat("s"))
	assert.Equal(t, 0.0, store.GetFloat("missing"))
}

func TestConfigStore_SaveLoadNoOp(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("k", "v"))

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, "v", store.GetString("k"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := fmt.Sprintf("key.%d", id)
			_ = store.Set(key, float64(id))
			_ = store.GetFloat(key)
			_ = store.GetString(key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 19.0, store.GetFloat("key.19"))
}
