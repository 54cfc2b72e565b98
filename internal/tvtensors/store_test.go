package tvtensors

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govision-ml/govision/internal/tensor"
)

func TestStoreAttachAndLookup(t *testing.T) {
	boxes := makeBoundingBoxes(t)

	m := store.lookup(boxes)
	require.NotNil(t, m)
	assert.Equal(t, XYXY, m.Format)
	assert.Equal(t, CanvasSize{Height: 16, Width: 16}, m.CanvasSize)
}

func TestStoreSkipsNilMetadata(t *testing.T) {
	// Cleanups for earlier entities may fire concurrently, so the size can
	// only shrink here, never grow.
	before := store.size()
	img := makeImage(t)
	assert.LessOrEqual(t, store.size(), before, "kinds without metadata must not grow the store")
	assert.Nil(t, store.lookup(img))
}

func TestStoreEntriesAreIndependent(t *testing.T) {
	a := makeBoundingBoxes(t)
	b := makeBoundingBoxes(t)

	store.lookup(a).ClampingMode = ClampingModeNone
	assert.Equal(t, ClampingModeSoft, b.ClampingMode(), "entries must not alias")
	assert.Equal(t, ClampingModeNone, a.ClampingMode())
}

func TestStoreReleasesCollectedEntities(t *testing.T) {
	before := store.size()

	func() {
		data := tensor.Zeros(tensor.Shape{4, 4}, tensor.Float32, testBackend)
		for i := 0; i < 32; i++ {
			_, err := NewBoundingBoxes(data, XYXY, CanvasSize{Height: 8, Width: 8})
			require.NoError(t, err)
		}
	}()

	// Entries disappear once the entities are collected. Cleanups run
	// asynchronously after GC, so poll.
	assert.Eventually(t, func() bool {
		runtime.GC()
		return store.size() <= before
	}, 5*time.Second, 10*time.Millisecond, "store must not retain entries for dead entities")
}
