// Package attrs reads declarative card attributes.
//
// A Set is the resolved key to value mapping handed to a component at
// construction. Components never read a Set directly: they Obtain a
// TypedArray, read typed values through it and Recycle it when done.
// TypedArrays are pooled; using one after Recycle panics.
package attrs

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/go-drift/cardview/pkg/view"
)

// Set maps attribute keys to raw values. Values may be Go values
// (bool, int, float64, string, graphics.Color, image.Image) or strings in
// document form ("16dp", "#FFD700", "@drawable/star").
type Set map[string]any

// Keys returns the keys in sorted order.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var (
	pool = sync.Pool{New: func() any { return new(TypedArray) }}

	outstanding atomic.Int64
)

// Outstanding returns how many TypedArrays are obtained and not yet
// recycled.
func Outstanding() int {
	return int(outstanding.Load())
}

// Obtain returns a TypedArray reading s with dimensions converted by
// metrics. The caller must Recycle it. A nil Set yields an empty array.
func (s Set) Obtain(metrics view.DisplayMetrics) *TypedArray {
	ta := pool.Get().(*TypedArray)
	ta.values = s
	ta.metrics = metrics
	ta.live = true
	outstanding.Add(1)
	return ta
}

// TypedArray is a scoped, typed view of a Set.
type TypedArray struct {
	values  Set
	metrics view.DisplayMetrics
	live    bool
}

// Recycle releases the array back to the pool. Recycling twice panics.
func (ta *TypedArray) Recycle() {
	ta.check()
	ta.live = false
	ta.values = nil
	outstanding.Add(-1)
	pool.Put(ta)
}

func (ta *TypedArray) check() {
	if !ta.live {
		panic("attrs: TypedArray used after Recycle")
	}
}

// Has reports whether key is present.
func (ta *TypedArray) Has(key string) bool {
	ta.check()
	_, ok := ta.values[key]
	return ok
}

// Len returns the number of attributes.
func (ta *TypedArray) Len() int {
	ta.check()
	return len(ta.values)
}

// Metrics returns the display metrics dimensions are converted with.
func (ta *TypedArray) Metrics() view.DisplayMetrics {
	return ta.metrics
}

func (ta *TypedArray) raw(key string) (any, bool) {
	ta.check()
	v, ok := ta.values[key]
	return v, ok
}
