package risk

import "sync/atomic"

// Holder hands out the current immutable index. The pointer is swapped
// atomically on reload, so in-flight requests keep the handle they started
// with and reads never take a lock.
type Holder struct {
	ptr atomic.Pointer[Index]
}

// NewHolder creates a holder around an initial index
func NewHolder(idx *Index) *Holder {
	h := &Holder{}
	h.ptr.Store(idx)
	return h
}

// Current returns the index handle for this request
func (h *Holder) Current() *Index {
	return h.ptr.Load()
}

// Swap replaces the index after a builder rerun
func (h *Holder) Swap(idx *Index) {
	h.ptr.Store(idx)
}
