package recordset

import "sync"

// Handle is a weak reference to a Recordset whose lifetime is owned
// elsewhere. Acquire reports false once the owner has released the handle;
// callers degrade to no-ops instead of touching a dead recordset.
type Handle struct {
	mu sync.Mutex
	rs Recordset
}

// NewHandle wraps a recordset in a releasable handle.
func NewHandle(rs Recordset) *Handle {
	return &Handle{rs: rs}
}

// Acquire returns the recordset while the handle is still live.
func (h *Handle) Acquire() (Recordset, bool) {
	if h == nil {
		return nil, false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rs == nil {
		return nil, false
	}
	return h.rs, true
}

// Release invalidates the handle. The owner calls this when the recordset
// is torn down; subsequent Acquire calls report false.
func (h *Handle) Release() {
	if h == nil {
		return
	}
	h.mu.Lock()
	h.rs = nil
	h.mu.Unlock()
}
