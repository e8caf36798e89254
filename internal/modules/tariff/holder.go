package tariff

import "sync"

// Holder is the process-wide rate table: read on every charge
// computation, replaced only by the administrative settings action.
type Holder struct {
	mu  sync.RWMutex
	cfg Config
}

func NewHolder(cfg Config) *Holder {
	return &Holder{cfg: cfg}
}

func (h *Holder) Current() Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cfg
}

// Update validates and swaps in a new rate table. Running sessions are
// not touched; they simply price against the new table at their next
// computation.
func (h *Holder) Update(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	h.mu.Lock()
	h.cfg = cfg
	h.mu.Unlock()
	return nil
}
