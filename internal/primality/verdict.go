package primality

import "sync"

// Verdict is the shared result of one check invocation. It starts true and
// can only move to false. All access goes through its mutex.
type Verdict struct {
	mu    sync.Mutex
	prime bool
}

// NewVerdict returns a verdict initialised to true.
func NewVerdict() *Verdict {
	return &Verdict{prime: true}
}

// Reject marks the candidate as not prime. It never sets the verdict back
// to true.
func (v *Verdict) Reject() {
	v.mu.Lock()
	v.prime = false
	v.mu.Unlock()
}

// Value returns the current verdict.
func (v *Verdict) Value() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.prime
}
