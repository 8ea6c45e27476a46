package naming

import (
	"sync"
)

// CollisionResolver tracks which source file wrote each destination path
// during a run. Two sources can only collide through pass-through tokens,
// e.g. "火のnatsuame" next to "火の夏雨". The later copy still overwrites
// the earlier one; the resolver only reports it. All methods are
// goroutine-safe.
type CollisionResolver struct {
	mu     sync.Mutex
	owners map[string]string // destination path → source path that wrote it
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{owners: make(map[string]string)}
}

// Claim records source as the writer of dest. When a different source
// already claimed dest in this run, Claim returns that source and true.
func (cr *CollisionResolver) Claim(source, dest string) (string, bool) {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	owner, exists := cr.owners[dest]
	cr.owners[dest] = source
	if exists && owner != source {
		return owner, true
	}
	return "", false
}
