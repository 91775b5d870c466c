package id

import (
	"sync"

	"github.com/oklog/ulid/v2"
)

// Generator hands out post ids derived from the ULID millisecond clock.
// Ids are strictly increasing: two calls within the same millisecond
// yield consecutive values instead of colliding.
type Generator struct {
	mu   sync.Mutex
	last int64
	now  func() uint64
}

func NewGenerator() *Generator {
	return &Generator{now: ulid.Now}
}

// Next returns the next id.
func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := int64(g.now())
	if n <= g.last {
		n = g.last + 1
	}
	g.last = n
	return n
}
