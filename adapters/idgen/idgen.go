// Package idgen provides ID generation implementations.
package idgen

import (
	"strings"
	"sync/atomic"

	"github.com/artpar/artistdesk/ports"
	"github.com/google/uuid"
)

// Prefixed generates entity IDs of the form "<prefix><uuid-hex>",
// e.g. usr_9f41c0..., art_02be77....
type Prefixed struct {
	prefix string
}

// NewPrefixed creates a generator with the given entity prefix.
func NewPrefixed(prefix string) Prefixed {
	return Prefixed{prefix: prefix}
}

// New generates a new prefixed ID.
func (p Prefixed) New() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return p.prefix + raw
}

// Ensure interface compliance.
var _ ports.IDGenerator = Prefixed{}

// Sequential generates sequential IDs (for testing).
type Sequential struct {
	prefix  string
	counter uint64
}

// NewSequential creates a sequential ID generator.
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

// New generates the next sequential ID.
func (s *Sequential) New() string {
	n := atomic.AddUint64(&s.counter, 1)
	return s.prefix + uitoa(n)
}

// Reset resets the counter (for testing).
func (s *Sequential) Reset() {
	atomic.StoreUint64(&s.counter, 0)
}

func uitoa(n uint64) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// Ensure interface compliance.
var _ ports.IDGenerator = (*Sequential)(nil)
