package coordinator

import (
	"math/rand"
	"sync"
	"time"
)

const (
	minCode = 100000
	maxCode = 999999
)

type CodeGenerator interface {
	Next() int
}

// Codes hands out 6-digit reservation codes, never the same one twice per process.
type Codes struct {
	mu     sync.Mutex
	rnd    *rand.Rand
	issued map[int]struct{}
}

func NewCodes(seed int64) *Codes {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Codes{
		rnd:    rand.New(rand.NewSource(seed)), //nolint:gosec
		issued: make(map[int]struct{}),
	}
}

func (c *Codes) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.issued) > (maxCode-minCode)/2 {
		// the space is mostly spent; start over rather than spin
		c.issued = make(map[int]struct{})
	}
	for {
		code := minCode + c.rnd.Intn(maxCode-minCode+1)
		if _, ok := c.issued[code]; ok {
			continue
		}
		c.issued[code] = struct{}{}
		return code
	}
}
