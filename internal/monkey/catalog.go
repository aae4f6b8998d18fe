package monkey

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Catalog owns the species collection and serves queries against it. It starts
// empty; Initialize populates it from the configured Source.
type Catalog struct {
	src Source

	mu  sync.RWMutex
	reg *Registry

	rngMu sync.Mutex
	rng   *mrand.Rand

	picks atomic.Int64
}

func NewCatalog(src Source, rng *mrand.Rand) *Catalog {
	if src == nil {
		src = BuiltinSource{}
	}
	if rng == nil {
		var b [8]byte
		if _, err := rand.Read(b[:]); err != nil {
			rng = mrand.New(mrand.NewSource(time.Now().UnixNano()))
		} else {
			rng = mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
		}
	}
	return &Catalog{src: src, rng: rng}
}

// Initialize loads the species from the source. On failure the catalog is left
// empty and the error is returned to the caller.
func (c *Catalog) Initialize(ctx context.Context) error {
	list, err := c.src.Load(ctx)
	if err != nil {
		c.swap(nil)
		return fmt.Errorf("failed to load species: %w", err)
	}

	reg, err := NewRegistry(list)
	if err != nil {
		c.swap(nil)
		return fmt.Errorf("invalid species list: %w", err)
	}

	c.swap(reg)
	return nil
}

func (c *Catalog) swap(reg *Registry) {
	c.mu.Lock()
	c.reg = reg
	c.mu.Unlock()
}

func (c *Catalog) registry() *Registry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.reg
}

// All returns every species in insertion order.
func (c *Catalog) All() []Species {
	return c.registry().All()
}

// FindByName does a case-insensitive exact match on the species name.
func (c *Catalog) FindByName(name string) (Species, error) {
	if strings.TrimSpace(name) == "" {
		return Species{}, ErrInvalidName
	}
	sp, ok := c.registry().GetByName(name)
	if !ok {
		return Species{}, fmt.Errorf("%q: %w", strings.TrimSpace(name), ErrNotFound)
	}
	return sp, nil
}

// PickRandom selects a species uniformly at random. Every call counts as a pick,
// even when the catalog is empty.
func (c *Catalog) PickRandom() (Species, error) {
	c.picks.Add(1)

	reg := c.registry()
	n := reg.Count()
	if n == 0 {
		return Species{}, ErrEmptyCatalog
	}

	c.rngMu.Lock()
	idx := c.rng.Intn(n)
	c.rngMu.Unlock()

	sp, _ := reg.At(idx)
	return sp, nil
}

func (c *Catalog) Count() int { return c.registry().Count() }

func (c *Catalog) RandomPickCount() int64 { return c.picks.Load() }

// Suggestions returns up to n species names in insertion order.
func (c *Catalog) Suggestions(n int) []string {
	all := c.All()
	if n > len(all) {
		n = len(all)
	}
	if n < 0 {
		n = 0
	}
	out := make([]string, n)
	for i := range out {
		out[i] = all[i].Name
	}
	return out
}
