package monkey

import (
	"fmt"
	"strings"
)

// Registry is an immutable, ordered set of species with a case-insensitive name index.
type Registry struct {
	byIdx  []Species
	byName map[string]int
}

func NewRegistry(list []Species) (*Registry, error) {
	byIdx := make([]Species, 0, len(list))
	byName := make(map[string]int, len(list))

	for i, sp := range list {
		name := strings.TrimSpace(sp.Name)
		if name == "" {
			return nil, fmt.Errorf("missing name at index %d", i)
		}
		if sp.Population < 0 {
			return nil, fmt.Errorf("negative population for %q", name)
		}
		key := nameKey(name)
		if _, dup := byName[key]; dup {
			return nil, fmt.Errorf("duplicate name %q", name)
		}

		sp.Name = name
		byName[key] = len(byIdx)
		byIdx = append(byIdx, sp)
	}

	return &Registry{byIdx: byIdx, byName: byName}, nil
}

func (r *Registry) GetByName(name string) (Species, bool) {
	if r == nil {
		return Species{}, false
	}
	idx, ok := r.byName[nameKey(name)]
	if !ok {
		return Species{}, false
	}
	return r.byIdx[idx], true
}

func (r *Registry) At(idx int) (Species, bool) {
	if r == nil || idx < 0 || idx >= len(r.byIdx) {
		return Species{}, false
	}
	return r.byIdx[idx], true
}

func (r *Registry) All() []Species {
	if r == nil {
		return []Species{}
	}
	out := make([]Species, len(r.byIdx))
	copy(out, r.byIdx)
	return out
}

func (r *Registry) Count() int {
	if r == nil {
		return 0
	}
	return len(r.byIdx)
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
