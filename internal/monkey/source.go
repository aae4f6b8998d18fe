package monkey

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source provides the species a Catalog is initialized from.
type Source interface {
	Load(ctx context.Context) ([]Species, error)
}

// BuiltinSource serves the hard-coded catalog shipped with the binary.
type BuiltinSource struct{}

func (BuiltinSource) Load(ctx context.Context) ([]Species, error) {
	out := make([]Species, len(builtinSpecies))
	copy(out, builtinSpecies)
	return out, nil
}

// FileSource reads a JSON or YAML array of species. The format is picked by extension.
type FileSource struct {
	Path string
}

func (f FileSource) Load(ctx context.Context) ([]Species, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}

	var arr []SpeciesJSON
	switch ext := strings.ToLower(filepath.Ext(f.Path)); ext {
	case ".json":
		err = json.Unmarshal(raw, &arr)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &arr)
	default:
		return nil, fmt.Errorf("unsupported species file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", f.Path, err)
	}
	if len(arr) == 0 {
		return nil, fmt.Errorf("species list is empty")
	}

	out := make([]Species, len(arr))
	for i, sj := range arr {
		out[i] = Species{
			Name:       sj.Name,
			Location:   sj.Location,
			Details:    sj.Details,
			Population: sj.Population,
			Image:      sj.Image,
		}
	}
	return out, nil
}

// RemoteSource stands in for an external species feed. No feed exists yet, so
// Load always fails and the catalog stays empty.
type RemoteSource struct {
	URL string
}

func (r RemoteSource) Load(ctx context.Context) ([]Species, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("fetch %q: %w", r.URL, ErrRemoteUnavailable)
}

var builtinSpecies = []Species{
	{
		Name:       "Proboscis Monkey",
		Location:   "Borneo",
		Details:    "Known for their distinctive large noses, especially in males. They are excellent swimmers and primarily eat leaves.",
		Population: 7000,
		Image:      "🐒",
	},
	{
		Name:       "Golden Snub-nosed Monkey",
		Location:   "China",
		Details:    "These monkeys have beautiful golden fur and can survive in freezing temperatures at high altitudes.",
		Population: 8000,
		Image:      "🙊",
	},
	{
		Name:       "Mandrill",
		Location:   "Central Africa",
		Details:    "The largest monkey species with colorful faces and rumps. They live in large social groups.",
		Population: 800000,
		Image:      "🦍",
	},
	{
		Name:       "Japanese Macaque",
		Location:   "Japan",
		Details:    "Also known as snow monkeys, famous for bathing in hot springs during winter.",
		Population: 114000,
		Image:      "🐵",
	},
	{
		Name:       "Howler Monkey",
		Location:   "Central and South America",
		Details:    "Known for their loud howls that can be heard up to 5 kilometers away. They are the loudest land animals.",
		Population: 150000,
		Image:      "🙉",
	},
	{
		Name:       "Spider Monkey",
		Location:   "Central and South America",
		Details:    "Have long limbs and prehensile tails that act like a fifth hand. They are excellent climbers.",
		Population: 250000,
		Image:      "🐒",
	},
	{
		Name:       "Capuchin Monkey",
		Location:   "Central and South America",
		Details:    "Highly intelligent monkeys known for using tools. They are often featured in movies and TV shows.",
		Population: 300000,
		Image:      "🐵",
	},
	{
		Name:       "Squirrel Monkey",
		Location:   "South America",
		Details:    "Small, colorful monkeys with distinctive yellow and black coloring. They live in large troops.",
		Population: 500000,
		Image:      "🙊",
	},
}

// StaticSource serves a fixed in-memory list.
type StaticSource []Species

func (s StaticSource) Load(ctx context.Context) ([]Species, error) {
	out := make([]Species, len(s))
	copy(out, s)
	return out, nil
}
