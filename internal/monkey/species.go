package monkey

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Species is one catalog entry. Records are immutable once the catalog is seeded.
type Species struct {
	Name       string
	Location   string
	Details    string
	Population int64
	Image      string // short glyph shown next to the name
}

// SpeciesJSON is the on-disk shape used by FileSource for both JSON and YAML files.
type SpeciesJSON struct {
	Name       string `json:"name" yaml:"name"`
	Location   string `json:"location" yaml:"location"`
	Details    string `json:"details" yaml:"details"`
	Population int64  `json:"population" yaml:"population"`
	Image      string `json:"image" yaml:"image"`
}

func (s Species) String() string {
	return fmt.Sprintf("%s from %s (Population: %s)", s.Name, s.Location, humanize.Comma(s.Population))
}
