package monkey

import "sort"

// Stats is a point-in-time summary of the catalog.
type Stats struct {
	Species         int
	Picks           int64
	TotalPopulation int64
	Top             []Species
}

func (c *Catalog) Stats(top int) Stats {
	all := c.All()
	return Stats{
		Species:         len(all),
		Picks:           c.RandomPickCount(),
		TotalPopulation: TotalPopulation(all),
		Top:             TopByPopulation(all, top),
	}
}

func TotalPopulation(list []Species) int64 {
	var total int64
	for _, sp := range list {
		total += sp.Population
	}
	return total
}

// TopByPopulation returns the n most populous species, largest first. Ties keep
// their order from list.
func TopByPopulation(list []Species, n int) []Species {
	sorted := make([]Species, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Population > sorted[j].Population
	})

	if n < 0 {
		n = 0
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
