package console

import "github.com/faideww/monkey-menu/internal/monkey"

// Renderer draws every screen of the menu. Query logic never writes to the
// terminal directly.
type Renderer interface {
	Clear()
	Banner(art string)
	Welcome()
	Menu(opts []Option)
	Prompt(text string)
	Heading(title string)
	Line(text string)
	Notice(text string)
	Success(text string)
	Error(text string)
	SpeciesTable(list []monkey.Species)
	SpeciesDetail(sp monkey.Species)
	NotFound(name string, suggestions []string)
	Statistics(st monkey.Stats, picked []monkey.PickCount)
	Farewell()
}
