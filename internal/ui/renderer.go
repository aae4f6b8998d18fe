package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/faideww/monkey-menu/internal/console"
	"github.com/faideww/monkey-menu/internal/monkey"
	"golang.org/x/term"
)

const clearScreen = "\033[H\033[2J"

// Renderer implements console.Renderer on top of an io.Writer.
type Renderer struct {
	w           io.Writer
	styles      Styles
	interactive bool
}

var _ console.Renderer = (*Renderer)(nil)

func New(w io.Writer) *Renderer {
	interactive := false
	if f, ok := w.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	return &Renderer{
		w:           w,
		styles:      NewStyles(lipgloss.NewRenderer(w)),
		interactive: interactive,
	}
}

func (r *Renderer) println(s string) {
	_, _ = fmt.Fprintln(r.w, s)
}

// multi renders each line separately so styles never span a newline.
func multi(st lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = st.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) Clear() {
	if r.interactive {
		_, _ = io.WriteString(r.w, clearScreen)
	}
}

func (r *Renderer) Banner(art string) {
	r.println(multi(r.styles.Banner, art))
}

func (r *Renderer) Welcome() {
	r.println(r.styles.Title.Render("Welcome to the Monkey Console Application!"))
	r.println(r.styles.Title.Render("Discover amazing monkey species from around the world! 🌍"))
	r.println("")
}

func (r *Renderer) Menu(opts []console.Option) {
	r.println(multi(r.styles.Menu, "\n🐒 MAIN MENU 🐒\n================"))
	for _, o := range opts {
		r.println(fmt.Sprintf("%s. %s %s", o.Key, o.Icon, o.Label))
	}
}

func (r *Renderer) Prompt(text string) {
	_, _ = io.WriteString(r.w, text)
}

func (r *Renderer) Heading(title string) {
	r.println(r.styles.Title.Render(title))
	r.println(r.styles.Title.Render(strings.Repeat("=", lipgloss.Width(title))))
}

func (r *Renderer) Line(text string) { r.println(text) }

func (r *Renderer) Notice(text string) { r.println(multi(r.styles.Notice, text)) }

func (r *Renderer) Success(text string) { r.println(multi(r.styles.Success, text)) }

func (r *Renderer) Error(text string) { r.println(multi(r.styles.Error, text)) }

func (r *Renderer) SpeciesTable(list []monkey.Species) {
	r.println(r.styles.Label.Render(fmt.Sprintf("%-3s %-25s %-25s %-12s", "#", "Name", "Location", "Population")))
	r.println(r.styles.Label.Render(strings.Repeat("-", 70)))

	for i, sp := range list {
		r.println(fmt.Sprintf("%-3d %-25s %-25s %-12s", i+1, sp.Name, sp.Location, humanize.Comma(sp.Population)))
	}
}

func (r *Renderer) SpeciesDetail(sp monkey.Species) {
	r.println(fmt.Sprintf("\n%s %s", sp.Image, sp.Name))
	r.println(strings.Repeat("=", len(sp.Name)+2))
	r.println(r.styles.Label.Render("📍 Location: ") + sp.Location)
	r.println(r.styles.Label.Render("👥 Population: ") + humanize.Comma(sp.Population))
	r.println(r.styles.Label.Render("📝 Details: ") + sp.Details)
}

func (r *Renderer) NotFound(name string, suggestions []string) {
	r.println(r.styles.Notice.Render(fmt.Sprintf("❌ No monkey found with the name '%s'.", name)))
	if len(suggestions) == 0 {
		return
	}
	r.println(multi(r.styles.Notice, "\n💡 Tip: Try searching for one of these available monkeys:"))
	for _, s := range suggestions {
		r.println(r.styles.Notice.Render("   • " + s))
	}
}

func (r *Renderer) Statistics(st monkey.Stats, picked []monkey.PickCount) {
	r.println(fmt.Sprintf("\n🐒 Total monkey species: %d", st.Species))
	r.println(fmt.Sprintf("🎲 Random selections made: %d", st.Picks))
	r.println(fmt.Sprintf("👥 Total population across all species: %s", humanize.Comma(st.TotalPopulation)))

	if len(st.Top) > 0 {
		r.println(multi(r.styles.Label, fmt.Sprintf("\n🏆 Top %d Most Populous Species:", len(st.Top))))
	}
	for i, sp := range st.Top {
		r.println(fmt.Sprintf("   %d. %s: %s", i+1, sp.Name, humanize.Comma(sp.Population)))
	}

	if len(picked) == 0 {
		return
	}
	r.println(multi(r.styles.Label, "\n⭐ Most Picked This Session:"))
	for i, pc := range picked {
		r.println(fmt.Sprintf("   %d. %s (%s)", i+1, pc.Species, pluralPicks(pc.Count)))
	}
}

func (r *Renderer) Farewell() {
	r.println(multi(r.styles.Notice, "\n👋 Thanks for using Monkey Console App! Goodbye!"))
}

func pluralPicks(n int) string {
	if n == 1 {
		return "1 pick"
	}
	return fmt.Sprintf("%d picks", n)
}
