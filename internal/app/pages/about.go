package pages

import (
	"github.com/nilsiker/portfolio/internal/app/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	aboutName  = "Andreas Nilsson"
	aboutTitle = "Web and Software Developer"
)

const aboutBio = `Malmö-based millenial living with my SO and cats. Trying to grow habaneros on our roof terrace.

**Talk to me about**

- 🦀 All things code
- 🎲 Tabletop RPGs
- 🎵 Folk music and progressive metal
- 🍻 Craft beers and whiskey

I'm constantly looking for new tech and tools to help grow my coding and project management skills. Preferably by building digital tools for tabletop games!
`

// About is the single card of the about page.
func About() ui.Card {
	return ui.Custom{
		Image: "/static/pb.png",
		Content: h.Div(
			h.H1(h.Class("bit mb-0"), g.Attr("style", "line-height: 2rem"), g.Text(aboutName)),
			h.H2(h.Class("bit mt-0 mb-4 text-muted"), g.Attr("style", "line-height: 2rem"), g.Text(aboutTitle)),
			h.Hr(),
			h.Div(h.Class("bio"), ui.Markdown(aboutBio)),
		),
	}
}
