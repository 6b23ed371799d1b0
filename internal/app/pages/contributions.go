package pages

import (
	"github.com/nilsiker/portfolio/internal/app/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Contributions renders the contributions listing.
func Contributions(cards []ui.Card) g.Node {
	return g.Group([]g.Node{
		jumbotron("Contributions", "Below you'll find my open-source contributions."),
		Grid(cards),
	})
}

// LoadContributions returns the contribution cards in display order.
func LoadContributions() []ui.Card {
	const summary = "Unofficial community Foundry VTT system for The Burning Wheel RPG."

	return []ui.Card{
		ui.Flip{
			Header: "foundry-burningwheel",
			Image:  ui.CardIcon(ui.IconSVG(ui.IconAperture, ui.IconProps{Color: "darkorange", Size: "100%"}), "darkred"),
			Front:  h.Div(h.P(g.Text(summary))),
			Back: g.Group([]g.Node{
				h.P(g.Text(summary)),
				h.P(g.Text("Provides character sheet support, dice rolling, and a number of automation features for The Burning Wheel. Based on the Burning Wheel Gold Revised rules available in the burning wheel store.")),
				h.P(h.Class("fw-bold byline"), g.Text("Author: "), h.A(h.Href("https://github.com/StasTserk"), g.Text("Stas Tserkovny"))),
				h.Hr(),
				h.P(h.Class("fw-bold"),
					iconLink("https://github.com/StasTserk/foundry-burningwheel", ui.IconGithub),
				),
			}),
		},
	}
}
