package pages

import (
	"github.com/nilsiker/portfolio/internal/app/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// CellClass is the responsive column every grid card sits in.
const CellClass = "col-xl-4 col-md-6 col-sm-12 my-2"

// jumbotron is the banner at the top of a listing page.
func jumbotron(title string, lead ...string) g.Node {
	return h.Div(h.Class("mt-4 p-5 bg-dark bg-opacity-75 rounded"),
		h.H1(h.Class("display-4 bit"), g.Text(title)),
		g.Map(lead, func(l string) g.Node {
			return h.P(h.Class("lead"), g.Text(l))
		}),
		h.Hr(h.Class("m-0 p-0")),
	)
}

// Grid lays cards out in a responsive row, keeping their order.
func Grid(cards []ui.Card) g.Node {
	return h.Div(h.Class("row"),
		g.Map(cards, func(c ui.Card) g.Node {
			return h.Div(h.Class(CellClass), c)
		}),
	)
}
