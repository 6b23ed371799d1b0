package pages

import (
	"fmt"

	"github.com/nilsiker/portfolio/internal/app/system/navigation"
	"github.com/nilsiker/portfolio/internal/app/system/route"
	"github.com/nilsiker/portfolio/internal/app/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	IncrementAction = "/counter/increment"
	DecrementAction = "/counter/decrement"
)

// Counter renders the home demo: a title, a minus button, the value padded
// to two digits, and a plus button.
func Counter(title string, value int64) g.Node {
	back := route.Home.Path()
	return h.Div(h.Class("counter"),
		h.H1(g.Text(title)),
		h.H2(
			ui.Button(ui.ButtonProps{Style: ui.StyleSecondary, Action: navigation.WithReturn(DecrementAction, back)}, g.Text("-")),
			h.Span(h.Class("mx-2"), g.Text(fmt.Sprintf("%02d", value))),
			ui.Button(ui.ButtonProps{Style: ui.StylePrimary, Action: navigation.WithReturn(IncrementAction, back)}, g.Text("+")),
		),
	)
}
