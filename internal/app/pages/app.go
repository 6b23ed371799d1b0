package pages

import (
	"github.com/nilsiker/portfolio/internal/app/system/navigation"
	"github.com/nilsiker/portfolio/internal/app/system/route"
	"github.com/nilsiker/portfolio/internal/app/system/viewstate"
	"github.com/nilsiker/portfolio/internal/app/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// SecretAction is where the secret switch posts.
const SecretAction = "/secret"

// AppProps is everything the root needs for one render.
type AppProps struct {
	Title string
	State viewstate.State
	Route route.Route
	// Path is the request path, used to come back after a toggle.
	Path string
}

// App renders the whole page: navbar, terrain, and the routed content.
// While the secret is active the content container is left out.
func App(p AppProps) g.Node {
	secret := ui.SecretPackage{
		Activated: p.State.Secret,
		Toggle:    navigation.WithReturn(SecretAction, p.Path),
	}

	terrain := "secret"
	if p.State.Secret {
		terrain = "show secret"
	}

	return ui.Document(p.Title,
		ui.Navbar(ui.NavbarProps{Secret: secret, Current: p.Route}),
		h.Div(h.ID("terrain"), h.Class(terrain)),
		g.If(!p.State.Secret,
			ui.Container(ui.ContainerProps{},
				h.Div(h.Class("row"),
					h.Div(h.Class("col mt-2"), h.ID("content"),
						Switch(p.Route, p.State),
					),
				),
			),
		),
	)
}
