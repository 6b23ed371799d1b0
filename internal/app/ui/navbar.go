package ui

import (
	"github.com/nilsiker/portfolio/internal/app/system/route"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Brand is the text of the navbar brand link.
const Brand = "NILSIKER"

const (
	BlogURL    = "https://nilsiker.github.io/blog"
	GithubURL  = "https://github.com/nilsiker"
	TwitterURL = "https://twitter.com/nilsiker"
)

// NavItem is one internal navbar link.
type NavItem struct {
	Route route.Route
	Label string
}

// MainNav lists the internal links in display order.
var MainNav = []NavItem{
	{Route: route.Projects, Label: "PROJECTS"},
	{Route: route.Contributions, Label: "CONTRIBUTIONS"},
	{Route: route.About, Label: "ABOUT"},
}

// NavbarProps configures Navbar.
type NavbarProps struct {
	Secret  SecretPackage
	Current route.Route
}

// Navbar renders the top bar. While the secret is active the links and the
// collapse toggler are hidden and the bar turns solid.
func Navbar(p NavbarProps) g.Node {
	hidden := p.Secret.Activated

	class := "bit navbar navbar-expand-lg navbar-dark "
	if hidden {
		class += "bg-dark"
	}

	return h.Nav(h.Class(class),
		h.Div(h.Class("container"),
			h.Div(h.Class("row"),
				h.Div(h.Class("col"),
					h.A(h.Class("navbar-brand"), h.Href(route.Home.Path()), g.Text(Brand)),
					SecretSwitch(p.Secret),
				),
			),
			h.Button(
				g.If(hidden, g.Attr("hidden")),
				h.Class("navbar-toggler"),
				h.Type("button"),
				g.Attr("data-bs-toggle", "collapse"),
				g.Attr("data-bs-target", "#navbar"),
				h.Aria("controls", "navbar"),
				h.Aria("expanded", "false"),
				h.Aria("label", "Toggle navigation"),
				h.Span(h.Class("navbar-toggler-icon")),
			),
			h.Div(h.Class("collapse navbar-collapse"), h.ID("navbar"),
				h.Ul(
					g.If(hidden, g.Attr("hidden")),
					h.Class("nav navbar-nav me-0 ms-auto"),
					g.Map(MainNav, func(it NavItem) g.Node {
						return navLink(it, p.Current)
					}),
					h.Li(h.Class("nav-item v-middle"),
						h.A(h.Class("nav-link"), h.Href(BlogURL), g.Text("BLOG")),
						h.A(h.Href(GithubURL), h.Aria("label", "GitHub"), IconSVG(IconGithub, IconProps{Color: "white"})),
						h.A(h.Href(TwitterURL), h.Aria("label", "Twitter"), IconSVG(IconTwitter, IconProps{Color: "white"})),
					),
				),
			),
		),
	)
}

func navLink(it NavItem, current route.Route) g.Node {
	class := "nav-link"
	if it.Route == current {
		class += " active"
	}
	return h.Li(h.Class("nav-item"),
		g.Attr("data-bs-toggle", "collapse"),
		g.Attr("data-bs-target", ".navbar-collapse.show"),
		h.A(h.Class(class), h.Href(it.Route.Path()),
			g.If(it.Route == current, h.Aria("current", "page")),
			g.Text(it.Label),
		),
	)
}
