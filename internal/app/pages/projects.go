package pages

import (
	"github.com/nilsiker/portfolio/internal/app/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Projects renders the projects listing.
func Projects(cards []ui.Card) g.Node {
	return g.Group([]g.Node{
		jumbotron("Projects",
			"Welcome to my project portfolio!",
			"Below you'll find stuff that I have worked on, or am currently working on!",
		),
		Grid(cards),
	})
}

// LoadProjects returns the project cards in display order. Every call
// builds a fresh slice.
func LoadProjects() []ui.Card {
	return []ui.Card{
		ui.Flip{
			Header: "Contour",
			Image:  ui.CardImage("/static/contour.png", "black", false),
			Front:  h.Div(g.Text("A pixel-art horror noir detective game, powered by Rust and Bevy.")),
			Back: g.Group([]g.Node{
				h.P(g.Text("A pixel-art horror noir detective game, powered by Rust and Bevy.")),
				h.P(h.Class("fst-italic"), g.Text("A private investigator takes on a seemingly routine missing person case, only to find himself in a sinister mystery beyond comprehension.")),
				h.P(g.Text("In active development.")),
				h.Hr(),
				h.A(h.Class("btn btn-danger"), h.Href("https://nilsiker.itch.io/contour"), g.Text("Play on itch.io")),
				iconLink("https://github.com/nilsiker/contour", ui.IconGithub),
			}),
		},
		ui.Flip{
			Header: "bevy_ymir",
			Image:  ui.CardImage("/static/ymir-early-world.png", "transparent", true),
			Front:  h.Div(g.Text("A procedural world generator plugin for Bevy, a Rust game engine.")),
			Back: h.Div(
				h.P(g.Text("A plugin for generating and streaming procedural worlds in Bevy.")),
				h.P(g.Text("The ambition is to provide a customizable world generator, with support for different biomes and various methods for procedural object placement.")),
				h.P(g.Text("Keep in mind that Ymir is in very early development. Expect hard-to-use APIs that break constantly!")),
				h.Hr(),
				iconLink("https://github.com/nilsiker/bevy_ymir", ui.IconGithub),
			),
		},
		ui.Flip{
			Header: "nilsiker blog",
			Image:  ui.CardIcon(ui.IconSVG(ui.IconBook, ui.IconProps{Color: "white", Size: "100%"}), "#55ff8c77"),
			Front:  h.Div(g.Text("My blog and news site powered by Zine. This is were I keep my personal rants and ramblings.")),
			Back: h.Div(
				h.P(g.Text("Alongside this portfolio page, I keep a Zine site where I post about my code endeavours and occassional slice-of-life posts.")),
				h.P(g.Text("The blog also serves as a devlog for my various projects.")),
				h.P(g.Text("If you're looking for a more relaxed everyday-Andreas, chances are you'll find him more easily over the blog!")),
				h.Hr(),
				iconLink(ui.BlogURL, ui.IconLink),
				iconLink("https://github.com/nilsiker/blog", ui.IconGithub),
			),
		},
		ui.Flip{
			Header: "nilsiker.github.io",
			Image:  ui.CardImage("/static/unsplash.jpg", "transparent", true),
			Front:  h.Div(g.Text("The very page you're looking at now, delivered to you with Go and gomponents.")),
			Back: h.Div(
				h.P(g.Text("With the risk that this becomes a bit meta, I am also actively working on this portfolio website!")),
				h.P(g.Text("Every page is rendered on the server, one request at a time.")),
				h.P(h.Class("fst-italic"), g.Text("If you want to hunt for a secret, remember that some underlines are just for show.")),
				h.Hr(),
				iconLink("https://github.com/nilsiker/nilsiker.github.io", ui.IconGithub),
			),
		},
	}
}

func iconLink(href string, icon ui.Icon) g.Node {
	return h.A(h.Class("btn btn-light mx-2 text-dark"), h.Href(href), h.Aria("label", string(icon)),
		ui.IconSVG(icon, ui.IconProps{}),
	)
}
