// Package ui holds the stateless presentational building blocks of the
// site: cards, buttons, the navbar and the page shell. Every function here
// is a pure mapping from its arguments to markup.
package ui

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Card is one unit of displayable content. The set of variants is closed:
// Custom, Flip, UnderConstruction and NotFound. Each variant renders itself,
// so a new variant cannot compile without its markup.
type Card interface {
	g.Node
	card()
}

// Custom is a free-form card. Header and Image are optional; an empty value
// omits the node entirely.
type Custom struct {
	Header  string
	Image   string
	Content g.Node
}

// Flip is a two-faced card. Both faces are always in the markup; which one
// shows is decided by the stylesheet.
type Flip struct {
	Header string
	Image  g.Node
	Front  g.Node
	Back   g.Node
}

// UnderConstruction is the fixed placeholder for pages with no content yet.
type UnderConstruction struct{}

// NotFound is the fixed card for unknown pages.
type NotFound struct{}

func (Custom) card()            {}
func (Flip) card()              {}
func (UnderConstruction) card() {}
func (NotFound) card()          {}

func (c Custom) Render(w io.Writer) error {
	return h.Div(h.Class("card p-2 bg-dark mx-auto"), g.Attr("style", "max-width: 30rem;"),
		g.If(c.Image != "",
			h.Img(h.Src(c.Image), h.Class("card-img-top bg-light"), h.Alt("card-img-top")),
		),
		g.If(c.Header != "",
			h.H1(h.Class("card-header bit"), g.Text(c.Header)),
		),
		h.Div(h.Class("card-body"), c.Content),
	).Render(w)
}

func (c Flip) Render(w io.Writer) error {
	return h.Div(h.Class("card p-2 bg-dark mx-auto flip"), g.Attr("style", "max-width: 30rem;"),
		h.Div(h.Class("content"),
			h.Div(h.Class("back"),
				h.Div(h.Class("card-body"),
					h.H3(h.Class("bit card-title"), g.Text(c.Header)),
					h.Hr(),
					c.Back,
				),
			),
			h.Div(h.Class("front"),
				c.Image,
				h.H1(h.Class("card-header bit"), g.Text(c.Header)),
				h.Div(h.Class("card-body"), c.Front),
			),
		),
	).Render(w)
}

func (UnderConstruction) Render(w io.Writer) error {
	return placeholder(placeholderProps{
		cardClass: "card bg-dark mx-auto",
		maxWidth:  "30rem",
		bodyClass: "mt-3 card-body",
		image:     "/static/ferris-builder.png",
		title:     "UNDER CONSTRUCTION",
		subtitle:  "Stick around, there might be some delicious content here one day.",
	}).Render(w)
}

func (NotFound) Render(w io.Writer) error {
	return placeholder(placeholderProps{
		cardClass: "card border-warning bg-dark mx-auto",
		maxWidth:  "25rem",
		bodyClass: "mt-5 card-body",
		image:     "/static/404.png",
		title:     "PAGE NOT FOUND",
		subtitle:  "No dice, that page just ain't to be found!",
	}).Render(w)
}

type placeholderProps struct {
	cardClass string
	maxWidth  string
	bodyClass string
	image     string
	title     string
	subtitle  string
}

func placeholder(p placeholderProps) g.Node {
	return h.Div(h.Class(p.cardClass), g.Attr("style", fmt.Sprintf("text-align:center; max-width: %s;", p.maxWidth)),
		h.Div(h.Class(p.bodyClass),
			h.Img(h.Class("outline"), h.Src(p.image), h.Width("200px")),
			h.H1(h.Class("bit text-warning"), g.Attr("style", "text-align: center"), g.Text(p.title)),
			h.H2(h.Class("bit"), g.Text(p.subtitle)),
		),
	)
}

// CardImage is a picture block for the face of a Flip card. Fit stretches
// the picture to cover its frame instead of keeping its own width.
func CardImage(src, bg string, fit bool) g.Node {
	frame := "background-color: " + bg + "; "
	img := "background-color:black; height:250px; "
	if fit {
		frame += "object-fit: cover"
	} else {
		img += "width:auto"
	}
	return h.Div(h.Class("text-center rounded-top"), g.Attr("style", frame),
		h.Img(h.Src(src), h.Class("card-img-top mx-auto"), h.Alt("card-img-top"), g.Attr("style", img)),
	)
}

// CardIcon is an icon block for the face of a Flip card.
func CardIcon(icon g.Node, bg string) g.Node {
	return h.Div(h.Class("card-img-top"), g.Attr("alt", "card-img-top"),
		g.Attr("style", "height: 250px; background-color:"+bg),
		icon,
	)
}
