package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Style is a Bootstrap button style. The zero value is StylePrimary.
type Style int

const (
	StylePrimary Style = iota
	StyleSecondary
	StyleSuccess
	StyleDanger
	StyleWarning
	StyleInfo
	StyleLight
	StyleDark
	StyleLink
)

// Class returns the btn-* class for the style.
func (s Style) Class() string {
	switch s {
	case StyleSecondary:
		return "btn-secondary"
	case StyleSuccess:
		return "btn-success"
	case StyleDanger:
		return "btn-danger"
	case StyleWarning:
		return "btn-warning"
	case StyleInfo:
		return "btn-info"
	case StyleLight:
		return "btn-light"
	case StyleDark:
		return "btn-dark"
	case StyleLink:
		return "btn-link"
	default:
		return "btn-primary"
	}
}

// ButtonProps configures Button.
type ButtonProps struct {
	Style Style
	// Block stretches the button to the full width of its parent.
	Block bool
	// Action, when set, makes the button submit a POST form to that URL.
	Action string
}

// Button renders a large Bootstrap button around children.
func Button(p ButtonProps, children ...g.Node) g.Node {
	btn := h.Button(
		g.If(p.Action != "", h.Type("submit")),
		g.If(p.Action == "", h.Type("button")),
		h.Class("btn "+p.Style.Class()+" btn-lg"),
		g.Group(children),
	)
	if p.Action != "" {
		btn = h.Form(h.Class("d-inline"), h.Method("post"), h.Action(p.Action), btn)
	}
	if p.Block {
		return h.Div(h.Class("d-grid"), btn)
	}
	return btn
}
