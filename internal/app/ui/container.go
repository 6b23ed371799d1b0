package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ContainerProps configures Container.
type ContainerProps struct {
	Fluid  bool
	Hidden bool
}

// Container wraps children in a Bootstrap container.
func Container(p ContainerProps, children ...g.Node) g.Node {
	class := "container mt-2"
	if p.Fluid {
		class = "container-fluid mt-2"
	}
	return h.Div(h.Class(class), g.If(p.Hidden, g.Attr("hidden")), g.Group(children))
}
