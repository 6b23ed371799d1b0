package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// SecretPackage is the App's secret flag handed down the tree, together
// with the URL that toggles it. Children read Activated and post to Toggle;
// they never change the flag themselves.
type SecretPackage struct {
	Activated bool
	Toggle    string
}

// SecretSwitch renders a controlled checkbox. Changing it submits one POST
// to the toggle URL; the checked state always comes from the package.
func SecretSwitch(secret SecretPackage) g.Node {
	return h.Form(h.Class("form-check form-switch me-5 d-inline-block"), h.Method("post"), h.Action(secret.Toggle),
		h.Input(
			h.Class("form-check-input"),
			h.Type("checkbox"),
			h.ID("toggle_cool"),
			h.Aria("label", "Toggle secret"),
			g.If(secret.Activated, h.Checked()),
			g.Attr("onchange", "this.form.submit()"),
		),
		g.El("noscript",
			h.Button(h.Type("submit"), h.Class("btn btn-sm btn-link"), g.Text("toggle")),
		),
	)
}
