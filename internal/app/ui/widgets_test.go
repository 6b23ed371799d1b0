package ui_test

import (
	"testing"

	"github.com/nilsiker/portfolio/internal/app/system/route"
	"github.com/nilsiker/portfolio/internal/app/ui"
	"github.com/nilsiker/portfolio/internal/testutil"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func TestButton(t *testing.T) {
	doc := testutil.Doc(t, ui.Button(ui.ButtonProps{}, g.Text("go")))
	btn := doc.Find("button")
	require.Equal(t, "btn btn-primary btn-lg", btn.AttrOr("class", ""))
	require.Equal(t, "button", btn.AttrOr("type", ""))
	require.Equal(t, 0, doc.Find("form").Length())
}

func TestButton_ActionAndBlock(t *testing.T) {
	doc := testutil.Doc(t, ui.Button(ui.ButtonProps{Style: ui.StyleDanger, Block: true, Action: "/counter/increment"}, g.Text("+")))

	form := doc.Find("div.d-grid > form")
	require.Equal(t, 1, form.Length())
	require.Equal(t, "/counter/increment", form.AttrOr("action", ""))
	require.Equal(t, "post", form.AttrOr("method", ""))
	require.Equal(t, "submit", form.Find("button").AttrOr("type", ""))
	require.True(t, form.Find("button").HasClass("btn-danger"))
}

func TestContainer(t *testing.T) {
	doc := testutil.Doc(t, ui.Container(ui.ContainerProps{Fluid: true, Hidden: true}, g.Text("x")))
	div := doc.Find("div")
	require.True(t, div.HasClass("container-fluid"))
	_, hidden := div.Attr("hidden")
	require.True(t, hidden)
}

func TestSecretSwitch_IsControlled(t *testing.T) {
	on := testutil.Doc(t, ui.SecretSwitch(ui.SecretPackage{Activated: true, Toggle: "/secret?return=/about"}))
	_, checked := on.Find("input#toggle_cool").Attr("checked")
	require.True(t, checked)
	require.Equal(t, "/secret?return=/about", on.Find("form").AttrOr("action", ""))

	off := testutil.Doc(t, ui.SecretSwitch(ui.SecretPackage{Toggle: "/secret"}))
	_, checked = off.Find("input#toggle_cool").Attr("checked")
	require.False(t, checked)
}

func TestNavbar_MarksCurrentRoute(t *testing.T) {
	doc := testutil.Doc(t, ui.Navbar(ui.NavbarProps{Current: route.About}))

	active := doc.Find("a.nav-link.active")
	require.Equal(t, 1, active.Length())
	require.Equal(t, "ABOUT", active.Text())
	require.Equal(t, ui.Brand, doc.Find("a.navbar-brand").Text())
	require.Equal(t, "/", doc.Find("a.navbar-brand").AttrOr("href", ""))
}

func TestNavbar_SecretHidesLinks(t *testing.T) {
	doc := testutil.Doc(t, ui.Navbar(ui.NavbarProps{Secret: ui.SecretPackage{Activated: true}}))

	require.True(t, doc.Find("nav").HasClass("bg-dark"))
	_, hidden := doc.Find("ul.navbar-nav").Attr("hidden")
	require.True(t, hidden)
	_, hidden = doc.Find("button.navbar-toggler").Attr("hidden")
	require.True(t, hidden)

	plain := testutil.Doc(t, ui.Navbar(ui.NavbarProps{}))
	require.False(t, plain.Find("nav").HasClass("bg-dark"))
	_, hidden = plain.Find("ul.navbar-nav").Attr("hidden")
	require.False(t, hidden)
}

func TestIconSVG_Defaults(t *testing.T) {
	doc := testutil.Doc(t, ui.IconSVG(ui.IconGithub, ui.IconProps{}))
	svg := doc.Find("svg")
	require.Equal(t, "currentColor", svg.AttrOr("stroke", ""))
	require.Equal(t, "24", svg.AttrOr("width", ""))
	require.Equal(t, 1, svg.Find("path").Length())
}

func TestMarkdown_Sanitizes(t *testing.T) {
	out := testutil.Render(t, ui.Markdown("**bold** <script>alert(1)</script>"))
	require.Contains(t, out, "<strong>bold</strong>")
	require.NotContains(t, out, "<script>")
}

func TestDocument(t *testing.T) {
	doc := testutil.Doc(t, ui.Document("nilsiker", g.Text("body")))
	require.Equal(t, "nilsiker", doc.Find("title").Text())
	require.Contains(t, doc.Find("body").Text(), "body")
}
