// Package pages composes the ui building blocks into the site's pages and
// maps every route to its content.
package pages

import (
	"github.com/nilsiker/portfolio/internal/app/system/route"
	"github.com/nilsiker/portfolio/internal/app/system/viewstate"
	"github.com/nilsiker/portfolio/internal/app/ui"
	g "maragu.dev/gomponents"
)

// Switch returns the content for rt. It is total: anything it does not
// recognize renders the NotFound card.
func Switch(rt route.Route, st viewstate.State) g.Node {
	switch rt {
	case route.Home:
		return Counter("Counter", st.Count)
	case route.Projects:
		return Projects(LoadProjects())
	case route.Contributions:
		return Contributions(LoadContributions())
	case route.About:
		return About()
	case route.Blog:
		return ui.UnderConstruction{}
	default:
		return ui.NotFound{}
	}
}
