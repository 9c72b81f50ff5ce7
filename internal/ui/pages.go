package ui

import (
	"fmt"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// appPage is the single-page shell: header, controls, and the two chart
// cards. There is no navigation — the dashboard is the whole surface.
func appPage(title string, body ...Node) Node {
	return HTML(
		Lang("en"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text(title)),
			Link(Rel("icon"), Href("data:,")),
			Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
			Link(Rel("preconnect"), Href("https://fonts.gstatic.com"), Attr("crossorigin", "")),
			Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap")),
			Link(Rel("stylesheet"), Href("/static/app.css")),
			Script(
				Type("module"),
				Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"),
			),
		),
		Body(
			Main(Class("app-main"),
				Div(
					Class("topbar"),
					H1(Class("page-title"), Text(title)),
					P(Class("page-subtitle"), Text("Success distribution and payload correlation across launch sites")),
				),
				Group(body),
			),
		),
	)
}

func chartCard(heading string, children ...Node) Node {
	nodes := append([]Node{Class("card"), H2(Text(heading))}, children...)
	return Div(nodes...)
}

func emptyChart(message string) Node {
	return Div(Class("blankslate"), P(Text(message)))
}

func formatKg(v float64) string {
	return fmt.Sprintf("%.0f kg", v)
}
