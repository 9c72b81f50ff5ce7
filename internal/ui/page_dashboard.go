package ui

import (
	"fmt"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"

	"launchdash/internal/domain"
	"launchdash/internal/service/launch"
)

// dashboardState is the control-panel state driving both charts.
type dashboardState struct {
	Site   string
	Range  domain.PayloadRange
	Bounds domain.PayloadRange
	Sites  []string
}

func dashboardPage(state dashboardState, dist launch.Distribution, corr launch.Correlation) Node {
	return appPage(
		"SpaceX Launch Records Dashboard",
		controlsCard(state),
		distributionCard(dist),
		correlationCard(corr, state.Range),
	)
}

func controlsCard(state dashboardState) Node {
	options := []Node{siteOption(domain.SiteAll, "All Sites", state.Site)}
	for _, site := range state.Sites {
		options = append(options, siteOption(site, site, state.Site))
	}

	return Div(
		Class("card"),
		data.Signals(map[string]any{
			"lo": state.Range.Lo,
			"hi": state.Range.Hi,
		}),
		Form(
			Method("get"),
			Action("/"),
			Class("controls"),
			Div(
				Class("field"),
				Label(For("site"), Text("Select Launch Site:")),
				Select(ID("site"), Name("site"), Group(options)),
			),
			Div(
				Class("field"),
				Label(For("min"), Text("Payload Min (kg):")),
				Input(ID("min"), Type("number"), Name("min"), Step("100"),
					Min(fmt.Sprintf("%.0f", state.Bounds.Lo)),
					Max(fmt.Sprintf("%.0f", state.Bounds.Hi)),
					data.Bind("lo"),
				),
			),
			Div(
				Class("field"),
				Label(For("max"), Text("Payload Max (kg):")),
				Input(ID("max"), Type("number"), Name("max"), Step("100"),
					Min(fmt.Sprintf("%.0f", state.Bounds.Lo)),
					Max(fmt.Sprintf("%.0f", state.Bounds.Hi)),
					data.Bind("hi"),
				),
			),
			Button(Type("submit"), Class("btn btn-primary"), Text("Apply")),
		),
		P(Class("range-help"), Text(fmt.Sprintf("Current range: %s to %s",
			formatKg(state.Range.Lo), formatKg(state.Range.Hi)))),
		P(
			Class("range-help"),
			data.Show("$lo > $hi"),
			Text("Min exceeds max; charts will be empty until the range is fixed."),
		),
	)
}

func siteOption(value, label, selected string) Node {
	if value == selected {
		return Option(Value(value), Selected(), Text(label))
	}
	return Option(Value(value), Text(label))
}

func distributionCard(dist launch.Distribution) Node {
	if dist.Total == 0 {
		return chartCard(dist.Title, emptyChart("No matching launch records for this selection."))
	}

	legend := make([]Node, 0, len(dist.Slices))
	for i, slice := range dist.Slices {
		legend = append(legend, Li(
			Span(Class("swatch"), StyleAttr("background:"+chartColor(i))),
			Span(Text(slice.Label)),
			Span(Class("muted"), Text(fmt.Sprintf("%d (%.1f%%)", slice.Count, slice.Fraction*100))),
		))
	}

	return chartCard(dist.Title,
		Div(
			Class("chart-wrap"),
			pieChart(dist),
			Ul(Class("legend"), Group(legend)),
		),
	)
}

func correlationCard(corr launch.Correlation, selected domain.PayloadRange) Node {
	if len(corr.Points) == 0 {
		return chartCard(corr.Title, emptyChart("No launches in the selected payload range."))
	}

	legend := make([]Node, 0, len(corr.Boosters))
	for i, booster := range corr.Boosters {
		label := booster
		if label == "" {
			label = "Unknown"
		}
		legend = append(legend, Li(
			Span(Class("swatch"), StyleAttr("background:"+chartColor(i))),
			Span(Text(label)),
		))
	}

	return chartCard(corr.Title,
		Div(
			Class("chart-wrap"),
			scatterChart(corr, selected),
			Ul(Class("legend"), Group(legend)),
		),
		P(Class("range-help"), Text(fmt.Sprintf("%d launches between %s and %s",
			len(corr.Points), formatKg(selected.Lo), formatKg(selected.Hi)))),
	)
}
