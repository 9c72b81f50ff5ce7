package ui

import (
	"fmt"
	"math"

	. "maragu.dev/gomponents"

	"launchdash/internal/domain"
	"launchdash/internal/service/launch"
)

// chartPalette is shared by the pie wedges and the scatter booster colors.
var chartPalette = []string{
	"#2563eb", "#f97316", "#16a34a", "#dc2626",
	"#9333ea", "#0891b2", "#ca8a04", "#db2777",
}

func chartColor(i int) string {
	return chartPalette[i%len(chartPalette)]
}

// svgEl builds an SVG element. gomponents/html covers HTML only, so the SVG
// vocabulary goes through El directly.
func svgEl(name string, children ...Node) Node {
	return El(name, children...)
}

// pieChart renders the distribution as an SVG pie. Wedge order follows the
// slice order (sorted labels), starting at twelve o'clock, clockwise.
func pieChart(dist launch.Distribution) Node {
	const (
		size = 240.0
		cx   = size / 2
		cy   = size / 2
		r    = size/2 - 10
	)

	root := []Node{
		Attr("viewBox", fmt.Sprintf("0 0 %.0f %.0f", size, size)),
		Attr("width", "240"),
		Attr("height", "240"),
		Attr("role", "img"),
		Attr("aria-label", dist.Title),
	}

	cumulative := 0.0
	for i, slice := range dist.Slices {
		if slice.Fraction >= 0.9999 {
			// A single wedge is a full circle; an arc path would collapse.
			root = append(root, svgEl("circle",
				Attr("cx", fmt.Sprintf("%.1f", cx)),
				Attr("cy", fmt.Sprintf("%.1f", cy)),
				Attr("r", fmt.Sprintf("%.1f", r)),
				Attr("fill", chartColor(i)),
			))
			break
		}
		start := cumulative
		cumulative += slice.Fraction
		root = append(root, pieWedge(cx, cy, r, start, cumulative, chartColor(i)))
	}

	return svgEl("svg", root...)
}

func pieWedge(cx, cy, r, from, to float64, fill string) Node {
	a0 := 2*math.Pi*from - math.Pi/2
	a1 := 2*math.Pi*to - math.Pi/2
	x0, y0 := cx+r*math.Cos(a0), cy+r*math.Sin(a0)
	x1, y1 := cx+r*math.Cos(a1), cy+r*math.Sin(a1)

	largeArc := 0
	if to-from > 0.5 {
		largeArc = 1
	}

	d := fmt.Sprintf("M %.1f %.1f L %.1f %.1f A %.1f %.1f 0 %d 1 %.1f %.1f Z",
		cx, cy, x0, y0, r, r, largeArc, x1, y1)
	return svgEl("path", Attr("d", d), Attr("fill", fill))
}

// scatterChart renders the correlation view: payload mass on x, outcome as
// two bands on y, one dot per launch colored by booster category.
func scatterChart(corr launch.Correlation, selected domain.PayloadRange) Node {
	const (
		width    = 640.0
		height   = 240.0
		plotLeft = 70.0
		ySuccess = 70.0
		yFailure = 180.0
		baseline = 210.0
	)
	plotRight := width - 20.0

	boosterIndex := make(map[string]int, len(corr.Boosters))
	for i, booster := range corr.Boosters {
		boosterIndex[booster] = i
	}

	xFor := func(mass float64) float64 {
		span := selected.Hi - selected.Lo
		if span <= 0 {
			return (plotLeft + plotRight) / 2
		}
		return plotLeft + (mass-selected.Lo)/span*(plotRight-plotLeft)
	}

	root := []Node{
		Attr("viewBox", fmt.Sprintf("0 0 %.0f %.0f", width, height)),
		Attr("width", "640"),
		Attr("height", "240"),
		Attr("role", "img"),
		Attr("aria-label", corr.Title),
	}

	// Outcome bands and axis furniture.
	for _, band := range []struct {
		y     float64
		label string
	}{{ySuccess, "Success (1)"}, {yFailure, "Failure (0)"}} {
		root = append(root,
			svgEl("line",
				Attr("x1", fmt.Sprintf("%.1f", plotLeft)),
				Attr("y1", fmt.Sprintf("%.1f", band.y)),
				Attr("x2", fmt.Sprintf("%.1f", plotRight)),
				Attr("y2", fmt.Sprintf("%.1f", band.y)),
				Attr("stroke", "#d1d9e0"),
				Attr("stroke-dasharray", "4 4"),
			),
			svgEl("text",
				Attr("x", fmt.Sprintf("%.1f", plotLeft-8)),
				Attr("y", fmt.Sprintf("%.1f", band.y+4)),
				Attr("text-anchor", "end"),
				Attr("font-size", "11"),
				Attr("fill", "#59636e"),
				Text(band.label),
			),
		)
	}
	root = append(root,
		svgEl("line",
			Attr("x1", fmt.Sprintf("%.1f", plotLeft)),
			Attr("y1", fmt.Sprintf("%.1f", baseline)),
			Attr("x2", fmt.Sprintf("%.1f", plotRight)),
			Attr("y2", fmt.Sprintf("%.1f", baseline)),
			Attr("stroke", "#59636e"),
		),
		axisLabel(plotLeft, baseline+18, "start", formatKg(selected.Lo)),
		axisLabel(plotRight, baseline+18, "end", formatKg(selected.Hi)),
		axisLabel((plotLeft+plotRight)/2, baseline+18, "middle", "Payload Mass"),
	)

	for _, p := range corr.Points {
		y := yFailure
		if p.Outcome == domain.OutcomeSuccess {
			y = ySuccess
		}
		root = append(root, svgEl("circle",
			Attr("cx", fmt.Sprintf("%.1f", xFor(p.PayloadMass))),
			Attr("cy", fmt.Sprintf("%.1f", y)),
			Attr("r", "5"),
			Attr("fill", chartColor(boosterIndex[p.Booster])),
			Attr("fill-opacity", "0.8"),
		))
	}

	return svgEl("svg", root...)
}

func axisLabel(x, y float64, anchor, label string) Node {
	return svgEl("text",
		Attr("x", fmt.Sprintf("%.1f", x)),
		Attr("y", fmt.Sprintf("%.1f", y)),
		Attr("text-anchor", anchor),
		Attr("font-size", "11"),
		Attr("fill", "#59636e"),
		Text(label),
	)
}
