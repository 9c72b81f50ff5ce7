// Package launch computes the dashboard views. Both views are pure functions
// of (site, range, table): every call recomputes from the full loaded table
// and no derived state is kept between requests.
package launch

import (
	"fmt"
	"sort"

	"launchdash/internal/domain"
)

// Service answers view queries against the immutable launch table.
type Service struct {
	table domain.Table
}

// NewService wraps the loaded table.
func NewService(table domain.Table) *Service {
	return &Service{table: table}
}

// Sites returns the distinct launch sites, sorted. The UI prepends the
// "All Sites" option itself.
func (s *Service) Sites() []string {
	return s.table.Sites()
}

// PayloadBounds returns the observed payload span, which bounds the range
// selector. An empty table yields the degenerate [0, 0] range.
func (s *Service) PayloadBounds() domain.PayloadRange {
	lo, hi, ok := s.table.PayloadBounds()
	if !ok {
		return domain.PayloadRange{}
	}
	return domain.PayloadRange{Lo: lo, Hi: hi}
}

// Slice is one wedge of the distribution chart.
type Slice struct {
	Label    string  `json:"label"`
	Count    int     `json:"count"`
	Fraction float64 `json:"fraction"`
}

// Distribution is the proportion breakdown rendered by the pie chart.
// Total is the number of matching records; slice counts sum to Total.
type Distribution struct {
	Title  string  `json:"title"`
	Total  int     `json:"total"`
	Slices []Slice `json:"slices"`
}

// DistributionFor computes the distribution view for the given site
// selection. For SiteAll it counts successful launches per site; for a
// specific site it counts success vs failure at that site. Zero matching
// records is a valid, empty result.
func (s *Service) DistributionFor(site string) Distribution {
	if site == domain.SiteAll {
		successes := s.table.Filter(func(r domain.LaunchRecord) bool {
			return r.Outcome == domain.OutcomeSuccess
		})
		return newDistribution(
			"Total Successful Launches by Site",
			successes.CountBy(func(r domain.LaunchRecord) string { return r.Site }),
		)
	}

	atSite := s.table.Filter(func(r domain.LaunchRecord) bool { return r.Site == site })
	return newDistribution(
		fmt.Sprintf("Launch Outcomes for %s", site),
		atSite.CountBy(func(r domain.LaunchRecord) string { return domain.OutcomeLabel(r.Outcome) }),
	)
}

func newDistribution(title string, counts map[string]int) Distribution {
	dist := Distribution{Title: title}
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		dist.Total += counts[label]
		dist.Slices = append(dist.Slices, Slice{Label: label, Count: counts[label]})
	}
	for i := range dist.Slices {
		dist.Slices[i].Fraction = float64(dist.Slices[i].Count) / float64(dist.Total)
	}
	return dist
}

// Point is one mark of the correlation chart: a launch projected to
// (payload, outcome), colored by booster category.
type Point struct {
	PayloadMass float64 `json:"payload_mass"`
	Outcome     int     `json:"outcome"`
	Booster     string  `json:"booster"`
	Site        string  `json:"site"`
}

// Correlation is the payload/outcome scatter projection.
type Correlation struct {
	Title    string              `json:"title"`
	Range    domain.PayloadRange `json:"range"`
	Points   []Point             `json:"points"`
	Boosters []string            `json:"boosters"`
}

// CorrelationFor filters records to lo <= payload <= hi (and to the site when
// one is selected) and projects them to scatter points. The range is applied
// as given; an empty result set is a valid, empty chart.
func (s *Service) CorrelationFor(site string, r domain.PayloadRange) Correlation {
	matched := s.table.Filter(func(rec domain.LaunchRecord) bool {
		if !r.Contains(rec.PayloadMass) {
			return false
		}
		return site == domain.SiteAll || rec.Site == site
	})

	scope := "(All Sites)"
	if site != domain.SiteAll {
		scope = fmt.Sprintf("(%s)", site)
	}

	corr := Correlation{
		Title: "Correlation between Payload and Success " + scope,
		Range: r,
	}
	seen := make(map[string]struct{})
	for _, rec := range matched.Records() {
		corr.Points = append(corr.Points, Point{
			PayloadMass: rec.PayloadMass,
			Outcome:     rec.Outcome,
			Booster:     rec.BoosterCategory,
			Site:        rec.Site,
		})
		if _, ok := seen[rec.BoosterCategory]; !ok {
			seen[rec.BoosterCategory] = struct{}{}
			corr.Boosters = append(corr.Boosters, rec.BoosterCategory)
		}
	}
	sort.Strings(corr.Boosters)
	return corr
}
