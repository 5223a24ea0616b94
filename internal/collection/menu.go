package collection

import "github.com/davidmontoya/vesper/internal/match"

// Home-screen row caps.
const (
	tonightCap  = 15
	weekendCap  = 15
	trendingCap = 10
	genreRowCap = 15
	noDateCap   = 15
)

// genreRows defines the fixed per-genre rows on the home screen, in
// display order.
var genreRows = []struct {
	label string
	terms []string
}{
	{"Afrobeats Nights", []string{"afrobeats", "afro"}},
	{"Latin Nights", []string{"latin", "salsa", "reggaeton"}},
	{"House Sessions", []string{"house", "techno"}},
	{"Hip-Hop", []string{"hip-hop", "hip hop", "rap"}},
	{"Jazz & Live", []string{"jazz", "live music"}},
}

// DefaultMenu returns the home-screen collection menu: temporal rows first,
// then the unrestricted trending row, then genre rows, then the no-date
// fallback so undated records stay discoverable.
func DefaultMenu() []Spec {
	all := match.NewTerms()

	specs := []Spec{
		{Label: "Tonight", Match: TonightRule(all), SortBy: PopularityDesc, Cap: tonightCap},
		{Label: "This Weekend", Match: WeekendRule(all), SortBy: PopularityDesc, Cap: weekendCap},
		{Label: "Trending", Match: GenreRule(all), SortBy: PopularityDesc, Cap: trendingCap},
	}
	for _, row := range genreRows {
		specs = append(specs, Spec{
			Label:  row.label,
			Match:  GenreRule(match.NewTerms(row.terms...)),
			SortBy: PopularityDesc,
			Cap:    genreRowCap,
		})
	}
	specs = append(specs, Spec{
		Label: "Upcoming",
		Match: NoDateRule(all),
		Cap:   noDateCap,
	})
	return specs
}
