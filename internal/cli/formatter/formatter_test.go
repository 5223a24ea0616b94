package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/davidmontoya/vesper/internal/collection"
	"github.com/davidmontoya/vesper/internal/contract"
	"github.com/davidmontoya/vesper/internal/dialogue"
	"github.com/davidmontoya/vesper/internal/domain"
	"github.com/davidmontoya/vesper/internal/planner"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences for stripping before comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestRating(t *testing.T) {
	assert.Equal(t, "★ 4.6", stripANSI(Rating(fptr(4.6))))
	assert.Equal(t, "★ --", stripANSI(Rating(nil)))
}

func TestPriceLevel(t *testing.T) {
	assert.Equal(t, "€€", stripANSI(PriceLevel(iptr(2))))
	assert.Equal(t, "€€€€", stripANSI(PriceLevel(iptr(9))), "clamped at four")
	assert.Equal(t, "--", stripANSI(PriceLevel(nil)))
	assert.Equal(t, "--", stripANSI(PriceLevel(iptr(0))))
}

func TestKindBadge(t *testing.T) {
	assert.Contains(t, stripANSI(KindBadge(domain.KindEvent)), "event")
	assert.Contains(t, stripANSI(KindBadge(domain.KindVenue)), "venue")
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "abcdefgh", stripANSI(TruncID("abcdefgh-1234")))
	assert.Equal(t, "short", stripANSI(TruncID("short")))
}

func TestRenderTable_Alignment(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"Name", "Genre"},
		[][]string{
			{"Club Nox", "House"},
			{"Bar Alto", "Afrobeats"},
		},
	))

	assert.Contains(t, out, "Name      Genre")
	assert.Contains(t, out, "Club Nox  House")
	assert.Contains(t, out, "Bar Alto  Afrobeats")
}

func TestFormatDiscover(t *testing.T) {
	resp := &contract.DiscoverResponse{
		City: "Lisbon",
		Collections: []collection.Collection{
			{Label: "Tonight", Items: []domain.Record{
				{ID: "e1", Kind: domain.KindEvent, Name: "Afro Fest", Genre: "Afrobeats", Rating: fptr(4.8)},
			}},
		},
	}

	out := stripANSI(FormatDiscover(resp))
	assert.Contains(t, out, "OUT IN LISBON")
	assert.Contains(t, out, "Tonight")
	assert.Contains(t, out, "Afro Fest")
	assert.Contains(t, out, "★ 4.8")
}

func TestFormatDiscover_Empty(t *testing.T) {
	out := stripANSI(FormatDiscover(&contract.DiscoverResponse{City: "Lisbon"}))
	assert.Contains(t, out, "Nothing on right now")
}

func TestFormatSearch_NoMatches(t *testing.T) {
	out := stripANSI(FormatSearch(&contract.SearchResponse{Query: "zzz"}))
	assert.Contains(t, out, `No matches for "zzz"`)
}

func TestFormatPlanGroups(t *testing.T) {
	date := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	groups := []planner.Group{
		{Key: planner.KeyTonight, Label: "Tonight", IsTonight: true},
		{Key: "2025-06-20", Label: "Fri, Jun 20", Date: &date, Plans: []domain.Plan{
			{ID: "p1", Title: "Friday crawl", City: "Lisbon"},
		}},
	}

	out := stripANSI(FormatPlanGroups(groups))
	assert.Contains(t, out, "TONIGHT")
	assert.Contains(t, out, "No plans yet")
	assert.Contains(t, out, "FRI, JUN 20")
	assert.Contains(t, out, "Friday crawl")
}

func TestFormatPlanDetail(t *testing.T) {
	p := &domain.Plan{ID: "p1", Title: "Date night", City: "Lisbon", IsTonight: true}
	items := []domain.PlanItem{
		{Position: 0, Name: "Dinner at Sola", Status: domain.PlanItemDone, Note: "book ahead"},
		{Position: 1, Name: "Club Nox", Status: domain.PlanItemPlanned},
	}

	out := stripANSI(FormatPlanDetail(p, items))
	assert.Contains(t, out, "DATE NIGHT")
	assert.Contains(t, out, "tonight")
	assert.Contains(t, out, "1. Dinner at Sola")
	assert.Contains(t, out, "✔ Done")
	assert.Contains(t, out, "book ahead")
	assert.Contains(t, out, "2. Club Nox")
}

func TestFormatRecommendations(t *testing.T) {
	resp := &contract.RecommendResponse{
		Context: dialogue.RecommendationContext{Companionship: "Date night", Vibe: "Dinner", Cuisine: "Japanese"},
		Primary: []domain.Record{{ID: "v1", Kind: domain.KindVenue, Name: "Sola", MusicGenre: "Jazz", Rating: fptr(4.5)}},
		After:   []domain.Record{{ID: "v2", Kind: domain.KindVenue, Name: "Club Nox"}},
	}

	out := stripANSI(FormatRecommendations(resp))
	assert.Contains(t, out, "Date night · Dinner · Japanese")
	assert.Contains(t, out, "YOUR NIGHT")
	assert.Contains(t, out, "1. Sola")
	assert.Contains(t, out, "AND AFTER")
	assert.NotContains(t, out, "Events worth a detour")
}

func TestFormatRecommendations_AllEmpty(t *testing.T) {
	out := stripANSI(FormatRecommendations(&contract.RecommendResponse{}))
	assert.Contains(t, out, "Nothing matched")
}
