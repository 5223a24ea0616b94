package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/davidmontoya/vesper/internal/api"
	"github.com/davidmontoya/vesper/internal/collection"
	"github.com/davidmontoya/vesper/internal/dialogue"
	"github.com/davidmontoya/vesper/internal/domain"
	"github.com/davidmontoya/vesper/internal/repository"
	"github.com/davidmontoya/vesper/internal/service"
	"github.com/davidmontoya/vesper/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// stubClient is a fixed-response api.Client for CLI integration tests.
type stubClient struct {
	records []domain.Record
	recs    *api.Recommendations
	err     error
}

func (s *stubClient) FetchContent(ctx context.Context, city string) ([]domain.Record, error) {
	return s.records, s.err
}

func (s *stubClient) Recommend(ctx context.Context, city string, rctx dialogue.RecommendationContext) (*api.Recommendations, error) {
	return s.recs, s.err
}

// testApp wires a full App backed by an in-memory DB and a stub API client.
func testApp(t *testing.T, client api.Client) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	return &App{
		Discovery: service.NewDiscoveryService(client, collection.DefaultMenu()),
		Recommend: service.NewRecommendService(client),
		Plans: service.NewPlanService(
			repository.NewSQLitePlanRepo(database),
			repository.NewSQLitePlanItemRepo(database),
			testutil.NewTestUoW(database),
		),
		DefaultCity: "lisbon",
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t, &stubClient{})

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "vesper")
}

func TestDiscoverCmd(t *testing.T) {
	client := &stubClient{records: []domain.Record{
		testutil.NewVenue("Club Nox", "House", testutil.WithScore(88)),
	}}
	app := testApp(t, client)

	output, err := executeCmd(t, app, "discover")
	require.NoError(t, err)
	assert.Contains(t, output, "Club Nox")
	assert.Contains(t, output, "Trending")
}

func TestDiscoverCmd_NoCity(t *testing.T) {
	app := testApp(t, &stubClient{})
	app.DefaultCity = ""

	_, err := executeCmd(t, app, "discover")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "city")
}

func TestSearchCmd(t *testing.T) {
	client := &stubClient{records: []domain.Record{
		testutil.NewVenue("Club Nox", "House"),
		testutil.NewVenue("Bar Alto", "Afrobeats"),
	}}
	app := testApp(t, client)

	output, err := executeCmd(t, app, "search", "nox")
	require.NoError(t, err)
	assert.Contains(t, output, "Club Nox")
	assert.NotContains(t, output, "Bar Alto")
}

func TestAskCmd_AnswersFromFlags(t *testing.T) {
	client := &stubClient{recs: &api.Recommendations{
		Primary: []domain.Record{testutil.NewVenue("Sola", "Jazz")},
	}}
	app := testApp(t, client)

	output, err := executeCmd(t, app, "ask",
		"--answer", "Date night",
		"--answer", "Later tonight",
		"--answer", "One spot",
		"--answer", "Dinner",
		"--answer", "Japanese",
		"--answer", "Call it a night",
	)
	require.NoError(t, err)
	assert.Contains(t, output, "Sola")
}

func TestAskCmd_InvalidAnswer(t *testing.T) {
	app := testApp(t, &stubClient{})

	_, err := executeCmd(t, app, "ask", "--answer", "Banana")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Banana")
	assert.Contains(t, err.Error(), "heading out with")
}

func TestAskCmd_IncompleteAnswers(t *testing.T) {
	app := testApp(t, &stubClient{})

	_, err := executeCmd(t, app, "ask", "--answer", "Solo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dialogue incomplete")
}

func TestAskCmd_NonInteractiveWithoutAnswers(t *testing.T) {
	app := testApp(t, &stubClient{})

	_, err := executeCmd(t, app, "ask")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestPlanAddAndList(t *testing.T) {
	app := testApp(t, &stubClient{})

	output, err := executeCmd(t, app, "plan", "add", "--title", "Friday crawl", "--tonight")
	require.NoError(t, err)
	assert.Contains(t, output, "Created plan Friday crawl")

	output, err = executeCmd(t, app, "plan", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "Friday crawl")
}

func TestPlanAdd_TonightAndDateConflict(t *testing.T) {
	app := testApp(t, &stubClient{})

	_, err := executeCmd(t, app, "plan", "add", "--title", "x", "--tonight", "--date", "2025-07-04")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestPlanItemLifecycle(t *testing.T) {
	app := testApp(t, &stubClient{})

	_, err := executeCmd(t, app, "plan", "add", "--title", "Date night", "--tonight")
	require.NoError(t, err)

	for _, name := range []string{"Dinner at Sola", "Club Nox"} {
		_, err = executeCmd(t, app, "plan", "item", "add", "Date night", "--name", name)
		require.NoError(t, err)
	}

	output, err := executeCmd(t, app, "plan", "item", "done", "Date night", "1")
	require.NoError(t, err)
	assert.Contains(t, output, "Marked Dinner at Sola as done")

	output, err = executeCmd(t, app, "plan", "show", "Date night")
	require.NoError(t, err)
	assert.Contains(t, output, "1. Dinner at Sola")
	assert.Contains(t, output, "Done")
	assert.Contains(t, output, "2. Club Nox")

	output, err = executeCmd(t, app, "plan", "item", "remove", "Date night", "2")
	require.NoError(t, err)
	assert.Contains(t, output, "Removed Club Nox")
}

func TestPlanReorderCmd(t *testing.T) {
	app := testApp(t, &stubClient{})

	_, err := executeCmd(t, app, "plan", "add", "--title", "Crawl", "--tonight")
	require.NoError(t, err)
	for _, name := range []string{"first", "second", "third"} {
		_, err = executeCmd(t, app, "plan", "item", "add", "Crawl", "--name", name)
		require.NoError(t, err)
	}

	output, err := executeCmd(t, app, "plan", "reorder", "Crawl", "3", "1")
	require.NoError(t, err)
	assert.Contains(t, output, "1. third")
	assert.Contains(t, output, "2. first")
	assert.Contains(t, output, "3. second")
}

func TestPlanReorderCmd_MissingTo(t *testing.T) {
	app := testApp(t, &stubClient{})

	_, err := executeCmd(t, app, "plan", "add", "--title", "Crawl", "--tonight")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "plan", "reorder", "Crawl", "2")
	require.Error(t, err)
}

func TestResolvePlanID_Prefix(t *testing.T) {
	app := testApp(t, &stubClient{})
	ctx := context.Background()

	plan := testutil.NewPlan("Prefix test", testNow)
	require.NoError(t, app.Plans.Create(ctx, &plan))

	got, err := resolvePlanID(ctx, app, plan.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, plan.ID, got)

	_, err = resolvePlanID(ctx, app, "zzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan not found")
}
