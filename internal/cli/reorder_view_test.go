package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidmontoya/vesper/internal/teatest"
)

func seedReorderPlan(t *testing.T, app *App) string {
	t.Helper()
	_, err := executeCmd(t, app, "plan", "add", "--title", "Crawl", "--tonight")
	require.NoError(t, err)
	for _, name := range []string{"first", "second", "third"} {
		_, err = executeCmd(t, app, "plan", "item", "add", "Crawl", "--name", name)
		require.NoError(t, err)
	}
	planID, err := resolvePlanID(context.Background(), app, "Crawl")
	require.NoError(t, err)
	return planID
}

func newReorderDriver(t *testing.T, app *App, planID string) *teatest.Driver {
	t.Helper()
	items, err := app.Plans.Items(context.Background(), planID)
	require.NoError(t, err)
	return teatest.New(t, newReorderModel(app, planID, items))
}

func TestReorderModel_MoveDownPersists(t *testing.T) {
	app := testApp(t, &stubClient{})
	planID := seedReorderPlan(t, app)

	d := newReorderDriver(t, app, planID)
	d.Press('J')

	model := d.Model.(*reorderModel)
	require.NoError(t, model.err)
	assert.Equal(t, 1, model.cursor, "cursor follows the moved stop")
	assert.Equal(t, "second", model.items[0].Name)
	assert.Equal(t, "first", model.items[1].Name)

	persisted, err := app.Plans.Items(context.Background(), planID)
	require.NoError(t, err)
	assert.Equal(t, "second", persisted[0].Name)
}

func TestReorderModel_CursorStopsAtBounds(t *testing.T) {
	app := testApp(t, &stubClient{})
	planID := seedReorderPlan(t, app)

	d := newReorderDriver(t, app, planID)
	d.PressUp()
	assert.Equal(t, 0, d.Model.(*reorderModel).cursor)

	for i := 0; i < 5; i++ {
		d.PressDown()
	}
	assert.Equal(t, 2, d.Model.(*reorderModel).cursor)
}

func TestReorderModel_EnterQuits(t *testing.T) {
	app := testApp(t, &stubClient{})
	planID := seedReorderPlan(t, app)

	d := newReorderDriver(t, app, planID)
	d.PressEnter()
	assert.True(t, d.Quitting)
}

func TestReorderModel_View(t *testing.T) {
	app := testApp(t, &stubClient{})
	planID := seedReorderPlan(t, app)

	d := newReorderDriver(t, app, planID)
	view := d.View()
	for _, want := range []string{"1. first", "2. second", "3. third", "move stop up"} {
		assert.True(t, strings.Contains(view, want), "view missing %q", want)
	}
}
