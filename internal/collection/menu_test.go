package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMenu_AllCapsPositive(t *testing.T) {
	for _, spec := range DefaultMenu() {
		assert.Positive(t, spec.Cap, "spec %q", spec.Label)
		assert.NotNil(t, spec.Match, "spec %q", spec.Label)
		assert.NotEmpty(t, spec.Label)
	}
}

func TestDefaultMenu_RowOrder(t *testing.T) {
	menu := DefaultMenu()
	require.GreaterOrEqual(t, len(menu), 4)
	assert.Equal(t, "Tonight", menu[0].Label)
	assert.Equal(t, "This Weekend", menu[1].Label)
	assert.Equal(t, "Trending", menu[2].Label)
	assert.Equal(t, "Upcoming", menu[len(menu)-1].Label)
}
