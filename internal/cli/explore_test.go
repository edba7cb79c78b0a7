package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/supertile/pkg/catalog"
	"github.com/matzehuels/supertile/pkg/pipeline"
	"github.com/matzehuels/supertile/pkg/render"
	"github.com/matzehuels/supertile/pkg/ring"
)

func newTestExplorer(t *testing.T, kind string) exploreModel {
	t.Helper()
	cat := catalog.Default()
	m := newExploreModel(context.Background(), pipeline.NewRunner(cat, nil, nil, nil), cat.Kinds())
	for i, k := range m.kinds {
		if k.Name == kind {
			m.selectKind(i)
			return m
		}
	}
	t.Fatalf("kind %s not in catalog", kind)
	return m
}

func press(m exploreModel, keys string) exploreModel {
	for _, r := range keys {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(exploreModel)
	}
	return m
}

func TestExploreComputesWhenComplete(t *testing.T) {
	m := newTestExplorer(t, "OR")
	assert.Nil(t, m.result)
	assert.Contains(t, m.View(), "Choose positions")

	m = press(m, "05")
	assert.Nil(t, m.result, "no output chosen yet")

	m = press(m, "o3")
	require.NoError(t, m.err)
	require.NotNil(t, m.result)
	assert.Equal(t, "OR_3, wire13, empty, empty, wire04, empty, wire02", render.Reduced(m.result.Supertile))
	assert.Contains(t, m.View(), "OR_3")
}

func TestExploreToggle(t *testing.T) {
	m := newTestExplorer(t, "OR")
	m = press(m, "05")
	assert.Equal(t, []ring.Position{0, 5}, m.inputs)

	m = press(m, "5")
	assert.Equal(t, []ring.Position{0}, m.inputs)

	// A full list drops its oldest position.
	m = press(m, "12")
	assert.Equal(t, []ring.Position{1, 2}, m.inputs)

	m = press(m, "c")
	assert.Empty(t, m.inputs)
}

func TestExploreShowsErrors(t *testing.T) {
	m := newTestExplorer(t, "OR")
	m = press(m, "05o2")
	require.Error(t, m.err)
	assert.Nil(t, m.result)
	assert.True(t, strings.Contains(m.View(), "orientation"), m.View())
}

func TestExploreKindSwitchTrims(t *testing.T) {
	m := newTestExplorer(t, "OR")
	m = press(m, "05o3")
	require.NotNil(t, m.result)

	for m.kinds[m.kind].Name != "INPUT" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
		m = next.(exploreModel)
	}
	assert.Equal(t, []ring.Position{5}, m.inputs)
	assert.Empty(t, m.outputs)
	assert.False(t, m.editOut)
	require.NoError(t, m.err)
	require.NotNil(t, m.result)
}

func TestExplorePaths(t *testing.T) {
	m := newTestExplorer(t, "WIRE")
	m = press(m, "4o0p")
	require.NotNil(t, m.result)
	assert.NotNil(t, m.result.Supertile.Paths)
	assert.Contains(t, m.View(), "first input")
}

func TestExploreQuit(t *testing.T) {
	m := newTestExplorer(t, "OR")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
