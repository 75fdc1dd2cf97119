package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cfikit/internal/taxonomy"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	tax, err := taxonomy.Default()
	require.NoError(t, err)
	return NewApp(tax, DefaultStyles(true))
}

func selectMenuItem(t *testing.T, app App, index int) App {
	t.Helper()
	var model tea.Model = app
	for i := 0; i < index; i++ {
		model, _ = pressKey(t, model, "down")
	}
	model, _ = pressKey(t, model, "enter")
	return model.(App)
}

func TestAppMenu(t *testing.T) {
	app := newTestApp(t)

	t.Run("shows the three actions", func(t *testing.T) {
		view := app.View()
		assert.Contains(t, view, "Validate")
		assert.Contains(t, view, "Generate")
		assert.Contains(t, view, "Browse")
	})

	t.Run("q quits", func(t *testing.T) {
		_, cmd := pressKey(t, app, "q")
		assert.NotNil(t, cmd)
	})
}

func TestAppValidateFlow(t *testing.T) {
	app := selectMenuItem(t, newTestApp(t), 0)
	assert.Equal(t, modeValidate, app.mode)
	assert.Contains(t, app.View(), "Validate a CFI code")

	t.Run("valid code shows the decomposition", func(t *testing.T) {
		var model tea.Model = app
		for _, key := range []string{"e", "s", "v", "n", "f", "b"} {
			model, _ = pressKey(t, model, key)
		}
		model, _ = pressKey(t, model, "enter")
		result := model.(App)

		assert.Equal(t, modeResult, result.mode)
		assert.Contains(t, result.View(), "Valid CFI code for Equities - Shares")
		assert.Contains(t, result.View(), "V - Voting")

		model, _ = pressKey(t, result, "enter")
		assert.Equal(t, modeMenu, model.(App).mode)
	})

	t.Run("invalid code shows the failure", func(t *testing.T) {
		app := selectMenuItem(t, newTestApp(t), 0)
		var model tea.Model = app
		for _, key := range []string{"z", "z", "z", "z", "z", "z"} {
			model, _ = pressKey(t, model, key)
		}
		model, _ = pressKey(t, model, "enter")
		result := model.(App)

		assert.Equal(t, modeResult, result.mode)
		assert.Contains(t, result.View(), "Invalid category")
	})

	t.Run("esc returns to the menu", func(t *testing.T) {
		app := selectMenuItem(t, newTestApp(t), 0)
		model, _ := pressKey(t, app, "esc")
		assert.Equal(t, modeMenu, model.(App).mode)
	})
}

func TestAppWizardFlow(t *testing.T) {
	app := selectMenuItem(t, newTestApp(t), 1)
	assert.Equal(t, modeWizard, app.mode)
	assert.Contains(t, app.View(), "Generate a CFI code")

	t.Run("completing the wizard shows the result", func(t *testing.T) {
		var model tea.Model = app
		var cmd tea.Cmd
		for _, key := range []string{"e", "s", "x", "x", "x", "x"} {
			model, cmd = pressKey(t, model, key)
		}
		result := model.(App)

		assert.Equal(t, modeResult, result.mode)
		assert.Nil(t, cmd, "wizard quit is swallowed")
		assert.Contains(t, result.View(), "Generated CFI code: ESXXXX")
	})

	t.Run("cancelling returns to the menu", func(t *testing.T) {
		app := selectMenuItem(t, newTestApp(t), 1)
		model, cmd := pressKey(t, app, "esc")
		assert.Equal(t, modeMenu, model.(App).mode)
		assert.Nil(t, cmd)
	})
}

func TestAppBrowseFlow(t *testing.T) {
	app := selectMenuItem(t, newTestApp(t), 2)
	assert.Equal(t, modeBrowseCategories, app.mode)
	assert.Contains(t, app.View(), "Categories")

	t.Run("opening a category lists its groups", func(t *testing.T) {
		model, _ := pressKey(t, app, "enter")
		groups := model.(App)
		assert.Equal(t, modeBrowseGroups, groups.mode)
		assert.Contains(t, groups.View(), "Groups of E - Equities")
		assert.Contains(t, groups.View(), "Shares")
	})

	t.Run("opening a group shows its attribute tables", func(t *testing.T) {
		model, _ := pressKey(t, app, "enter")
		model, _ = pressKey(t, model, "enter")
		result := model.(App)
		assert.Equal(t, modeResult, result.mode)
		assert.Contains(t, result.View(), "ES position 3")
		assert.Contains(t, result.View(), "Voting")
	})

	t.Run("esc walks back up", func(t *testing.T) {
		model, _ := pressKey(t, app, "enter")
		model, _ = pressKey(t, model, "esc")
		assert.Equal(t, modeBrowseCategories, model.(App).mode)

		model, _ = pressKey(t, model, "esc")
		assert.Equal(t, modeMenu, model.(App).mode)
	})
}
