package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cfikit/internal/generate"
	"cfikit/internal/taxonomy"
	"cfikit/internal/validate"
)

type appMode int

const (
	modeMenu appMode = iota
	modeValidate
	modeWizard
	modeBrowseCategories
	modeBrowseGroups
	modeResult
)

// menuItem adapts a menu entry to list.Item.
type menuItem struct {
	title string
	desc  string
	mode  appMode
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// App is the menu-driven interactive interface: validate a code, build one
// with the wizard, or browse the taxonomy.
type App struct {
	tax    *taxonomy.Taxonomy
	val    *validate.Validator
	styles Styles

	mode   appMode
	menu   list.Model
	input  textinput.Model
	wizard Wizard
	browse list.Model

	browseCategory taxonomy.Entry
	result         string

	width  int
	height int
}

// NewApp creates the interactive application over the given taxonomy.
func NewApp(tax *taxonomy.Taxonomy, styles Styles) App {
	items := []list.Item{
		menuItem{title: "Validate", desc: "Check a CFI code and explain each position", mode: modeValidate},
		menuItem{title: "Generate", desc: "Build a CFI code step by step", mode: modeWizard},
		menuItem{title: "Browse", desc: "Explore categories, groups and attributes", mode: modeBrowseCategories},
	}

	// Sized for a plain 80-column terminal until the first resize arrives.
	menu := list.New(items, list.NewDefaultDelegate(), 76, 14)
	menu.Title = "ISO 10962 CFI"
	menu.SetShowHelp(false)
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.Styles.Title = styles.Title

	input := textinput.New()
	input.Placeholder = "ESVUFR"
	input.CharLimit = taxonomy.CodeLength
	input.Width = 12

	browse := list.New(nil, list.NewDefaultDelegate(), 76, 14)
	browse.SetShowHelp(false)
	browse.SetShowStatusBar(false)
	browse.SetFilteringEnabled(true)

	return App{
		tax:    tax,
		val:    validate.New(tax),
		styles: styles,
		mode:   modeMenu,
		menu:   menu,
		input:  input,
		browse: browse,
	}
}

// Init initializes the model.
func (m App) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.menu.SetSize(size.Width, listHeight(size.Height))
		m.browse.SetSize(size.Width, listHeight(size.Height))
	}

	switch m.mode {
	case modeMenu:
		return m.updateMenu(msg)
	case modeValidate:
		return m.updateValidate(msg)
	case modeWizard:
		return m.updateWizard(msg)
	case modeBrowseCategories, modeBrowseGroups:
		return m.updateBrowse(msg)
	case modeResult:
		return m.updateResult(msg)
	}
	return m, nil
}

// View renders the current page.
func (m App) View() string {
	switch m.mode {
	case modeValidate:
		return m.styles.Title.Render("Validate a CFI code") + "\n\n" +
			m.styles.Prompt.Render("Code: ") + m.input.View() + "\n\n" +
			m.styles.Muted.Render("enter validate • esc back")
	case modeWizard:
		return m.wizard.View()
	case modeBrowseCategories, modeBrowseGroups:
		return m.browse.View() + "\n" + m.styles.Muted.Render("enter open • esc back")
	case modeResult:
		return m.result + "\n" + m.styles.Muted.Render("press any key to return to the menu")
	default:
		return m.menu.View() + "\n" + m.styles.Muted.Render("enter select • q quit")
	}
}

func (m App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			item, ok := m.menu.SelectedItem().(menuItem)
			if !ok {
				return m, nil
			}
			switch item.mode {
			case modeValidate:
				m.mode = modeValidate
				m.input.SetValue("")
				return m, m.input.Focus()
			case modeWizard:
				m.mode = modeWizard
				m.wizard = NewWizard(generate.New(m.tax), m.styles)
				if m.width > 0 {
					m.wizard.list.SetSize(m.width, listHeight(m.height))
				}
				return m, nil
			case modeBrowseCategories:
				m.mode = modeBrowseCategories
				m.loadCategories()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m App) updateValidate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.mode = modeMenu
			m.input.Blur()
			return m, nil
		case "enter":
			outcome := m.val.Validate(m.input.Value())
			var header string
			if outcome.Valid {
				header = m.styles.Success.Render("✓ " + outcome.Message)
			} else {
				header = m.styles.Error.Render("✗ " + outcome.Message)
			}
			m.result = header + "\n\n" + validate.FormatDetails(&outcome)
			m.mode = modeResult
			m.input.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m App) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.wizard.Update(msg)
	m.wizard = model.(Wizard)

	if m.wizard.Cancelled() {
		// Swallow the wizard's quit; only the menu exits the program.
		m.mode = modeMenu
		return m, nil
	}
	if m.wizard.Finished() {
		outcome, err := m.wizard.Outcome()
		if err != nil {
			m.result = m.styles.Error.Render("✗ " + err.Error())
		} else {
			m.result = m.styles.Success.Render("Generated CFI code: "+outcome.Code) + "\n\n" +
				validate.FormatDetails(outcome)
		}
		m.mode = modeResult
		return m, nil
	}
	return m, cmd
}

func (m App) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.browse.FilterState() != list.Filtering {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "q":
			if m.mode == modeBrowseGroups {
				m.mode = modeBrowseCategories
				m.loadCategories()
			} else {
				m.mode = modeMenu
			}
			return m, nil
		case "enter":
			item, ok := m.browse.SelectedItem().(optionItem)
			if !ok {
				return m, nil
			}
			if m.mode == modeBrowseCategories {
				m.browseCategory = item.entry
				m.mode = modeBrowseGroups
				m.loadGroups()
				return m, nil
			}
			m.result = m.attributeListing(m.browseCategory.Code, item.entry.Code)
			m.mode = modeResult
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.browse, cmd = m.browse.Update(msg)
	return m, cmd
}

func (m App) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.mode = modeMenu
	}
	return m, nil
}

func (m *App) loadCategories() {
	m.browse.Title = "Categories"
	m.setBrowseItems(m.tax.Categories())
}

func (m *App) loadGroups() {
	groups, err := m.tax.Groups(m.browseCategory.Code)
	if err != nil {
		groups = nil
	}
	m.browse.Title = fmt.Sprintf("Groups of %s - %s", m.browseCategory.Code, m.browseCategory.Description)
	m.setBrowseItems(groups)
}

func (m *App) setBrowseItems(entries []taxonomy.Entry) {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = optionItem{entry: e}
	}
	m.browse.SetItems(items)
	m.browse.ResetFilter()
	m.browse.Select(0)
}

// attributeListing renders the option tables for all four attribute
// positions of a pair.
func (m App) attributeListing(cat, grp string) string {
	var sb strings.Builder
	pair := cat + grp

	if !m.tax.DefinedPair(cat, grp) {
		sb.WriteString(m.styles.Warning.Render(
			fmt.Sprintf("No explicit attribute rules for %s; any letter is accepted at positions 3-6 (X recommended).", pair)))
		sb.WriteString("\n\n")
	}

	for pos := taxonomy.MinAttributePosition; pos <= taxonomy.MaxAttributePosition; pos++ {
		options, err := m.tax.AttributeOptions(cat, grp, pos)
		if err != nil {
			continue
		}
		table := NewSimpleTable(fmt.Sprintf("%s position %d", pair, pos), []string{"Code", "Description"})
		for _, e := range options {
			table.AddRow(e.Code, e.Description)
		}
		sb.WriteString(table.View(m.styles))
	}
	return sb.String()
}
