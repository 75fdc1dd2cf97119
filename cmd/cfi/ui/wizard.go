package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"cfikit/internal/generate"
	"cfikit/internal/taxonomy"
	"cfikit/internal/validate"
)

// optionItem adapts taxonomy.Entry to list.Item.
type optionItem struct {
	entry taxonomy.Entry
}

func (i optionItem) Title() string       { return i.entry.Code }
func (i optionItem) Description() string { return i.entry.Description }
func (i optionItem) FilterValue() string { return i.entry.Code + " " + i.entry.Description }

// Wizard walks through the six positions of a CFI code, offering at each
// step only the choices the taxonomy accepts. It drives a generate.Builder
// and quits once the code is complete or the user cancels.
type Wizard struct {
	builder *generate.Builder
	list    list.Model
	styles  Styles

	width  int
	height int
	errMsg string

	cancelled bool
	finished  bool
	outcome   *validate.Outcome
	finalErr  error
}

// NewWizard creates a wizard resuming wherever the builder currently stands.
func NewWizard(builder *generate.Builder, styles Styles) Wizard {
	// Sized for a plain 80-column terminal until the first resize arrives.
	l := list.New(nil, list.NewDefaultDelegate(), 76, 14)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	w := Wizard{
		builder: builder,
		list:    l,
		styles:  styles,
	}
	w.reloadOptions()
	return w
}

// Cancelled reports whether the user abandoned the wizard.
func (w Wizard) Cancelled() bool {
	return w.cancelled
}

// Finished reports whether all six characters were chosen.
func (w Wizard) Finished() bool {
	return w.finished
}

// Outcome returns the validated result of the completed code.
func (w Wizard) Outcome() (*validate.Outcome, error) {
	if !w.finished {
		return nil, fmt.Errorf("wizard did not finish")
	}
	return w.outcome, w.finalErr
}

// Init initializes the model.
func (w Wizard) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (w Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		w.list.SetSize(msg.Width, listHeight(msg.Height))
		return w, nil

	case tea.KeyMsg:
		if w.list.FilterState() != list.Filtering {
			switch key := msg.String(); key {
			case "ctrl+c", "esc", "q":
				w.cancelled = true
				return w, tea.Quit
			case "enter":
				if item, ok := w.list.SelectedItem().(optionItem); ok {
					return w.apply(item.entry.Code)
				}
				return w, nil
			default:
				// A bare letter answers the step directly, matching the
				// prompt-per-position flow of the line-mode commands.
				if len(key) == 1 && isAnswerKey(key[0]) {
					return w.apply(key)
				}
			}
		}
	}

	var cmd tea.Cmd
	w.list, cmd = w.list.Update(msg)
	return w, cmd
}

// View renders the current step.
func (w Wizard) View() string {
	if w.finished || w.cancelled {
		return ""
	}

	var header string
	header += w.styles.Title.Render("Generate a CFI code") + "\n"
	if partial := w.builder.Code(); partial != "" {
		header += w.styles.Muted.Render("So far: ") + w.styles.Bold.Render(partial) + "\n"
	}
	header += w.styles.Subtitle.Render(fmt.Sprintf("Position %d: %s", w.builder.Position(), w.builder.StepLabel())) + "\n"
	if w.builder.Permissive() {
		header += w.styles.Muted.Render("No explicit rules here; any letter is accepted, X recommended.") + "\n"
	}

	footer := "\n" + w.styles.Muted.Render("enter/letter choose • / filter • q quit")
	if w.errMsg != "" {
		footer += "\n" + w.styles.Error.Render(w.errMsg)
	}

	return header + "\n" + w.list.View() + footer
}

// apply submits an answer for the current step and advances or finishes.
func (w Wizard) apply(answer string) (tea.Model, tea.Cmd) {
	if err := w.builder.Apply(answer); err != nil {
		w.errMsg = err.Error()
		return w, nil
	}
	w.errMsg = ""

	if w.builder.Done() {
		w.outcome, w.finalErr = w.builder.Finalize()
		w.finished = true
		return w, tea.Quit
	}
	w.reloadOptions()
	return w, nil
}

// reloadOptions repopulates the list for the step the builder now waits on.
func (w *Wizard) reloadOptions() {
	options := w.builder.Options()
	items := make([]list.Item, len(options))
	for i, e := range options {
		items[i] = optionItem{entry: e}
	}
	w.list.SetItems(items)
	w.list.ResetFilter()
	w.list.Select(0)
}

// isAnswerKey reports whether a key press is a letter that answers the
// current step. Lowercase q is reserved for quitting.
func isAnswerKey(c byte) bool {
	if c == 'q' {
		return false
	}
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// listHeight leaves room above and below the list for the header and footer.
func listHeight(total int) int {
	h := total - 8
	if h < 5 {
		h = 5
	}
	return h
}
