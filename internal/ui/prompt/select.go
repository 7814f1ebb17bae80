package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"

	"github.com/raphi011/gg/internal/ui/styles"
)

// SelectResult holds the result of a selection prompt.
type SelectResult struct {
	Value     string
	Index     int
	Cancelled bool
}

type listItem struct {
	title string
	index int
}

func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.title }

type selectModel struct {
	list      list.Model
	count     int
	done      bool
	cancelled bool
	selected  int
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch key := msg.String(); key {
		case "enter":
			if item, ok := m.list.SelectedItem().(listItem); ok {
				m.selected = item.index
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			// Digit keys select the numbered entry directly, but only
			// while the list filter is inactive.
			if m.list.FilterState() == list.Unfiltered {
				if n, _ := strconv.Atoi(key); n <= m.count {
					m.selected = n - 1
					m.done = true
					return m, tea.Quit
				}
			}
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(m.list.View())
}

// Select shows a numbered list selection prompt and returns the user's
// choice. Returns a cancelled result when the user backs out.
func Select(prompt string, options []string) (SelectResult, error) {
	if len(options) == 0 {
		return SelectResult{Cancelled: true}, nil
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return selectPlain(prompt, options)
	}

	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = listItem{title: fmt.Sprintf("%d. %s", i+1, opt), index: i}
	}

	// Custom delegate with minimal styling
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	// Style the selected item
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)

	l := list.New(items, delegate, 60, min(len(options)+6, 20))
	l.Title = prompt
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	model := selectModel{
		list:     l,
		count:    len(options),
		selected: -1,
	}
	p := tea.NewProgram(model,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(colorprofile.Detect(os.Stderr, os.Environ())),
	)
	finalModel, err := p.Run()
	if err != nil {
		return SelectResult{}, err
	}
	m := finalModel.(selectModel)

	if m.cancelled || m.selected < 0 || m.selected >= len(options) {
		return SelectResult{Cancelled: true}, nil
	}

	return SelectResult{
		Value: options[m.selected],
		Index: m.selected,
	}, nil
}

// selectPlain prints a numbered menu on stderr and reads the selection
// from stdin when it is not a terminal.
func selectPlain(prompt string, options []string) (SelectResult, error) {
	fmt.Fprintln(os.Stderr, prompt)
	for i, opt := range options {
		fmt.Fprintf(os.Stderr, "%3d. %s\n", i+1, opt)
	}
	fmt.Fprintf(os.Stderr, "Select 1-%d (empty cancels): ", len(options))

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return SelectResult{Cancelled: true}, nil
	}

	idx, err := parseSelection(line, len(options))
	if err != nil {
		return SelectResult{Cancelled: true}, nil
	}

	return SelectResult{Value: options[idx], Index: idx}, nil
}

// parseSelection parses a 1-based menu selection against n options,
// returning the 0-based index.
func parseSelection(line string, n int) (int, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return 0, fmt.Errorf("empty selection")
	}
	idx, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", trimmed)
	}
	if idx < 1 || idx > n {
		return 0, fmt.Errorf("selection %d out of range 1-%d", idx, n)
	}
	return idx - 1, nil
}
