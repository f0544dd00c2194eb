package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glimpse-tui/glimpse/internal/leds"
)

// state tracks the application lifecycle. An explicit enum rather than a
// bool so future terminal states stay unambiguous.
type state int

const (
	stateRunning state = iota
	stateStopped
)

// Pane identifies which panel receives navigation key input.
// The detail pane is display-only and never navigable.
type Pane int

const (
	PaneSidebar Pane = iota
	PaneDetail
)

// ledItem wraps an LED record for use with bubbles/list
type ledItem struct {
	led leds.LED
}

// FilterValue implements list.Item. Filtering is disabled, but the
// display name is the natural filter key.
func (i ledItem) FilterValue() string {
	return i.led.Name
}

// ledDelegate renders one LED per line with a selection highlight
type ledDelegate struct{}

func (d ledDelegate) Height() int { return 1 }

func (d ledDelegate) Spacing() int { return 0 }

func (d ledDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d ledDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(ledItem)
	if !ok {
		return
	}

	line := it.led.Name
	if index == m.Index() {
		fmt.Fprint(w, SelectedListItemStyle.Render(line))
		return
	}
	fmt.Fprint(w, ListItemStyle.Render(line))
}

// appKeyMap defines the key bindings recognized by the application
type appKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Quit},
	}
}

func newAppKeyMap() appKeyMap {
	return appKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous LED"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next LED"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// App is the Bubble Tea model for the LED browser. It owns the list of
// discovered records, the append-only status log, and the selection
// state. All state is built once at startup and mutated only in Update.
type App struct {
	state       state
	focusedPane Pane

	leds []leds.LED
	log  []string

	list list.Model
	keys appKeyMap
	help help.Model

	width  int
	height int
}

// NewApp scans for LEDs once and constructs the application model.
// A failed scan degrades to an empty device list: the error becomes a
// log line and the UI stays interactive.
func NewApp() App {
	found, err := leds.Scan()
	return newAppFromScan(found, err)
}

func newAppFromScan(found []leds.LED, err error) App {
	var logLines []string
	if err != nil {
		logLines = append(logLines, fmt.Sprintf("Error getting LEDs: %v", err))
		found = nil
	} else {
		logLines = append(logLines, fmt.Sprintf("Successfully found %d LED(s)", len(found)))
	}
	return newApp(found, logLines)
}

func newApp(found []leds.LED, logLines []string) App {
	items := make([]list.Item, len(found))
	for i, led := range found {
		items[i] = ledItem{led: led}
	}

	l := list.New(items, ledDelegate{}, MinSidebarWidth, DefaultHeight-4)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)

	return App{
		state:       stateRunning,
		focusedPane: PaneSidebar,
		leds:        found,
		log:         logLines,
		list:        l,
		keys:        newAppKeyMap(),
		help:        help.New(),
	}
}

// Init implements tea.Model. The scan already ran in NewApp, so there
// is no startup command.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Only key-press events are significant;
// mouse events are ignored and window resizes just update the stored
// dimensions.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.list.SetSize(SidebarWidth(msg.Width)-2, msg.Height-4)
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a.quit()

		case key.Matches(msg, a.keys.Up):
			if a.focusedPane == PaneSidebar {
				a.list.CursorUp()
			}
			return a, nil

		case key.Matches(msg, a.keys.Down):
			if a.focusedPane == PaneSidebar {
				a.list.CursorDown()
			}
			return a, nil
		}
	}

	return a, nil
}

// quit transitions Running -> Stopped, appending the exit notice.
func (a App) quit() (tea.Model, tea.Cmd) {
	a.state = stateStopped
	a.log = append(a.log, "Exiting Glimpse")
	return a, tea.Quit
}

// Logs returns the accumulated status log. The caller prints it to
// stdout after the terminal has been restored.
func (a App) Logs() []string {
	return a.log
}

// SelectedIndex returns the current sidebar selection.
func (a App) SelectedIndex() int {
	return a.list.Index()
}

// selected returns the currently highlighted LED, or nil with an empty
// device list.
func (a App) selected() *leds.LED {
	if len(a.leds) == 0 {
		return nil
	}
	idx := a.list.Index()
	if idx < 0 || idx >= len(a.leds) {
		return nil
	}
	return &a.leds[idx]
}

// View implements tea.Model. Rendering never mutates application state.
func (a App) View() string {
	if a.state == stateStopped {
		return ""
	}

	width := a.width
	height := a.height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	sidebarWidth := SidebarWidth(width)
	detailWidth := width - sidebarWidth
	paneHeight := height - 3 // room for borders and the help footer

	sidebar := a.renderSidebar(sidebarWidth, paneHeight)
	detail := a.renderDetail(detailWidth, paneHeight)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, detail)
	footer := HelpStyle.Render(a.help.View(a.keys))

	return lipgloss.JoinVertical(lipgloss.Left, panes, footer)
}

// renderSidebar renders the LED list pane.
func (a App) renderSidebar(width, height int) string {
	title := lipgloss.PlaceHorizontal(width-2, lipgloss.Center, TitleStyle.Render(SidebarTitle))

	content := title + "\n" + a.list.View()

	return SidebarStyle.
		Width(width - 2).
		Height(height).
		Render(content)
}

// renderDetail renders the detail pane: the selected LED's summary
// followed by the accumulated log lines.
func (a App) renderDetail(width, height int) string {
	title := lipgloss.PlaceHorizontal(width-2, lipgloss.Center, TitleStyle.Render(DetailTitle))

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")

	if led := a.selected(); led != nil {
		b.WriteString(fmt.Sprintf("Name:  %s\n", led.Name))
		b.WriteString(fmt.Sprintf("Sysfs: %s\n", led.FileName))
		b.WriteString(fmt.Sprintf("State: %s\n", RenderState(led.On)))
		b.WriteString("\n")
	}

	b.WriteString(LogStyle.Render(strings.Join(a.log, "\n")))

	return DetailStyle.
		Width(width - 2).
		Height(height).
		Render(b.String())
}
