package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stackvity/folder-summary/internal/cli/hooks" // Import hooks for message types
	"github.com/stackvity/folder-summary/pkg/summarizer"
)

// --- Constants ---

const listHeightMargin = 5 // header + keywords line + footer + padding

// Phase messages shown in the header.
const (
	phaseInitializing = "Initializing..."
	phaseScanning     = "Scanning..."
	phaseProcessing   = "Processing..."
	phaseWriting      = "Writing report..."
	phaseComplete     = "Complete"
	phaseFailed       = "Failed"
)

// --- Model Struct ---

// Model represents the state of the TUI application.
// It holds UI components (list, spinner), layout dimensions, application status,
// aggregated counts, and the list of files in the folder.
type Model struct {
	// list is the bubbletea component responsible for displaying the scrollable list of files.
	list list.Model
	// spinner is the bubbletea component indicating background activity.
	spinner spinner.Model
	// version is shown in the header.
	version string
	width   int
	height  int
	// initialized tracks if the model has received initial dimensions.
	initialized bool
	// fileItems holds the internal data for each item displayed in the list.
	// Access MUST be protected by listLock.
	fileItems []listItem
	// summary tracks the aggregated counts and timing for the current run.
	summary Summary
	// phaseMessage displays the current overall stage of the run.
	phaseMessage string
	// topKeywords holds the folder keywords once the scan completes.
	topKeywords []string
	// savedPath is the report destination once it has been written.
	savedPath string
	// fatalError stores a descriptive message if the run stopped on a fatal error.
	fatalError string
	// done is set once the run has finished, successfully or not.
	done bool
	// quitting indicates if the user has initiated a shutdown (e.g., via 'q' or Ctrl+C).
	quitting bool
	// processTime maps file names to their processing start time.
	processTime map[string]time.Time
	// itemMap maps file names to their index in fileItems. Protected by listLock.
	itemMap  map[string]int
	listLock sync.Mutex
	// debounceTimer manages debouncing for list updates to prevent excessive rendering.
	debounceTimer *time.Timer
}

// listItem represents a single file in the TUI list.
type listItem struct {
	name     string
	status   summarizer.Status
	message  string // Word count, skip reason or error
	duration time.Duration
}

// Summary holds the aggregated counts displayed in the TUI footer.
type Summary struct {
	TotalFiles     int
	ProcessedCount int
	SkippedCount   int
	ErrorCount     int
	TotalSizeMB    float64
	StartTime      time.Time
}

// --- Bubble Tea Interface Implementations ---

// Init initializes the TUI model and starts the spinner.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles incoming messages (user input, hook events) and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var listCmd tea.Cmd

	switch msg := msg.(type) {
	// --- Internal Bubble Tea Messages ---
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := m.height - listHeightMargin
		if listHeight < 1 {
			listHeight = 1
		}
		m.list.SetSize(m.width, listHeight)
		m.initialized = true

	case tea.KeyMsg:
		if m.quitting {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}
		m.list, listCmd = m.list.Update(msg)
		cmds = append(cmds, listCmd)

	case spinner.TickMsg:
		if m.quitting || m.done {
			return m, nil
		}
		var spinnerCmd tea.Cmd
		m.spinner, spinnerCmd = m.spinner.Update(msg)
		cmds = append(cmds, spinnerCmd)

	// --- Custom Messages from Library Hooks ---
	case hooks.FileDiscoveredMsg:
		m.listLock.Lock()
		if _, exists := m.itemMap[msg.Name]; !exists {
			m.fileItems = append(m.fileItems, listItem{name: msg.Name, status: summarizer.StatusPending})
			m.itemMap[msg.Name] = len(m.fileItems) - 1
			m.summary.TotalFiles++
			cmds = append(cmds, m.debounceListUpdate())
		}
		m.listLock.Unlock()
		if m.phaseMessage == phaseInitializing {
			m.phaseMessage = phaseScanning
		}

	case hooks.FileStatusUpdateMsg:
		m.listLock.Lock()
		idx, ok := m.itemMap[msg.Name]
		if !ok {
			// Status for a file whose discovery message was missed.
			m.fileItems = append(m.fileItems, listItem{name: msg.Name, status: summarizer.StatusPending})
			idx = len(m.fileItems) - 1
			m.itemMap[msg.Name] = idx
			m.summary.TotalFiles++
		}
		item := &m.fileItems[idx]
		switch {
		case msg.Status == summarizer.StatusProcessing:
			m.processTime[msg.Name] = time.Now()
			item.duration = 0
		case isFinalStatus(msg.Status):
			item.duration = msg.Duration
			if startTime, found := m.processTime[msg.Name]; found {
				if item.duration == 0 {
					item.duration = time.Since(startTime)
				}
				delete(m.processTime, msg.Name)
			}
			if !isFinalStatus(item.status) {
				m.incrementSummaryCount(msg.Status)
			}
		}
		item.status = msg.Status
		item.message = msg.Message
		cmds = append(cmds, m.debounceListUpdate())
		m.listLock.Unlock()

		if msg.Status == summarizer.StatusProcessing && m.phaseMessage != phaseProcessing {
			m.phaseMessage = phaseProcessing
		}

	case hooks.RunCompleteMsg:
		m.phaseMessage = phaseWriting
		m.topKeywords = msg.Summary.TopKeywords
		m.summary.TotalFiles = msg.Summary.TotalFiles()
		m.summary.TotalSizeMB = msg.Summary.TotalSizeMB()

	case hooks.ReportSavedMsg:
		m.phaseMessage = phaseComplete
		m.savedPath = msg.Path
		m.done = true
		cmds = append(cmds, tea.Quit)

	case hooks.RunFailedMsg:
		m.phaseMessage = phaseFailed
		if msg.Err != nil {
			m.fatalError = "Fatal Error: " + msg.Err.Error()
		}
		m.done = true
		cmds = append(cmds, tea.Quit)

	case UpdateListMsg:
		m.listLock.Lock()
		items := make([]list.Item, len(m.fileItems))
		for i, item := range m.fileItems {
			items[i] = item
		}
		m.listLock.Unlock()
		cmds = append(cmds, m.list.SetItems(items))
	}

	return m, tea.Batch(cmds...)
}

// View renders the current state of the TUI model.
func (m *Model) View() string {
	if m.quitting {
		return "Exiting...\n"
	}
	if !m.initialized {
		return phaseInitializing
	}

	// --- Header ---
	headerLeft := fmt.Sprintf("Folder Summary v%s", m.version)
	headerRight := m.phaseMessage
	if !m.done && m.phaseMessage != phaseInitializing {
		headerRight = m.spinner.View() + " " + m.phaseMessage
	}
	header := HeaderStyle.Width(m.width).Render(spread(m.width-HeaderStyle.GetHorizontalFrameSize(), headerLeft, headerRight))

	// --- Keywords / result line ---
	resultLine := "Top keywords: " + strings.Join(m.topKeywords, ", ")
	if m.savedPath != "" {
		resultLine = "Summary saved to " + m.savedPath
	}
	resultView := ResultStyle.Render(resultLine)

	// --- Footer ---
	elapsed := time.Since(m.summary.StartTime).Round(time.Millisecond)
	summaryText := fmt.Sprintf(
		"Files: %d | Extracted: %d | No text: %d | Failed: %d | Size: %.2f MB | Elapsed: %s",
		m.summary.TotalFiles,
		m.summary.ProcessedCount,
		m.summary.SkippedCount,
		m.summary.ErrorCount,
		m.summary.TotalSizeMB,
		elapsed,
	)
	footer := FooterStyle.Width(m.width).Render(spread(m.width-FooterStyle.GetHorizontalFrameSize(), summaryText, "q: quit"))

	errorView := ""
	if m.fatalError != "" {
		errorView = StatusStyleFailed.Render(m.fatalError) + "\n"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.list.View(),
		resultView,
		errorView,
		footer,
	)
}

// spread places left and right at the edges of a line of the given width.
func spread(width int, left, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	center := ""
	if gap > 0 {
		center = lipgloss.PlaceHorizontal(gap, lipgloss.Center, " ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, center, right)
}

// --- Helper Methods ---

// NewModel creates the initial model for the TUI.
func NewModel(version string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorStatusProcessing)

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	delegate.ShowDescription = true
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ColorSelectedFg).
		Background(ColorSelectedBg).
		Bold(true).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ColorSelectedDescFg).
		Background(ColorSelectedBg).
		Padding(0, 0, 0, 1)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.
		Foreground(ColorNormalFg).Padding(0, 0, 0, 1)
	delegate.Styles.NormalDesc = delegate.Styles.NormalDesc.
		Foreground(ColorNormalDescFg).Padding(0, 0, 0, 1)

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings() // Use our own quit logic

	if version == "" {
		version = "dev"
	}
	return Model{
		list:         l,
		spinner:      s,
		version:      version,
		summary:      Summary{StartTime: time.Now()},
		phaseMessage: phaseInitializing,
		fileItems:    make([]listItem, 0, 64),
		itemMap:      make(map[string]int),
		processTime:  make(map[string]time.Time),
	}
}

// isFinalStatus checks if a status represents a terminal state for a file.
func isFinalStatus(status summarizer.Status) bool {
	return status == summarizer.StatusSuccess ||
		status == summarizer.StatusFailed ||
		status == summarizer.StatusSkipped
}

// incrementSummaryCount updates summary counts based on the new final status.
// MUST be called with listLock held.
func (m *Model) incrementSummaryCount(status summarizer.Status) {
	switch status {
	case summarizer.StatusSuccess:
		m.summary.ProcessedCount++
	case summarizer.StatusSkipped:
		m.summary.SkippedCount++
	case summarizer.StatusFailed:
		m.summary.ErrorCount++
	}
}

// --- List Item Interface ---

// FilterValue implements the list.Item interface.
func (i listItem) FilterValue() string { return i.name }

// Title implements the list.Item interface.
func (i listItem) Title() string { return i.name }

// Description implements the list.Item interface.
func (i listItem) Description() string {
	var statusStyle lipgloss.Style
	var statusIcon string
	switch i.status {
	case summarizer.StatusSuccess:
		statusStyle = StatusStyleSuccess
		statusIcon = "✓"
	case summarizer.StatusFailed:
		statusStyle = StatusStyleFailed
		statusIcon = "✗"
	case summarizer.StatusSkipped:
		statusStyle = StatusStyleSkipped
		statusIcon = "S"
	case summarizer.StatusProcessing:
		statusStyle = StatusStyleProcessing
		statusIcon = "…"
	default:
		statusStyle = StatusStylePending
		statusIcon = " "
	}

	details := ""
	switch i.status {
	case summarizer.StatusFailed, summarizer.StatusSkipped:
		details = i.message
	case summarizer.StatusSuccess:
		details = strings.TrimSpace(i.message + " " + formatDuration(i.duration))
	}
	return fmt.Sprintf("%s %s", statusStyle.Render(fmt.Sprintf("[%s]", statusIcon)), details)
}

// formatDuration formats duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		if d == 0 {
			return ""
		}
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// --- Update Debouncing ---

// UpdateListMsg signals that the list component should update its items.
type UpdateListMsg struct{}

const listUpdateDebounceDuration = 50 * time.Millisecond // Update list ~20 times/sec max

// debounceListUpdate returns a command that triggers a list update after a
// short delay, restarting the delay on each call.
// MUST be called with listLock held.
func (m *Model) debounceListUpdate() tea.Cmd {
	if m.debounceTimer != nil {
		m.debounceTimer.Stop()
	}
	timer := time.NewTimer(listUpdateDebounceDuration)
	m.debounceTimer = timer
	return func() tea.Msg {
		<-timer.C
		return UpdateListMsg{}
	}
}

// --- Styles ---

const (
	ColorHeaderFg = lipgloss.Color("252") // Light Gray
	ColorHeaderBg = lipgloss.Color("62")  // Purple

	ColorFooterFg = lipgloss.Color("252")
	ColorFooterBg = lipgloss.Color("56") // Dark Pink/Purple

	ColorNormalFg     = lipgloss.Color("250") // Off-white
	ColorNormalDescFg = lipgloss.Color("244") // Dim gray

	ColorSelectedFg     = lipgloss.Color("255") // White
	ColorSelectedBg     = lipgloss.Color("56")  // Dark Pink/Purple
	ColorSelectedDescFg = lipgloss.Color("248") // Lighter Gray

	ColorResultFg = lipgloss.Color("117") // Sky blue

	ColorStatusSuccess    = lipgloss.Color("40")  // Green
	ColorStatusFailed     = lipgloss.Color("196") // Red
	ColorStatusSkipped    = lipgloss.Color("214") // Orange/Yellow
	ColorStatusPending    = lipgloss.Color("244") // Dim gray
	ColorStatusProcessing = lipgloss.Color("205") // Pink (matches spinner)
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeaderFg).
			Background(ColorHeaderBg).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorFooterFg).
			Background(ColorFooterBg).
			Padding(0, 1)

	ResultStyle = lipgloss.NewStyle().
			Foreground(ColorResultFg).
			Padding(0, 1)

	StatusStyleSuccess    = lipgloss.NewStyle().Foreground(ColorStatusSuccess)
	StatusStyleFailed     = lipgloss.NewStyle().Foreground(ColorStatusFailed)
	StatusStyleSkipped    = lipgloss.NewStyle().Foreground(ColorStatusSkipped)
	StatusStylePending    = lipgloss.NewStyle().Foreground(ColorStatusPending)
	StatusStyleProcessing = lipgloss.NewStyle().Foreground(ColorStatusProcessing)
)
