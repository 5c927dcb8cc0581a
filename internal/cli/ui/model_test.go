package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stackvity/folder-summary/internal/cli/hooks"
	"github.com/stackvity/folder-summary/pkg/summarizer"
	"github.com/stackvity/folder-summary/pkg/summarizer/classify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestModel creates a sized model ready for Update calls.
func newTestModel(width, height int) *Model {
	m := NewModel("1.0.0")
	m.width = width
	m.height = height
	listHeight := height - listHeightMargin
	if listHeight < 1 {
		listHeight = 1
	}
	m.list.SetSize(width, listHeight)
	m.initialized = true
	return &m
}

// producesQuit runs cmd and reports whether it yields tea.QuitMsg, looking
// inside batches.
func producesQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if _, ok := c().(tea.QuitMsg); ok {
				return true
			}
		}
	}
	return false
}

func TestModel_Init(t *testing.T) {
	m := newTestModel(80, 25)
	cmd := m.Init()
	require.NotNil(t, cmd)
	_, ok := cmd().(spinner.TickMsg)
	assert.True(t, ok, "Init should return a command that produces spinner.TickMsg")
}

func TestNewModel_DefaultsVersion(t *testing.T) {
	m := NewModel("")
	assert.Equal(t, "dev", m.version)
	assert.Equal(t, phaseInitializing, m.phaseMessage)
	assert.False(t, m.summary.StartTime.IsZero())
}

func TestModel_Update_Quit(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := newTestModel(80, 25)
			var keyMsg tea.KeyMsg
			if key == "ctrl+c" {
				keyMsg = tea.KeyMsg{Type: tea.KeyCtrlC}
			} else {
				keyMsg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}
			newModel, cmd := m.Update(keyMsg)
			updated, ok := newModel.(*Model)
			require.True(t, ok)
			assert.True(t, updated.quitting)
			require.NotNil(t, cmd)
			_, isQuit := cmd().(tea.QuitMsg)
			assert.True(t, isQuit)

			// Further keys are ignored once quitting.
			_, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
			assert.Nil(t, cmd)
		})
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := NewModel("1.0.0")
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	updated := newModel.(*Model)
	assert.True(t, updated.initialized)
	assert.Equal(t, 100, updated.width)
	assert.Equal(t, 30, updated.height)
	assert.Equal(t, 30-listHeightMargin, updated.list.Height())

	newModel, _ = updated.Update(tea.WindowSizeMsg{Width: 10, Height: 2})
	assert.Equal(t, 1, newModel.(*Model).list.Height())
}

func TestModel_Update_FileDiscovered(t *testing.T) {
	m := newTestModel(80, 25)

	_, cmd := m.Update(hooks.FileDiscoveredMsg{Name: "a.txt"})
	assert.NotNil(t, cmd, "discovery should schedule a list refresh")
	_, _ = m.Update(hooks.FileDiscoveredMsg{Name: "b.pdf"})
	_, _ = m.Update(hooks.FileDiscoveredMsg{Name: "a.txt"}) // duplicate

	require.Len(t, m.fileItems, 2)
	assert.Equal(t, "a.txt", m.fileItems[0].name)
	assert.Equal(t, summarizer.StatusPending, m.fileItems[0].status)
	assert.Equal(t, 1, m.itemMap["b.pdf"])
	assert.Equal(t, 2, m.summary.TotalFiles)
	assert.Equal(t, phaseScanning, m.phaseMessage)
}

func TestModel_Update_FileStatusLifecycle(t *testing.T) {
	m := newTestModel(80, 25)
	_, _ = m.Update(hooks.FileDiscoveredMsg{Name: "a.txt"})
	_, _ = m.Update(hooks.FileDiscoveredMsg{Name: "b.png"})
	_, _ = m.Update(hooks.FileDiscoveredMsg{Name: "c.pdf"})

	_, _ = m.Update(hooks.FileStatusUpdateMsg{Name: "a.txt", Status: summarizer.StatusProcessing})
	assert.Equal(t, phaseProcessing, m.phaseMessage)
	assert.Contains(t, m.processTime, "a.txt")

	_, _ = m.Update(hooks.FileStatusUpdateMsg{Name: "a.txt", Status: summarizer.StatusSuccess, Message: "12 words", Duration: 3 * time.Millisecond})
	_, _ = m.Update(hooks.FileStatusUpdateMsg{Name: "b.png", Status: summarizer.StatusSkipped, Message: "no text extracted for image"})
	_, _ = m.Update(hooks.FileStatusUpdateMsg{Name: "c.pdf", Status: summarizer.StatusFailed, Message: "open pdf: bad"})
	// A repeated final status does not count twice.
	_, _ = m.Update(hooks.FileStatusUpdateMsg{Name: "c.pdf", Status: summarizer.StatusFailed, Message: "open pdf: bad"})

	assert.NotContains(t, m.processTime, "a.txt")
	assert.Equal(t, 3*time.Millisecond, m.fileItems[0].duration)
	assert.Equal(t, "12 words", m.fileItems[0].message)
	assert.Equal(t, summarizer.StatusSkipped, m.fileItems[1].status)
	assert.Equal(t, summarizer.StatusFailed, m.fileItems[2].status)

	assert.Equal(t, 1, m.summary.ProcessedCount)
	assert.Equal(t, 1, m.summary.SkippedCount)
	assert.Equal(t, 1, m.summary.ErrorCount)
	assert.Equal(t, 3, m.summary.TotalFiles)
}

func TestModel_Update_StatusForUnknownFile(t *testing.T) {
	m := newTestModel(80, 25)
	_, _ = m.Update(hooks.FileStatusUpdateMsg{Name: "late.txt", Status: summarizer.StatusSuccess, Message: "1 words"})

	require.Len(t, m.fileItems, 1)
	assert.Equal(t, "late.txt", m.fileItems[0].name)
	assert.Equal(t, 1, m.summary.TotalFiles)
	assert.Equal(t, 1, m.summary.ProcessedCount)
}

func TestModel_Update_RunCompleteThenSaved(t *testing.T) {
	m := newTestModel(80, 25)
	summary := summarizer.FolderSummary{
		TotalSizeBytes: 2 * summarizer.BytesPerMB,
		TopKeywords:    []string{"alpha", "beta"},
		Files: []summarizer.FileRecord{
			summarizer.NewFileRecord("a.txt", classify.CategoryTxt, 10, 2, nil),
			summarizer.NewFileRecord("b.png", classify.CategoryPNG, 20, 0, nil),
		},
	}

	_, cmd := m.Update(hooks.RunCompleteMsg{Summary: summary})
	assert.False(t, producesQuit(cmd), "run completion alone must not quit before the report is written")
	assert.Equal(t, phaseWriting, m.phaseMessage)
	assert.Equal(t, []string{"alpha", "beta"}, m.topKeywords)
	assert.Equal(t, 2, m.summary.TotalFiles)
	assert.InDelta(t, 2.0, m.summary.TotalSizeMB, 0.001)
	assert.False(t, m.done)

	_, cmd = m.Update(hooks.ReportSavedMsg{Path: "/tmp/out.docx"})
	assert.True(t, producesQuit(cmd))
	assert.True(t, m.done)
	assert.Equal(t, phaseComplete, m.phaseMessage)
	assert.Equal(t, "/tmp/out.docx", m.savedPath)
}

func TestModel_Update_RunFailed(t *testing.T) {
	m := newTestModel(80, 25)
	_, cmd := m.Update(hooks.RunFailedMsg{Err: errors.New("disk full")})

	assert.True(t, producesQuit(cmd))
	assert.True(t, m.done)
	assert.Equal(t, phaseFailed, m.phaseMessage)
	assert.Equal(t, "Fatal Error: disk full", m.fatalError)
}

func TestModel_Update_SpinnerStopsWhenDone(t *testing.T) {
	m := newTestModel(80, 25)
	m.done = true
	_, cmd := m.Update(m.spinner.Tick())
	assert.Nil(t, cmd)
}

func TestModel_Update_ListRefresh(t *testing.T) {
	m := newTestModel(80, 25)
	_, _ = m.Update(hooks.FileDiscoveredMsg{Name: "a.txt"})
	_, _ = m.Update(hooks.FileDiscoveredMsg{Name: "b.txt"})

	_, _ = m.Update(UpdateListMsg{})
	assert.Len(t, m.list.Items(), 2)
}

func TestModel_DebounceListUpdate(t *testing.T) {
	m := newTestModel(80, 25)
	m.listLock.Lock()
	first := m.debounceListUpdate()
	second := m.debounceListUpdate()
	m.listLock.Unlock()

	require.NotNil(t, first)
	require.NotNil(t, second)
	start := time.Now()
	_, ok := second().(UpdateListMsg)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), listUpdateDebounceDuration/2)
}

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		in   time.Duration
		want string
	}{
		{0, ""},
		{500 * time.Microsecond, "500µs"},
		{42 * time.Millisecond, "42ms"},
		{1500 * time.Millisecond, "1.50s"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, formatDuration(tc.in))
	}
}

func TestIsFinalStatus(t *testing.T) {
	assert.True(t, isFinalStatus(summarizer.StatusSuccess))
	assert.True(t, isFinalStatus(summarizer.StatusFailed))
	assert.True(t, isFinalStatus(summarizer.StatusSkipped))
	assert.False(t, isFinalStatus(summarizer.StatusPending))
	assert.False(t, isFinalStatus(summarizer.StatusProcessing))
}
