package menu

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/uvmole/uvmole/internal/cache"
	"github.com/uvmole/uvmole/internal/classify"
	"github.com/uvmole/uvmole/internal/config"
	"github.com/uvmole/uvmole/internal/core"
	"github.com/uvmole/uvmole/internal/scan"
	"github.com/uvmole/uvmole/internal/ui"
)

// screen identifies what the menu is currently showing.
type screen int

const (
	screenMain screen = iota
	screenScanning
	screenAnalysis
	screenCandidates
)

// menuItems are the top-level actions, in display order.
var menuItems = []string{
	"Detailed analysis",
	"Cleanup recommendations",
	"Quit",
}

// ─── Messages ────────────────────────────────────────────────────────────────

// analysisMsg carries the results of a full scan.
type analysisMsg struct {
	cache cache.Analysis
	envs  []scan.EnvEntry
	// packages of the largest environment, if any.
	packages []scan.PackageEntry
}

// candidatesMsg carries classifier output.
type candidatesMsg struct {
	candidates []classify.Candidate
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea model for the interactive main menu.
type Model struct {
	paths      config.Paths
	scanner    *scan.Scanner
	classifier *classify.Classifier

	screen   screen
	cursor   int
	sp       spinner.Model
	width    int
	height   int
	quitting bool

	analysis   *analysisMsg
	candidates []classify.Candidate
	pkgTable   table.Model
}

// New builds the menu over the resolved path set.
func New(paths config.Paths) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.Title

	scanner := scan.NewScanner()
	return Model{
		paths:      paths,
		scanner:    scanner,
		classifier: classify.NewClassifier(scanner, classify.DefaultThresholds()),
		sp:         sp,
		width:      80,
		height:     24,
	}
}

// runAnalysis scans the cache and environments off the update loop.
func (m Model) runAnalysis() tea.Cmd {
	paths := m.paths
	scanner := m.scanner
	return func() tea.Msg {
		msg := analysisMsg{
			cache: cache.New(paths.CacheDir).Analyze(),
			envs:  scanner.DiscoverEnvironments(paths.BasePath),
		}
		if len(msg.envs) > 0 {
			msg.packages = scanner.EnumeratePackages(msg.envs[0].Path)
		}
		return msg
	}
}

// runClassify scores environments off the update loop.
func (m Model) runClassify() tea.Cmd {
	base := m.paths.BasePath
	classifier := m.classifier
	return func() tea.Msg {
		return candidatesMsg{candidates: classifier.Classify(base)}
	}
}

// ─── tea.Model interface ─────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return m.sp.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.sp, cmd = m.sp.Update(msg)
		return m, cmd

	case analysisMsg:
		m.analysis = &msg
		m.pkgTable = newPackageTable(msg.packages, m.height)
		m.screen = screenAnalysis
		return m, nil

	case candidatesMsg:
		m.candidates = msg.candidates
		m.screen = screenCandidates
		return m, nil
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		if m.screen == screenMain {
			m.quitting = true
			return m, tea.Quit
		}
		m.screen = screenMain
		return m, nil
	}

	switch m.screen {
	case screenMain:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
		case "enter":
			return m.selectItem()
		}

	case screenAnalysis:
		var cmd tea.Cmd
		m.pkgTable, cmd = m.pkgTable.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) selectItem() (tea.Model, tea.Cmd) {
	switch m.cursor {
	case 0:
		m.screen = screenScanning
		return m, tea.Batch(m.sp.Tick, m.runAnalysis())
	case 1:
		m.screen = screenScanning
		return m, tea.Batch(m.sp.Tick, m.runClassify())
	default:
		m.quitting = true
		return m, tea.Quit
	}
}

// newPackageTable builds the package browser for the largest environment.
func newPackageTable(packages []scan.PackageEntry, height int) table.Model {
	rows := make([]table.Row, 0, len(packages))
	for _, p := range packages {
		rows = append(rows, table.Row{p.Name, core.FormatSize(p.Size)})
	}

	h := height - 10
	if h < 5 {
		h = 5
	}
	if h > len(rows)+1 {
		h = len(rows) + 1
	}

	return table.New(
		table.WithColumns([]table.Column{
			{Title: "Package", Width: 40},
			{Title: "Size", Width: 12},
		}),
		table.WithRows(rows),
		table.WithHeight(h),
		table.WithFocused(true),
	)
}
