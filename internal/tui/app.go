// Package tui provides the interactive Bubble Tea dashboard for kidcost.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"kidcost/internal/config"
	"kidcost/internal/estimator"
	"kidcost/internal/model"
	"kidcost/internal/refdata"
	"kidcost/internal/store"
	"kidcost/internal/tui/components"
	"kidcost/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// TableLoadedMsg is sent when the reference table finishes loading.
type TableLoadedMsg struct {
	Table    *refdata.Table
	Result   *refdata.LoadResult
	Err      error
	LoadTime time.Duration
}

// Input fields on the estimate panel, top to bottom.
const (
	fieldState = iota
	fieldCareType
	fieldBracket
	fieldMonths
	fieldMultiplier
	fieldChildren
	fieldStartAge
	fieldCount // sentinel
)

// App is the root Bubble Tea model.
type App struct {
	// Reference data
	table      *refdata.Table
	loadResult *refdata.LoadResult
	loaded     bool
	loadErr    error
	loadTime   time.Duration
	dataDir    string

	// Inputs
	states     []string
	stateIdx   int
	careIdx    int
	bracketIdx int
	months     int
	multiplier float64
	children   int
	startAge   int  // child age in months at projection start
	tiered     bool // age-tiered projection instead of flat

	// Derived on every input change
	estimate   model.CostEstimate
	estErr     error
	comparison []model.BracketTotal
	savings    model.SavingsBreakdown
	rates      estimator.SavingsRates

	// UI state
	width       int
	height      int
	activeTab   int
	inputCursor int
	showHelp    bool

	// Per-tab state
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	spinner spinner.Model

	// Desired defaults until the table resolves them to indexes
	wantState   string
	wantCare    string
	wantBracket string
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
	minContentHeight = 5
)

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model.
func NewApp(dataDir string) App {
	needSetup := !config.Exists()

	cfg := loadConfigOrDefault()
	theme.SetActive(cfg.Appearance.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	if dataDir == "" {
		dataDir = cfg.General.DataDir
	}

	months := cfg.General.Months
	if months < estimator.MinMonths || months > estimator.MaxMonths {
		months = 36
	}
	multiplier := cfg.General.Multiplier
	if multiplier < estimator.MinMultiplier || multiplier > estimator.MaxMultiplier {
		multiplier = 1.0
	}
	children := cfg.General.Children
	if children < 1 {
		children = 1
	}

	return App{
		dataDir:     dataDir,
		needSetup:   needSetup,
		months:      months,
		multiplier:  multiplier,
		children:    children,
		rates:       cfg.SavingsRates(),
		spinner:     sp,
		wantState:   cfg.General.State,
		wantCare:    cfg.General.CareType,
		wantBracket: cfg.General.Bracket,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadTableCmd(a.dataDir),
		a.spinner.Tick,
	)
}

func (a App) careType() model.CareType {
	return model.CareTypes[a.careIdx]
}

func (a App) bracket() model.PriceBracket {
	return model.Brackets[a.bracketIdx]
}

func (a App) selectedState() string {
	if len(a.states) == 0 {
		return ""
	}
	return a.states[a.stateIdx]
}

func (a App) selection() model.UserSelection {
	return model.UserSelection{
		State:      a.selectedState(),
		CareType:   a.careType(),
		Bracket:    a.bracket(),
		Multiplier: a.multiplier,
		Months:     a.months,
		Children:   a.children,
	}
}

// refreshStates rebuilds the state list for the current care type, keeping
// the current state selected when it still exists.
func (a *App) refreshStates() {
	current := a.selectedState()
	a.states = a.table.States(a.careType())
	a.stateIdx = 0
	for i, s := range a.states {
		if s == current {
			a.stateIdx = i
			break
		}
	}
}

func (a *App) recompute() {
	if a.table == nil || len(a.states) == 0 {
		a.estErr = estimator.ErrNoData
		return
	}

	sel := a.selection()

	var est model.CostEstimate
	var err error
	if a.tiered {
		est, err = estimator.EstimateAges(a.table, sel, a.startAge)
	} else {
		est, err = estimator.Estimate(a.table, sel)
	}
	if err != nil {
		a.estErr = err
		a.estimate = model.CostEstimate{}
		a.comparison = nil
		a.savings = model.SavingsBreakdown{}
		return
	}

	a.estErr = nil
	a.estimate = est
	a.savings = estimator.ApplySavings(est, a.children, a.rates)

	// Bracket comparison always uses the flat model so brackets differ
	// only by factor, not by age drift.
	if cmp, cmpErr := estimator.CompareBrackets(a.table, sel); cmpErr == nil {
		a.comparison = cmp
	} else {
		a.comparison = nil
	}
}

// adjust changes the value under the input cursor by delta steps.
func (a *App) adjust(delta int) {
	switch a.inputCursor {
	case fieldState:
		if n := len(a.states); n > 0 {
			a.stateIdx = (a.stateIdx + delta + n) % n
		}
	case fieldCareType:
		n := len(model.CareTypes)
		a.careIdx = (a.careIdx + delta + n) % n
		a.refreshStates()
	case fieldBracket:
		n := len(model.Brackets)
		a.bracketIdx = (a.bracketIdx + delta + n) % n
	case fieldMonths:
		a.months += delta
		if a.months < estimator.MinMonths {
			a.months = estimator.MinMonths
		}
		if a.months > estimator.MaxMonths {
			a.months = estimator.MaxMonths
		}
	case fieldMultiplier:
		a.multiplier = math.Round((a.multiplier+float64(delta)*0.05)*100) / 100
		if a.multiplier < estimator.MinMultiplier {
			a.multiplier = estimator.MinMultiplier
		}
		if a.multiplier > estimator.MaxMultiplier {
			a.multiplier = estimator.MaxMultiplier
		}
	case fieldChildren:
		a.children += delta
		if a.children < 1 {
			a.children = 1
		}
		if a.children > 6 {
			a.children = 6
		}
	case fieldStartAge:
		a.startAge += delta
		if a.startAge < 0 {
			a.startAge = 0
		}
		if a.startAge > estimator.MaxStartAge {
			a.startAge = estimator.MaxStartAge
		}
	}
	a.recompute()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Settings tab has its own keybindings (text input)
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Settings tab navigation (non-editing mode)
		if a.activeTab == tabSettings {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		} else {
			// Estimate input navigation, shared by the data tabs
			switch key {
			case "j", "down":
				a.inputCursor = (a.inputCursor + 1) % fieldCount
				return a, nil
			case "k", "up":
				a.inputCursor = (a.inputCursor - 1 + fieldCount) % fieldCount
				return a, nil
			case "h", "-":
				a.adjust(-1)
				return a, nil
			case "l", "+", "=":
				a.adjust(1)
				return a, nil
			case "H":
				a.adjust(-6)
				return a, nil
			case "L":
				a.adjust(6)
				return a, nil
			case "a":
				a.tiered = !a.tiered
				a.recompute()
				return a, nil
			case "r":
				a.loaded = false
				return a, tea.Batch(loadTableCmd(a.dataDir), a.spinner.Tick)
			}
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil

	case TableLoadedMsg:
		a.table = msg.Table
		a.loadResult = msg.Result
		a.loadErr = msg.Err
		a.loadTime = msg.LoadTime
		a.loaded = true

		if a.table != nil {
			a.applyWantedDefaults()
			a.recompute()
		}

		// Activate first-run setup after data loads
		if a.needSetup {
			a.setupForm = newSetupForm(a.states, &a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

// applyWantedDefaults resolves configured state/care/bracket names into
// list indexes once the table is available.
func (a *App) applyWantedDefaults() {
	for i, c := range model.CareTypes {
		if string(c) == a.wantCare {
			a.careIdx = i
			break
		}
	}
	for i, b := range model.Brackets {
		if string(b) == a.wantBracket {
			a.bracketIdx = i
			break
		}
	}
	a.states = a.table.States(a.careType())
	for i, s := range a.states {
		if s == a.wantState {
			a.stateIdx = i
			break
		}
	}
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.recompute()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  kidcost needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active
	w := a.width
	h := a.height

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ kidcost"))
	b.WriteString(subtitleStyle.Render(" · Childcare Cost Estimator"))
	b.WriteString("\n\n")
	b.WriteString(spinnerStyle.Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(" Loading reference data..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"e c b v x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Move between inputs"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Inputs"))
	b.WriteString("\n")
	inputBindings := []struct{ key, desc string }{
		{"h l", "Adjust selected input"},
		{"H L", "Adjust in big steps"},
		{"- +", "Same as h / l"},
		{"a", "Toggle age-tiered projection"},
		{"r", "Reload reference data"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range inputBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	sel := fmt.Sprintf("%s · %s · %s · %dmo",
		a.selectedState(), a.careType().Label(), a.bracket(), a.months)
	statusBar := components.RenderStatusBar(w, sel)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabEstimate:
		content = a.renderEstimateTab(cw)
	case tabChart:
		content = a.renderChartTab(cw, contentH)
	case tabBrackets:
		content = a.renderBracketsTab(cw)
	case tabSavings:
		content = a.renderSavingsTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// Tab indexes matching components.Tabs order.
const (
	tabEstimate = iota
	tabChart
	tabBrackets
	tabSavings
	tabSettings
)

// loadTableCmd builds the reference table in a background command:
// built-in data, then CSV datasets from dataDir, then config overrides.
func loadTableCmd(dataDir string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()

		table := refdata.Default()

		var result *refdata.LoadResult
		var loadErr error
		if dataDir != "" {
			cache, err := store.Open(store.DefaultPath())
			if err == nil {
				result, loadErr = refdata.LoadDir(dataDir, cache, table)
				_ = cache.Close()
			} else {
				result, loadErr = refdata.LoadDir(dataDir, nil, table)
			}
		}

		cfg := loadConfigOrDefault()
		cfg.ApplyOverrides(table)

		return TableLoadedMsg{
			Table:    table,
			Result:   result,
			Err:      loadErr,
			LoadTime: time.Since(start),
		}
	}
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}
