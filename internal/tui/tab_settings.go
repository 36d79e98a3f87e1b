package tui

import (
	"fmt"
	"strconv"
	"strings"

	"kidcost/internal/config"
	"kidcost/internal/estimator"
	"kidcost/internal/model"
	"kidcost/internal/tui/components"
	"kidcost/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldState
	settingsFieldCare
	settingsFieldBracket
	settingsFieldMonths
	settingsFieldMultiplier
	settingsFieldChildren
	settingsFieldDataDir
	settingsFieldFSA
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 40
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldTheme:
		names := make([]string, len(theme.All))
		for i, t := range theme.All {
			names[i] = t.Name
		}
		ti.Placeholder = strings.Join(names, ", ")
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldState:
		ti.Placeholder = "Texas"
		ti.SetValue(cfg.General.State)
	case settingsFieldCare:
		ti.Placeholder = "center-based or family-care"
		ti.SetValue(cfg.General.CareType)
	case settingsFieldBracket:
		ti.Placeholder = "low, average, or high"
		ti.SetValue(cfg.General.Bracket)
	case settingsFieldMonths:
		ti.Placeholder = fmt.Sprintf("%d-%d", estimator.MinMonths, estimator.MaxMonths)
		ti.SetValue(strconv.Itoa(cfg.General.Months))
	case settingsFieldMultiplier:
		ti.Placeholder = fmt.Sprintf("%.1f-%.1f", estimator.MinMultiplier, estimator.MaxMultiplier)
		ti.SetValue(fmt.Sprintf("%.2f", cfg.General.Multiplier))
	case settingsFieldChildren:
		ti.Placeholder = "1"
		ti.SetValue(strconv.Itoa(cfg.General.Children))
	case settingsFieldDataDir:
		ti.Placeholder = "(directory with center-based.csv / family-care.csv)"
		ti.SetValue(cfg.General.DataDir)
	case settingsFieldFSA:
		ti.Placeholder = "5000 (annual USD, 0 to disable)"
		if cfg.Savings.FSAContribution != nil {
			ti.SetValue(fmt.Sprintf("%.0f", *cfg.Savings.FSAContribution))
		}
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	case settingsFieldState:
		if val != "" {
			cfg.General.State = val
			a.wantState = val
		}
	case settingsFieldCare:
		for _, c := range model.CareTypes {
			if string(c) == val {
				cfg.General.CareType = val
				a.wantCare = val
				break
			}
		}
	case settingsFieldBracket:
		for _, br := range model.Brackets {
			if string(br) == val {
				cfg.General.Bracket = val
				a.wantBracket = val
				break
			}
		}
	case settingsFieldMonths:
		if m, err := strconv.Atoi(val); err == nil && m >= estimator.MinMonths && m <= estimator.MaxMonths {
			cfg.General.Months = m
			a.months = m
		}
	case settingsFieldMultiplier:
		if f, err := strconv.ParseFloat(val, 64); err == nil && f >= estimator.MinMultiplier && f <= estimator.MaxMultiplier {
			cfg.General.Multiplier = f
			a.multiplier = f
		}
	case settingsFieldChildren:
		if n, err := strconv.Atoi(val); err == nil && n >= 1 && n <= 6 {
			cfg.General.Children = n
			a.children = n
		}
	case settingsFieldDataDir:
		cfg.General.DataDir = val
		a.dataDir = val
	case settingsFieldFSA:
		if f, err := strconv.ParseFloat(val, 64); err == nil && f >= 0 {
			cfg.Savings.FSAContribution = &f
		}
	}

	a.settings.saveErr = config.Save(cfg)
	a.rates = cfg.SavingsRates()
	if a.table != nil {
		a.applyWantedDefaults()
	}
	a.recompute()
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	dataDirDisplay := cfg.General.DataDir
	if dataDirDisplay == "" {
		dataDirDisplay = "(built-in data)"
	}
	fsaDisplay := "(disabled)"
	if cfg.Savings.FSAContribution != nil && *cfg.Savings.FSAContribution > 0 {
		fsaDisplay = fmt.Sprintf("$%.0f/year", *cfg.Savings.FSAContribution)
	}

	fields := []field{
		{"Theme", cfg.Appearance.Theme},
		{"Default State", cfg.General.State},
		{"Care Type", cfg.General.CareType},
		{"Price Bracket", cfg.General.Bracket},
		{"Months", strconv.Itoa(cfg.General.Months)},
		{"Multiplier", fmt.Sprintf("%.2f", cfg.General.Multiplier)},
		{"Children", strconv.Itoa(cfg.General.Children)},
		{"Data Directory", dataDirDisplay},
		{"FSA Contribution", fsaDisplay},
	}

	var formBody strings.Builder
	for i, f := range fields {
		// Show text input if currently editing this field
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			innerW := components.CardInnerWidth(cw)
			padLen := innerW - usedWidth
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// General info card
	states := 0
	if a.table != nil {
		states = len(a.table.States(a.careType()))
	}
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("States loaded: ") + valueStyle.Render(strconv.Itoa(states)) + "\n")
	infoBody.WriteString(labelStyle.Render("Load time:     ") + valueStyle.Render(fmt.Sprintf("%.2fs", a.loadTime.Seconds())) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:   ") + valueStyle.Render(config.Path()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
