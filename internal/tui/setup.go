package tui

import (
	"kidcost/internal/config"
	"kidcost/internal/model"
	"kidcost/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues collects first-run wizard answers.
type setupValues struct {
	State    string
	CareType string
	Bracket  string
	Theme    string
}

// newSetupForm builds the first-run huh form.
func newSetupForm(states []string, vals *setupValues) *huh.Form {
	cfg := config.DefaultConfig()
	vals.State = cfg.General.State
	vals.CareType = cfg.General.CareType
	vals.Bracket = cfg.General.Bracket
	vals.Theme = cfg.Appearance.Theme

	careOpts := make([]huh.Option[string], 0, len(model.CareTypes))
	for _, c := range model.CareTypes {
		careOpts = append(careOpts, huh.NewOption(c.Label(), string(c)))
	}

	bracketOpts := make([]huh.Option[string], 0, len(model.Brackets))
	for _, b := range model.Brackets {
		bracketOpts = append(bracketOpts, huh.NewOption(string(b), string(b)))
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Welcome to kidcost! Which state are you in?").
				Options(huh.NewOptions(states...)...).
				Value(&vals.State),
			huh.NewSelect[string]().
				Title("What kind of childcare are you considering?").
				Options(careOpts...).
				Value(&vals.CareType),
			huh.NewSelect[string]().
				Title("Do you expect prices near the low, average, or high end?").
				Options(bracketOpts...).
				Value(&vals.Bracket),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
	)
}

// saveSetupConfig persists the wizard answers and applies them to the
// running app. Save failures are non-fatal; answers still apply for this
// session.
func (a *App) saveSetupConfig() {
	cfg := loadConfigOrDefault()

	if a.setupVals.State != "" {
		cfg.General.State = a.setupVals.State
	}
	if a.setupVals.CareType != "" {
		cfg.General.CareType = a.setupVals.CareType
	}
	if a.setupVals.Bracket != "" {
		cfg.General.Bracket = a.setupVals.Bracket
	}
	if a.setupVals.Theme != "" {
		cfg.Appearance.Theme = a.setupVals.Theme
		theme.SetActive(a.setupVals.Theme)
	}

	_ = config.Save(cfg)

	a.wantState = cfg.General.State
	a.wantCare = cfg.General.CareType
	a.wantBracket = cfg.General.Bracket
	if a.table != nil {
		a.applyWantedDefaults()
	}
}
