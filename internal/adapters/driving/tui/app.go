package tui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/zalgo-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/zalgo-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/zalgo-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/zalgo-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/zalgo-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
)

// App is the live preview application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.TextInput
	statusbar *status.Bar

	// kind and intensity are the options being previewed.
	kind      domain.Kind
	intensity domain.Intensity

	// seed keeps the preview stable while typing.
	seed uint64

	mode     messages.Mode
	showHelp bool

	// seq identifies the latest render request.
	seq     int
	preview string
	stats   domain.TextStats

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports. Starting
// options come from the settings port when it is set.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	settings := domain.DefaultSettings()
	if ports.Settings != nil {
		configured, err := ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("creating app: %w", err)
		}
		settings = configured
	}
	if err := settings.Decoration.Intensity.CheckLimit(domain.MaxInteractiveCount); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	seed := settings.Random.Seed
	if !settings.Random.HasSeed {
		seed = rand.Uint64()
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	a := &App{
		ports:     ports,
		ctx:       context.Background(),
		styles:    s,
		keymap:    km,
		input:     input.NewTextInput(s),
		statusbar: status.NewBar(s, km),
		kind:      settings.Decoration.Kind,
		intensity: settings.Decoration.Intensity,
		seed:      seed,
		mode:      messages.ModeEdit,
	}
	a.refreshStatus()
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.input.Init(),
		tea.SetWindowTitle("zalgo"),
		a.render(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.SetWidth(msg.Width)
		a.statusbar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.mode == messages.ModeEdit {
			return a.updateEdit(msg)
		}
		return a.updateControl(msg)

	case messages.PreviewRendered:
		if msg.Seq != a.seq {
			return a, nil
		}
		if msg.Err != nil {
			a.statusbar.SetError(msg.Err)
			return a, nil
		}
		if a.statusbar.IsError() {
			a.statusbar.Clear()
		}
		a.preview = msg.Text
		a.stats = msg.Stats
		return a, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			a.statusbar.SetError(msg.Err)
		} else {
			a.statusbar.SetMessage("Saved as defaults")
		}
		return a, nil
	}

	return a, nil
}

func (a *App) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if keymap.Matches(msg.String(), a.keymap.Focus) {
		a.setMode(messages.ModeControl)
		return a, nil
	}

	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() == before {
		return a, cmd
	}
	return a, tea.Batch(cmd, a.render())
}

func (a *App) updateControl(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return a, tea.Quit
	case keymap.Matches(k, a.keymap.Edit):
		a.setMode(messages.ModeEdit)
		return a, a.input.Focus()
	case keymap.Matches(k, a.keymap.Help):
		a.showHelp = !a.showHelp
		return a, nil
	case keymap.Matches(k, a.keymap.ToggleAbove):
		return a, a.toggle(domain.KindAbove)
	case keymap.Matches(k, a.keymap.ToggleWithin):
		return a, a.toggle(domain.KindWithin)
	case keymap.Matches(k, a.keymap.ToggleBelow):
		return a, a.toggle(domain.KindBelow)
	case keymap.Matches(k, a.keymap.Intensity):
		a.intensity = nextIntensity(a.intensity)
		return a, a.optionsChanged()
	case keymap.Matches(k, a.keymap.Reseed):
		a.seed = rand.Uint64()
		return a, a.optionsChanged()
	case keymap.Matches(k, a.keymap.Save):
		return a, a.save()
	}
	return a, nil
}

func (a *App) setMode(mode messages.Mode) {
	a.mode = mode
	a.statusbar.SetMode(mode)
	if mode == messages.ModeControl {
		a.input.Blur()
	}
}

func (a *App) toggle(k domain.Kind) tea.Cmd {
	a.kind ^= k
	return a.optionsChanged()
}

func (a *App) optionsChanged() tea.Cmd {
	a.statusbar.Clear()
	a.refreshStatus()
	return a.render()
}

func (a *App) refreshStatus() {
	a.statusbar.SetSummary(fmt.Sprintf("%s  %s  seed %d", a.kind, a.intensity, a.seed))
}

// nextIntensity cycles tiny, normal, large, random. Exact counts restart
// the cycle.
func nextIntensity(i domain.Intensity) domain.Intensity {
	switch i.Level() {
	case domain.LevelTiny:
		return domain.IntensityNormal
	case domain.LevelNormal:
		return domain.IntensityLarge
	case domain.LevelLarge:
		return domain.IntensityRandom
	default:
		return domain.IntensityTiny
	}
}

// Options returns the options the preview is rendered with.
func (a *App) Options() domain.Options {
	return domain.Options{
		Kind:      a.kind,
		Intensity: a.intensity,
		Random: domain.RandomSettings{
			Source:  domain.RandomPCG,
			Seed:    a.seed,
			HasSeed: true,
		},
	}
}

// render decorates the current text off the update loop.
func (a *App) render() tea.Cmd {
	a.seq++
	seq, text, opts := a.seq, a.input.Value(), a.Options()
	ctx, svc := a.ctx, a.ports.Decoration

	return func() tea.Msg {
		out, err := svc.Decorate(ctx, text, opts)
		if err != nil {
			return messages.PreviewRendered{Seq: seq, Err: err}
		}
		return messages.PreviewRendered{Seq: seq, Text: out, Stats: svc.Inspect(out)}
	}
}

// save stores the previewed classes and intensity as defaults.
func (a *App) save() tea.Cmd {
	settingsSvc := a.ports.Settings
	kind, intensity := a.kind, a.intensity

	return func() tea.Msg {
		if settingsSvc == nil {
			return messages.SettingsSaved{Err: fmt.Errorf("settings: %w", domain.ErrNotConfigured)}
		}
		settings, err := settingsSvc.Get()
		if err != nil {
			return messages.SettingsSaved{Err: err}
		}
		settings.Decoration.Kind = kind
		settings.Decoration.Intensity = intensity
		return messages.SettingsSaved{Err: settingsSvc.Save(settings)}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Z A L G O"))
	b.WriteString("\n\n")
	b.WriteString(a.input.View())
	b.WriteString("\n")
	b.WriteString(a.renderPreview())
	b.WriteString("\n")
	b.WriteString(a.renderOptions())
	b.WriteString("\n")
	b.WriteString(a.styles.Muted.Render(a.renderStats()))
	b.WriteString("\n")
	if a.showHelp {
		b.WriteString(a.renderHelp())
		b.WriteString("\n")
	}
	b.WriteString(a.statusbar.View())

	return b.String()
}

func (a *App) renderPreview() string {
	style := a.styles.Preview
	if a.width > 4 {
		style = style.Width(a.width - 4)
	}
	if a.preview == "" {
		return style.Render(a.styles.Muted.Render("(nothing yet)"))
	}
	return style.Render(a.preview)
}

func (a *App) renderOptions() string {
	labels := []struct {
		key  string
		kind domain.Kind
		name string
	}{
		{"1", domain.KindAbove, "above"},
		{"2", domain.KindWithin, "within"},
		{"3", domain.KindBelow, "below"},
	}

	parts := make([]string, 0, len(labels)+1)
	for _, l := range labels {
		style := a.styles.OptionOff
		if a.kind.Contains(l.kind) {
			style = a.styles.OptionOn
		}
		parts = append(parts, l.key+" "+style.Render(l.name))
	}
	parts = append(parts, "i "+a.styles.OptionOn.Render(a.intensity.String()))
	return strings.Join(parts, "   ")
}

func (a *App) renderStats() string {
	s := a.stats
	return fmt.Sprintf("%d characters, %d marks (%d above, %d within, %d below), width %d",
		s.Base, s.TotalMarks(),
		s.Marks[domain.ClassAbove], s.Marks[domain.ClassWithin], s.Marks[domain.ClassBelow],
		s.Width)
}

func (a *App) renderHelp() string {
	var rows []string
	for _, group := range a.keymap.FullHelp() {
		hints := make([]string, 0, len(group))
		for _, b := range group {
			h := b.Help()
			hints = append(hints, fmt.Sprintf("%-5s %s", h.Key, h.Desc))
		}
		rows = append(rows, strings.Join(hints, "   "))
	}
	//nolint:misspell // lipgloss.Left is the correct constant from the library
	return a.styles.Help.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Mode returns where key presses currently go.
func (a *App) Mode() messages.Mode {
	return a.mode
}

// Preview returns the last rendered text.
func (a *App) Preview() string {
	return a.preview
}

// Seed returns the seed of the preview.
func (a *App) Seed() uint64 {
	return a.seed
}

// ShowHelp reports whether the full key list is shown.
func (a *App) ShowHelp() bool {
	return a.showHelp
}
