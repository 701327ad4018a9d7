package ui

import (
	"image"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/ngmaloney/weather-terminal/internal/advice"
	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/forecast"
	"github.com/ngmaloney/weather-terminal/internal/locale"
	"github.com/ngmaloney/weather-terminal/internal/logger"
	"github.com/ngmaloney/weather-terminal/internal/owm"
	"github.com/ngmaloney/weather-terminal/internal/session"
)

// AppState represents the current state of the application
type AppState int

const (
	StateSearch  AppState = iota // No data yet
	StateLoading                 // First search in flight
	StateDisplay                 // Showing a committed snapshot
)

// Focus selects which widget receives key presses
type Focus int

const (
	FocusInput Focus = iota
	FocusDays
)

// Options wires the model's collaborators
type Options struct {
	Config      *config.Config
	Client      owm.ForecastClient
	Icons       owm.IconResolver // optional; nil disables images
	Session     *session.Session
	Logger      *slog.Logger
	Location    *time.Location // day boundaries; nil means time.Local
	InitialCity string
}

// Model represents the application's state
type Model struct {
	state  AppState
	focus  Focus
	width  int
	height int

	cfg    *config.Config
	text   locale.Locale
	theme  theme
	tz     *time.Location
	log    *slog.Logger
	zones  *zone.Manager
	client owm.ForecastClient
	icons  owm.IconResolver

	// Search
	searchInput textinput.Model
	spinner     spinner.Model
	query       string
	loading     bool
	status      string
	statusErr   bool

	// Data
	session    *session.Session
	selected   int
	adviceText string
	clothing   []advice.Item

	// Images keyed by condition code and clothing item
	iconImages     map[string]image.Image
	clothingImages map[advice.Item]image.Image
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	sess := opts.Session
	if sess == nil {
		sess = session.New()
	}
	tz := opts.Location
	if tz == nil {
		tz = time.Local
	}
	text := locale.New(cfg.API.Lang)

	ti := textinput.New()
	ti.Placeholder = text.Label(locale.SearchPlaceholder)
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Colors.Accent))

	m := Model{
		state:          StateSearch,
		focus:          FocusInput,
		cfg:            cfg,
		text:           text,
		theme:          newTheme(cfg.Colors),
		tz:             tz,
		log:            log.With("component", "ui"),
		zones:          zone.New(),
		client:         opts.Client,
		icons:          opts.Icons,
		searchInput:    ti,
		spinner:        s,
		session:        sess,
		iconImages:     make(map[string]image.Image),
		clothingImages: make(map[advice.Item]image.Image),
	}

	if city := strings.TrimSpace(opts.InitialCity); city != "" {
		m.searchInput.SetValue(city)
		m.begin(city)
	}
	return m
}

// Init starts the initial search, if any
func (m Model) Init() tea.Cmd {
	if m.loading {
		return tea.Batch(textinput.Blink, m.spinner.Tick, fetchForecast(m.client, m.cfg.API.Timeout, m.session.Generation(), m.query))
	}
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case forecastFetchedMsg:
		return m.handleForecast(msg)

	case iconFetchedMsg:
		m.handleIcon(msg)
		return m, nil

	case clothingFetchedMsg:
		m.handleClothing(msg)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == FocusInput {
		m.searchInput, cmd = m.searchInput.Update(msg)
	}
	return m, cmd
}

// handleKey routes key presses by focus
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.focus == FocusInput {
		return m.handleSearchInput(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "/":
		m.focusInput()
		return m, textinput.Blink
	case "esc":
		m.searchInput.SetValue("")
		m.focusInput()
		return m, textinput.Blink
	case "left", "h":
		if m.selected > 0 {
			return m, m.selectDay(m.selected - 1)
		}
	case "right", "l":
		if m.selected+1 < m.dayCount() {
			return m, m.selectDay(m.selected + 1)
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(msg.Runes[0] - '1')
		if i < m.dayCount() {
			return m, m.selectDay(i)
		}
	}
	return m, nil
}

// handleSearchInput handles keyboard input while the city box is focused
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Clear a failed-search status when typing
	if m.statusErr && msg.Type != tea.KeyEnter {
		m.status = ""
		m.statusErr = false
	}

	switch msg.Type {
	case tea.KeyEnter:
		city := strings.TrimSpace(m.searchInput.Value())
		if city == "" {
			return m, nil
		}
		wasLoading := m.loading
		gen := m.begin(city)
		fetch := fetchForecast(m.client, m.cfg.API.Timeout, gen, city)
		if wasLoading {
			return m, fetch
		}
		return m, tea.Batch(m.spinner.Tick, fetch)

	case tea.KeyEsc:
		m.searchInput.SetValue("")
		return m, nil

	case tea.KeyTab:
		if m.session.Current() != nil {
			m.focusDays()
		}
		return m, nil
	}

	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleMouse selects the day card under a left click
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for i := 0; i < m.dayCount(); i++ {
		z := m.zones.Get(dayZoneID(i))
		if z == nil || !z.InBounds(msg) {
			continue
		}
		m.focusDays()
		return m, m.selectDay(i)
	}
	return m, nil
}

// begin starts a new search generation and returns it
func (m *Model) begin(city string) uint64 {
	gen := m.session.Begin()
	m.query = city
	m.loading = true
	m.status = m.text.Label(locale.Loading)
	m.statusErr = false
	if m.session.Current() == nil {
		m.state = StateLoading
	}
	m.log.Debug("search started", "city", city, "generation", gen)
	return gen
}

// handleForecast commits a fresh forecast or reports the failure
func (m Model) handleForecast(msg forecastFetchedMsg) (tea.Model, tea.Cmd) {
	if !m.session.IsCurrent(msg.gen) {
		m.log.Debug("dropping stale forecast", "city", msg.city, "generation", msg.gen)
		return m, nil
	}
	m.loading = false

	if msg.err != nil || msg.forecast == nil {
		m.log.Warn("forecast failed", "city", msg.city, "error", msg.err)
		m.status = m.text.Label(locale.NotFound)
		m.statusErr = true
		if m.session.Current() == nil {
			m.state = StateSearch
		} else {
			m.state = StateDisplay
		}
		return m, nil
	}

	city := msg.forecast.City
	if city == "" {
		city = msg.city
	}
	snap := &session.Snapshot{
		Generation:  msg.gen,
		City:        city,
		Forecast:    msg.forecast,
		Aggregation: forecast.Aggregate(msg.forecast.Points, m.tz),
		FetchedAt:   msg.forecast.FetchedAt,
	}
	if !m.session.Commit(snap) {
		return m, nil
	}
	m.log.Info("forecast loaded", "city", city, "points", len(msg.forecast.Points), "days", snap.Aggregation.Len())

	m.status = ""
	m.statusErr = false
	m.state = StateDisplay
	m.focusDays()
	m.adviceText = ""
	m.clothing = nil
	m.clothingImages = make(map[advice.Item]image.Image)

	cmds := []tea.Cmd{m.selectDay(0)}
	seen := make(map[string]bool)
	if _, bucket, ok := snap.Aggregation.Day(0); ok {
		if rep, ok := bucket.Representative(); ok {
			seen[rep.Icon] = true // requested by selectDay
		}
	}
	for i := 0; i < m.dayCount(); i++ {
		code := snap.Aggregation.Summaries[i].Icon
		if seen[code] || m.iconImages[code] != nil {
			continue
		}
		seen[code] = true
		cmds = append(cmds, fetchIcon(m.icons, m.cfg.API.Timeout, msg.gen, "", code))
	}
	return m, tea.Batch(cmds...)
}

// selectDay recomputes advice and clothing for the i-th day and fetches its images
func (m *Model) selectDay(i int) tea.Cmd {
	snap := m.session.Current()
	if snap == nil || i < 0 || i >= m.dayCount() {
		return nil
	}
	_, bucket, ok := snap.Aggregation.Day(i)
	if !ok {
		return nil
	}
	rep, ok := bucket.Representative()
	if !ok {
		return nil
	}

	m.selected = i
	m.adviceText = advice.Advise(rep.Temperature, rep.Description, rep.WindSpeed)
	m.clothing = advice.SelectClothing(rep.Temperature, rep.Description)
	m.clothingImages = make(map[advice.Item]image.Image)

	var cmds []tea.Cmd
	if m.iconImages[rep.Icon] == nil {
		cmds = append(cmds, fetchIcon(m.icons, m.cfg.API.Timeout, snap.Generation, bucket.Key, rep.Icon))
	}
	cmds = append(cmds, fetchClothing(m.icons, m.cfg, snap.Generation, bucket.Key, m.clothing))
	return tea.Batch(cmds...)
}

// handleIcon stores an icon that still belongs to what is on screen
func (m *Model) handleIcon(msg iconFetchedMsg) {
	if msg.img == nil || !m.isShowing(msg.gen, msg.dayKey) {
		return
	}
	m.iconImages[msg.code] = msg.img
}

// handleClothing stores thumbnails for the selected day
func (m *Model) handleClothing(msg clothingFetchedMsg) {
	if msg.dayKey == "" || !m.isShowing(msg.gen, msg.dayKey) {
		return
	}
	m.clothingImages = msg.images
}

// isShowing reports whether gen is the displayed snapshot and dayKey, when set, the selected day
func (m Model) isShowing(gen uint64, dayKey string) bool {
	snap := m.session.Current()
	if snap == nil || snap.Generation != gen {
		return false
	}
	if dayKey == "" {
		return true
	}
	return dayKey == m.selectedKey()
}

func (m Model) selectedKey() string {
	snap := m.session.Current()
	if snap == nil {
		return ""
	}
	summary, _, ok := snap.Aggregation.Day(m.selected)
	if !ok {
		return ""
	}
	return summary.Key
}

// dayCount is the number of selectable day cards
func (m Model) dayCount() int {
	snap := m.session.Current()
	if snap == nil {
		return 0
	}
	return min(snap.Aggregation.Len(), m.cfg.Display.MaxDays)
}

func (m *Model) focusInput() {
	m.focus = FocusInput
	m.searchInput.Focus()
}

func (m *Model) focusDays() {
	m.focus = FocusDays
	m.searchInput.Blur()
}
