package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/weather-terminal/internal/config"
)

func TestNewModel(t *testing.T) {
	m := newTestModel(&mockForecastClient{}, nil)

	if m.state != StateSearch {
		t.Errorf("NewModel() state = %v, want StateSearch", m.state)
	}
	if m.focus != FocusInput {
		t.Errorf("NewModel() focus = %v, want FocusInput", m.focus)
	}
	if !m.searchInput.Focused() {
		t.Error("Expected search input to be focused initially")
	}
	if m.searchInput.Placeholder != "Şehir Ara..." {
		t.Errorf("Placeholder = %q, want 'Şehir Ara...'", m.searchInput.Placeholder)
	}
	if m.session.Generation() != 0 {
		t.Errorf("Generation() = %d, want 0 before any search", m.session.Generation())
	}
}

func TestNewModel_InitialCity(t *testing.T) {
	m := NewModel(Options{
		Config:      config.Default(),
		Client:      &mockForecastClient{},
		InitialCity: "  Kocaeli ",
	})

	if m.state != StateLoading {
		t.Errorf("state = %v, want StateLoading", m.state)
	}
	if !m.loading || m.query != "Kocaeli" {
		t.Errorf("loading = %v, query = %q, want true and 'Kocaeli'", m.loading, m.query)
	}
	if m.status != "Yükleniyor..." {
		t.Errorf("status = %q, want 'Yükleniyor...'", m.status)
	}
	if m.Init() == nil {
		t.Error("Init() should start the initial fetch")
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := newTestModel(&mockForecastClient{}, nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	if m.width != 120 || m.height != 40 {
		t.Errorf("After WindowSizeMsg, size = %dx%d, want 120x40", m.width, m.height)
	}
}

func TestModel_CtrlC_Quits(t *testing.T) {
	m := newTestModel(&mockForecastClient{}, nil)

	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("Expected Ctrl+C to return quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected Ctrl+C to produce tea.QuitMsg")
	}
}

func TestModel_Q_TypesWhileSearching(t *testing.T) {
	m := newTestModel(&mockForecastClient{}, nil)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if m.searchInput.Value() != "q" {
		t.Errorf("search input = %q, want 'q'; q in the search box should not quit", m.searchInput.Value())
	}
}

func TestModel_Q_QuitsFromDayStrip(t *testing.T) {
	client := &mockForecastClient{forecast: staticForecast(t, "Kocaeli")}
	m := search(t, newTestModel(client, nil), "Kocaeli")

	if m.focus != FocusDays {
		t.Fatalf("focus = %v, want FocusDays after a successful search", m.focus)
	}
	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("Expected q to quit from the day strip")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected q to produce tea.QuitMsg")
	}
}

func TestTextInputHandling(t *testing.T) {
	m := newTestModel(&mockForecastClient{}, nil)

	m = typeText(m, "Kocaeli")
	if m.searchInput.Value() != "Kocaeli" {
		t.Errorf("Expected search input to be 'Kocaeli', got '%s'", m.searchInput.Value())
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.searchInput.Value() != "Kocael" {
		t.Errorf("Expected 'Kocael' after backspace, got '%s'", m.searchInput.Value())
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.searchInput.Value() != "" {
		t.Errorf("Expected esc to clear the input, got '%s'", m.searchInput.Value())
	}
}

func TestEnterKeyWithEmptyInput(t *testing.T) {
	client := &mockForecastClient{}
	m := newTestModel(client, nil)
	m = typeText(m, "   ")

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Error("Expected no command for a blank city")
	}
	if m.state != StateSearch {
		t.Errorf("Expected to remain in StateSearch, got %v", m.state)
	}
	if m.session.Generation() != 0 {
		t.Error("Blank search must not start a generation")
	}
	if m.loading {
		t.Error("Blank search must not set loading")
	}
}

func TestTab_RequiresData(t *testing.T) {
	m := newTestModel(&mockForecastClient{}, nil)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != FocusInput {
		t.Error("Tab without data should keep focus on the input")
	}
}

func TestSpinnerTick_IgnoredWhenIdle(t *testing.T) {
	m := newTestModel(&mockForecastClient{}, nil)

	_, cmd := m.Update(spinner.TickMsg{})
	if cmd != nil {
		t.Error("Spinner should stop ticking when nothing is loading")
	}
}

func TestMouse_NoZonesIsNoop(t *testing.T) {
	m := newTestModel(&mockForecastClient{}, nil)

	updated, cmd := m.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if cmd != nil {
		t.Error("Click without day cards should do nothing")
	}
	if updated.(Model).selected != 0 {
		t.Error("Click without day cards should not change the selection")
	}
}

func TestAppState_Constants(t *testing.T) {
	if StateSearch != 0 {
		t.Errorf("StateSearch = %d, want 0", StateSearch)
	}
	if StateLoading != 1 {
		t.Errorf("StateLoading = %d, want 1", StateLoading)
	}
	if StateDisplay != 2 {
		t.Errorf("StateDisplay = %d, want 2", StateDisplay)
	}
}
