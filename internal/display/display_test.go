package display

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/cooktrack/internal/catalog"
	"github.com/hammamikhairi/cooktrack/internal/domain"
	"github.com/hammamikhairi/cooktrack/internal/engine"
	"github.com/hammamikhairi/cooktrack/internal/gamestate"
	"github.com/hammamikhairi/cooktrack/internal/i18n"
	"github.com/hammamikhairi/cooktrack/internal/logger"
	"github.com/hammamikhairi/cooktrack/internal/recipe"
)

func testModel(t *testing.T, opts ...Option) model {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	cat := catalog.New().
		AddObject("246", "Wheat Flour", "Wheat Flour", -25).
		AddObject("388", "Wood", "Wood", -16).
		AddObject("93", "Torch", "Torch", -8)

	var cooking []recipe.Entry
	for i := 0; i < 40; i++ {
		product, ingredient := strconv.Itoa(1000+i), strconv.Itoa(2000+i)
		name := fmt.Sprintf("Dish %02d", i)
		cat.AddObject(product, name, name, -7).
			AddObject(ingredient, "Spice "+ingredient, "Spice "+ingredient, -25)
		cooking = append(cooking, recipe.Entry{Name: name, Raw: "246 1 " + ingredient + " 1/10 10/" + product + "/default"})
	}
	db := recipe.NewDatabase(
		recipe.NewTable(cooking...),
		recipe.NewTable(recipe.Entry{Name: "Torch", Raw: "388 1/Home/93/false/null"}),
	)
	st := gamestate.New().Cook("1001", 2)
	eng := engine.New(db, cat, st, st, i18n.MustDefault(), log)
	ui := NewUI(engine.NewChecklist(eng), i18n.MustDefault(), log, opts...)
	return ui.newModel()
}

func send(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestOpenToggleClose(t *testing.T) {
	m := testModel(t)

	m = send(t, m, runes("r"))
	if !m.checklist.IsOpen() || m.checklist.Mode() != domain.ModeCooking {
		t.Fatal("expected an open cooking checklist")
	}
	if !strings.Contains(m.View(), "Uncooked") {
		t.Fatal("view should show the cooking title")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.checklist.Mode() != domain.ModeCrafting {
		t.Fatalf("expected crafting, got %s", m.checklist.Mode())
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.checklist.Mode() != domain.ModeCooking {
		t.Fatalf("expected cooking, got %s", m.checklist.Mode())
	}

	m = send(t, m, runes("e"))
	if m.checklist.IsOpen() || m.page != domain.PageNone {
		t.Fatal("expected closed checklist back on the plain page")
	}
}

func TestFixedPageDisablesToggle(t *testing.T) {
	m := testModel(t, WithStartPage(domain.PageCrafting))

	m = send(t, m, runes("r"), tea.KeyMsg{Type: tea.KeyLeft})
	if m.checklist.Mode() != domain.ModeCrafting {
		t.Fatalf("expected crafting to stay pinned, got %s", m.checklist.Mode())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.checklist.IsOpen() || m.page != domain.PageCrafting {
		t.Fatalf("expected to return to the crafting page, got %s", m.page)
	}
}

func TestPageCyclesOnlyWhileClosed(t *testing.T) {
	m := testModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.page != domain.PageCooking {
		t.Fatalf("expected cooking page, got %s", m.page)
	}

	m = send(t, m, runes("r"), tea.KeyMsg{Type: tea.KeyTab})
	if m.page != domain.PageCooking {
		t.Fatalf("tab should be ignored while open, got %s", m.page)
	}
}

func TestCustomKeys(t *testing.T) {
	m := testModel(t, WithKeys("c", "q"))
	m = send(t, m, runes("r"))
	if m.checklist.IsOpen() {
		t.Fatal("default open key should be unbound")
	}
	m = send(t, m, runes("c"), runes("e"))
	if !m.checklist.IsOpen() {
		t.Fatal("default menu key should be unbound")
	}
	m = send(t, m, runes("q"))
	if m.checklist.IsOpen() {
		t.Fatal("custom menu key should close")
	}
}

func TestMouseScrolling(t *testing.T) {
	m := testModel(t, WithWheelStep(3))
	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 12}, runes("r"))

	if !m.scroll.Scrollable() {
		t.Fatalf("expected scrollable content, %d lines", len(m.lines))
	}

	wheel := func(b tea.MouseButton) tea.MouseMsg {
		return tea.MouseMsg{Button: b, Action: tea.MouseActionPress}
	}
	m = send(t, m, wheel(tea.MouseButtonWheelDown), wheel(tea.MouseButtonWheelDown))
	if m.scroll.Offset() != 6 {
		t.Fatalf("expected offset 6, got %d", m.scroll.Offset())
	}
	m = send(t, m, wheel(tea.MouseButtonWheelUp))
	if m.scroll.Offset() != 3 {
		t.Fatalf("expected offset 3, got %d", m.scroll.Offset())
	}

	// Grab the handle and drag it to the bottom of the track.
	handleRow := m.scroll.HandlePos() + headerRows
	m = send(t, m,
		tea.MouseMsg{X: 39, Y: handleRow, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress},
		tea.MouseMsg{X: 39, Y: 100, Action: tea.MouseActionMotion},
		tea.MouseMsg{X: 39, Y: 100, Action: tea.MouseActionRelease},
	)
	if m.scroll.Offset() != m.scroll.MaxOffset() {
		t.Fatalf("expected offset %d, got %d", m.scroll.MaxOffset(), m.scroll.Offset())
	}
	if m.dragging {
		t.Fatal("release should end the drag")
	}

	// Toggling resets the scroll position.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.scroll.Offset() != 0 {
		t.Fatalf("expected offset 0 after toggle, got %d", m.scroll.Offset())
	}

	// Clicking the close affordance closes the checklist.
	m = send(t, m, tea.MouseMsg{X: 38, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.checklist.IsOpen() {
		t.Fatal("close affordance should close the checklist")
	}
}

func TestRecipePageShowsMadeCount(t *testing.T) {
	m := testModel(t, WithStartPage(domain.PageCooking))
	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})

	view := m.View()
	if !strings.Contains(view, "> Dish 00") || !strings.Contains(view, "Not made yet") {
		t.Fatalf("expected Dish 00 hovered and not made:\n%s", view)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.hover != 1 {
		t.Fatalf("expected hover 1, got %d", m.hover)
	}
	if view := m.View(); !strings.Contains(view, "> Dish 01") || !strings.Contains(view, "Made: 2") {
		t.Fatalf("expected Dish 01 hovered with its count:\n%s", view)
	}

	// The cursor stops at the first recipe.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	if m.hover != 0 {
		t.Fatalf("expected hover clamped to 0, got %d", m.hover)
	}

	// Opening the checklist gives the cursor keys back to scrolling.
	m = send(t, m, runes("r"), tea.KeyMsg{Type: tea.KeyDown})
	if m.hover != 0 {
		t.Fatalf("hover should not move while open, got %d", m.hover)
	}

	// Switching page starts from the first recipe again.
	m = send(t, m, runes("e"), tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyTab})
	if m.page != domain.PageCrafting || m.hover != 0 {
		t.Fatalf("expected crafting page with hover 0, got %s/%d", m.page, m.hover)
	}
	if view := m.View(); !strings.Contains(view, "> Torch") {
		t.Fatalf("expected crafting recipes listed:\n%s", view)
	}
}

func TestPlainPageListsNoRecipes(t *testing.T) {
	m := testModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.hover != 0 {
		t.Fatalf("expected hover 0, got %d", m.hover)
	}
	if strings.Contains(m.View(), "Dish 00") {
		t.Fatal("plain page should not list recipes")
	}
}
