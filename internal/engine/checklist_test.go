package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hammamikhairi/cooktrack/internal/domain"
	"github.com/hammamikhairi/cooktrack/internal/gamestate"
	"github.com/hammamikhairi/cooktrack/internal/recipe"
)

func newChecklist(t *testing.T) *Checklist {
	t.Helper()
	st := gamestate.New().
		Carry(domain.Stack{ItemID: "(O)246", Quantity: 1}, domain.Stack{ItemID: "(O)388", Quantity: 7}).
		AddLocation(kitchen(domain.Stack{ItemID: "(O)245", Quantity: 2})).
		Enter("FarmHouse")
	e, _ := fixture{
		cooking:  []recipe.Entry{bread, cake},
		crafting: []recipe.Entry{chest, torch},
		state:    st,
	}.build(t)
	return NewChecklist(e)
}

func TestChecklistUnconstrained(t *testing.T) {
	c := newChecklist(t)
	if c.State() != domain.ChecklistClosed {
		t.Fatalf("expected closed, got %s", c.State())
	}

	snap, err := c.Open(domain.Unconstrained())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if snap.Mode() != domain.ModeCooking || c.Mode() != domain.ModeCooking {
		t.Fatalf("expected cooking, got %s", snap.Mode())
	}
	if !c.CanToggle() {
		t.Fatal("expected toggling enabled")
	}
	id := c.SessionID()
	if id == "" {
		t.Fatal("session id is empty")
	}

	if _, err := c.Open(domain.FixedMode(domain.ModeCrafting)); !errors.Is(err, domain.ErrAlreadyOpen) {
		t.Fatalf("expected ErrAlreadyOpen, got %v", err)
	}
	if c.Mode() != domain.ModeCooking || c.Snapshot() != snap {
		t.Fatal("second open must not change the session")
	}

	crafting, err := c.Toggle()
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if crafting.Mode() != domain.ModeCrafting {
		t.Fatalf("expected crafting, got %s", crafting.Mode())
	}

	back, err := c.Toggle()
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if !reflect.DeepEqual(back.UnmadeRecipes(), snap.UnmadeRecipes()) ||
		!reflect.DeepEqual(back.Requirements(), snap.Requirements()) {
		t.Fatal("toggling twice should reproduce the original content")
	}

	prev, err := c.Close()
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if prev != domain.Unconstrained() || prev.Page() != domain.PageNone {
		t.Fatalf("expected unconstrained context, got %s", prev)
	}
	if c.IsOpen() || c.Snapshot() != nil || c.SessionID() != "" {
		t.Fatal("close should clear the session")
	}

	if _, err := c.Toggle(); !errors.Is(err, domain.ErrNotOpen) {
		t.Fatalf("expected ErrNotOpen, got %v", err)
	}
	if _, err := c.Close(); !errors.Is(err, domain.ErrNotOpen) {
		t.Fatalf("expected ErrNotOpen, got %v", err)
	}

	if _, err := c.Open(domain.Unconstrained()); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if c.SessionID() == id {
		t.Fatal("expected a new session id")
	}
}

func TestChecklistFixedMode(t *testing.T) {
	tests := []struct {
		name string
		ctx  domain.OpeningContext
		page domain.HostPage
	}{
		{"cooking page", domain.FixedMode(domain.ModeCooking), domain.PageCooking},
		{"crafting page", domain.FixedMode(domain.ModeCrafting), domain.PageCrafting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newChecklist(t)
			snap, err := c.Open(tt.page.Context())
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			if snap.Mode() != tt.ctx.Mode {
				t.Fatalf("expected %s, got %s", tt.ctx.Mode, snap.Mode())
			}
			if c.CanToggle() {
				t.Fatal("toggling should be disabled")
			}
			if _, err := c.Toggle(); !errors.Is(err, domain.ErrToggleDisabled) {
				t.Fatalf("expected ErrToggleDisabled, got %v", err)
			}
			if c.Mode() != tt.ctx.Mode || c.Snapshot() != snap {
				t.Fatal("failed toggle must leave state unchanged")
			}

			prev, err := c.Close()
			if err != nil {
				t.Fatalf("close: %v", err)
			}
			if prev != tt.ctx || prev.Page() != tt.page {
				t.Fatalf("expected %s, got %s", tt.ctx, prev)
			}
		})
	}
}

func TestChecklistReconciles(t *testing.T) {
	c := newChecklist(t)
	snap, err := c.Open(domain.Unconstrained())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if r := requirement(t, snap, "245"); r.Inventory != 2 || r.Required != 1 || !r.Satisfied() {
		t.Fatalf("expected fridge sugar to satisfy cake, got %+v", r)
	}

	snap, err = c.Toggle()
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	// No workbench in the kitchen: only the bag counts.
	if r := requirement(t, snap, "388"); r.Inventory != 7 || r.Required != 51 {
		t.Fatalf("unexpected wood requirement %+v", r)
	}
}
