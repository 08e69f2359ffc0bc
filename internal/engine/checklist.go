package engine

import (
	"fmt"

	"github.com/hammamikhairi/cooktrack/internal/domain"
)

// Checklist is the open/toggle/close lifecycle of the unmade-recipe view.
// It is driven from a single goroutine and holds no locks.
type Checklist struct {
	eng *Engine

	state     domain.ChecklistState
	ctx       domain.OpeningContext
	mode      domain.Mode
	snap      *domain.Snapshot
	sessionID string
}

// NewChecklist creates a closed checklist bound to an engine.
func NewChecklist(eng *Engine) *Checklist {
	return &Checklist{eng: eng}
}

// Open computes a fresh snapshot and opens the checklist. An unconstrained
// context starts in cooking with toggling enabled; a fixed context pins
// its mode for the whole session.
func (c *Checklist) Open(ctx domain.OpeningContext) (*domain.Snapshot, error) {
	if c.state == domain.ChecklistOpen {
		return nil, domain.ErrAlreadyOpen
	}

	mode := domain.ModeCooking
	if ctx.Fixed {
		mode = ctx.Mode
	}
	snap, err := c.eng.Compute(mode)
	if err != nil {
		return nil, fmt.Errorf("opening checklist: %w", err)
	}

	c.state = domain.ChecklistOpen
	c.ctx = ctx
	c.mode = mode
	c.snap = snap
	c.sessionID = generateID()

	c.eng.log.Info("checklist %s opened (%s, %s)", c.sessionID, ctx, mode)
	return snap, nil
}

// Toggle switches an unconstrained checklist to the other mode and
// recomputes. State is unchanged on error.
func (c *Checklist) Toggle() (*domain.Snapshot, error) {
	if c.state != domain.ChecklistOpen {
		return nil, domain.ErrNotOpen
	}
	if c.ctx.Fixed {
		return nil, domain.ErrToggleDisabled
	}

	mode := c.mode.Other()
	snap, err := c.eng.Compute(mode)
	if err != nil {
		return nil, fmt.Errorf("toggling checklist: %w", err)
	}
	c.mode = mode
	c.snap = snap

	c.eng.log.Debug("checklist %s toggled to %s", c.sessionID, mode)
	return snap, nil
}

// Close discards the snapshot and returns the context the checklist was
// opened from, so the caller can restore the previous page.
func (c *Checklist) Close() (domain.OpeningContext, error) {
	if c.state != domain.ChecklistOpen {
		return domain.OpeningContext{}, domain.ErrNotOpen
	}
	prev := c.ctx

	c.eng.log.Info("checklist %s closed", c.sessionID)
	c.state = domain.ChecklistClosed
	c.ctx = domain.OpeningContext{}
	c.snap = nil
	c.sessionID = ""
	return prev, nil
}

// State returns the lifecycle state.
func (c *Checklist) State() domain.ChecklistState { return c.state }

// IsOpen reports whether the checklist is open.
func (c *Checklist) IsOpen() bool { return c.state == domain.ChecklistOpen }

// Mode returns the current mode. Meaningful only while open.
func (c *Checklist) Mode() domain.Mode { return c.mode }

// CanToggle reports whether Toggle would succeed.
func (c *Checklist) CanToggle() bool { return c.IsOpen() && !c.ctx.Fixed }

// Snapshot returns the current snapshot, or nil when closed.
func (c *Checklist) Snapshot() *domain.Snapshot { return c.snap }

// Engine returns the engine the checklist computes with.
func (c *Checklist) Engine() *Engine { return c.eng }

// SessionID returns the id of the open session, or "" when closed.
func (c *Checklist) SessionID() string { return c.sessionID }
