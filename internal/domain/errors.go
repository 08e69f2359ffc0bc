package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound = errors.New("not found")

	// Recipe data faults. All of them are recoverable: the affected
	// ingredient or recipe is skipped and the checklist stays usable.
	ErrRecipeNotFound         = errors.New("recipe not found")
	ErrMalformedRecipe        = errors.New("malformed recipe record")
	ErrUnrecognizedToken      = errors.New("unrecognized ingredient token")
	ErrUnresolvableIngredient = errors.New("unresolvable ingredient")
	ErrUnresolvableProduct    = errors.New("unresolvable product")
	ErrCyclicRecipe           = errors.New("cyclic recipe reference")

	// Reconciliation faults.
	ErrNoCurrentLocation = errors.New("no current location")
	ErrNoWorkbench       = errors.New("no workbench found")

	// Checklist session.
	ErrAlreadyOpen    = errors.New("checklist is already open")
	ErrNotOpen        = errors.New("checklist is not open")
	ErrToggleDisabled = errors.New("mode toggling is disabled for this checklist")
)
