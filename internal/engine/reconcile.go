package engine

import (
	"strconv"

	"github.com/hammamikhairi/cooktrack/internal/domain"
)

// reconcile adds stored quantities to the builder's requirements. Carried
// stacks always count. Cooking adds every fridge in the current location;
// crafting adds the chests around the nearest workbench.
func (e *Engine) reconcile(mode domain.Mode, b *domain.SnapshotBuilder) {
	e.addStacks(b, e.inventory.Carried())

	loc, ok := e.inventory.CurrentLocation()
	if !ok {
		e.log.Warn("reconcile %s: %v", mode, domain.ErrNoCurrentLocation)
		return
	}

	var containers []domain.Placed
	switch mode {
	case domain.ModeCooking:
		containers = fridges(loc)
	case domain.ModeCrafting:
		bench, found := nearestWorkbench(loc, e.inventory.PlayerPosition())
		if !found {
			e.log.Warn("reconcile crafting in %s: %v", loc.Name(), domain.ErrNoWorkbench)
			return
		}
		containers = chestsAround(loc, bench.Tile)
	}

	for _, c := range containers {
		e.addStacks(b, c.Items)
	}
	e.log.Debug("reconciled %s against %d containers in %s", mode, len(containers), loc.Name())
}

func (e *Engine) addStacks(b *domain.SnapshotBuilder, stacks []domain.Stack) {
	for _, s := range stacks {
		b.AddInventory(domain.NormalizeStackID(s.ItemID), s.Quantity)
		if !e.matchCategories {
			continue
		}
		if item, ok := e.catalog.Lookup(s.ItemID); ok && item.Category < 0 {
			b.AddInventory(strconv.Itoa(item.Category), s.Quantity)
		}
	}
}

// fridges returns the location's built-in fridge followed by its mini
// fridges in scan order.
func fridges(loc domain.Location) []domain.Placed {
	var out []domain.Placed
	if f, ok := loc.Fridge(); ok {
		out = append(out, f)
	}
	for _, o := range loc.Objects() {
		if o.Container && o.QualifiedID == domain.MiniFridgeID {
			out = append(out, o)
		}
	}
	return out
}

// nearestWorkbench returns the workbench closest to pos. Ties keep the
// first one in scan order.
func nearestWorkbench(loc domain.Location, pos domain.Vec2) (domain.Placed, bool) {
	var (
		best  domain.Placed
		dist  float64
		found bool
	)
	for _, o := range loc.Objects() {
		if o.QualifiedID != domain.WorkbenchID {
			continue
		}
		d := pos.DistanceTo(o.Tile)
		if !found || d < dist {
			best, dist, found = o, d, true
		}
	}
	return best, found
}

// chestsAround returns the containers on the eight tiles around t.
func chestsAround(loc domain.Location, t domain.Tile) []domain.Placed {
	var out []domain.Placed
	for _, d := range domain.Neighborhood8 {
		if o, ok := loc.ObjectAt(t.Add(d)); ok && o.Container {
			out = append(out, o)
		}
	}
	return out
}
