package domain

import "testing"

func TestSnapshotBuilder(t *testing.T) {
	b := NewSnapshotBuilder(ModeCrafting)
	b.AddRecipe("Chest")
	b.AddDemand(Demand{Key: "388", Ref: Exact("388"), DisplayName: "Wood", Quantity: 50})
	b.AddDemand(Demand{Key: "-777", Ref: AnyInCategory(-777), DisplayName: "Wild Seeds (Any)", Quantity: 2})
	b.AddDemand(Demand{Key: "388", Ref: Exact("388"), DisplayName: "Wood", Quantity: 1})

	if !b.AddInventory("388", 20) || !b.AddInventory("388", 31) {
		t.Fatal("known key should accept inventory")
	}
	if b.AddInventory("390", 5) {
		t.Fatal("unknown key should be ignored")
	}
	if b.AddInventory("-777", 0) || b.AddInventory("-777", -3) {
		t.Fatal("non-positive quantities should be ignored")
	}

	snap := b.Build()
	if snap.Mode() != ModeCrafting || snap.Len() != 2 || snap.Empty() {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	reqs := snap.Requirements()
	if reqs[0].Key != "388" || reqs[0].Required != 51 || reqs[0].Inventory != 51 || !reqs[0].Satisfied() {
		t.Fatalf("unexpected wood requirement %+v", reqs[0])
	}
	if reqs[1].Satisfied() {
		t.Fatalf("seeds should be unsatisfied: %+v", reqs[1])
	}

	// Accessors return copies.
	names := snap.UnmadeRecipes()
	names[0] = "changed"
	if snap.UnmadeRecipes()[0] != "Chest" {
		t.Fatal("snapshot was mutated through UnmadeRecipes")
	}
}

func TestEmptySnapshot(t *testing.T) {
	snap := NewSnapshotBuilder(ModeCooking).Build()
	if !snap.Empty() || len(snap.Requirements()) != 0 {
		t.Fatal("expected empty snapshot")
	}
	if _, ok := snap.Requirement("246"); ok {
		t.Fatal("expected no requirement")
	}
}
