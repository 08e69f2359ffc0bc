package display

import (
	"reflect"
	"strings"
	"testing"

	"github.com/hammamikhairi/cooktrack/internal/domain"
	"github.com/hammamikhairi/cooktrack/internal/i18n"
)

func sampleSnapshot() *domain.Snapshot {
	b := domain.NewSnapshotBuilder(domain.ModeCooking)
	b.AddRecipe("Bread")
	b.AddRecipe("Pink Cake (Locked)")
	b.AddDemand(domain.Demand{Key: "246", Ref: domain.Exact("246"), DisplayName: "Wheat Flour", Quantity: 3})
	b.AddDemand(domain.Demand{Key: "-6", Ref: domain.AnyInCategory(-6), DisplayName: "Milk (Any)", Quantity: 1})
	b.AddInventory("246", 3)
	return b.Build()
}

func TestPlainText(t *testing.T) {
	got := PlainText(sampleSnapshot(), i18n.MustDefault(), 80)
	want := strings.Join([]string{
		"Uncooked:",
		"Bread, Pink Cake (Locked)",
		"",
		"Required Ingredients:",
		"O Wheat Flour: Require 3, Prepared 3",
		"X Milk (Any): Require 1, Prepared 0",
	}, "\n") + "\n"
	if got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPlainTextLocalized(t *testing.T) {
	tr, err := i18n.New("fr")
	if err != nil {
		t.Fatalf("loading fr: %v", err)
	}
	out := PlainText(sampleSnapshot(), tr, 80)
	if strings.Contains(out, "Required Ingredients") {
		t.Fatalf("expected translated titles, got:\n%s", out)
	}
}

func TestWrapNames(t *testing.T) {
	names := []string{"Bread", "Pink Cake", "Fried Egg", "Salad"}

	tests := []struct {
		width int
		want  []string
	}{
		{80, []string{"Bread, Pink Cake, Fried Egg, Salad"}},
		{16, []string{"Bread, Pink Cake", "Fried Egg, Salad"}},
		{6, []string{"Bread", "Pink Cake", "Fried Egg", "Salad"}},
		{0, []string{"Bread, Pink Cake, Fried Egg, Salad"}},
	}
	for _, tt := range tests {
		if got := wrapNames(names, tt.width); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("width %d: expected %q, got %q", tt.width, tt.want, got)
		}
	}

	if got := wrapNames(nil, 10); len(got) != 0 {
		t.Fatalf("expected no lines, got %q", got)
	}
}
