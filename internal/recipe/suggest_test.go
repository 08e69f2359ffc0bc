package recipe

import "testing"

func TestSuggest(t *testing.T) {
	names := []string{"Fried Egg", "Omelet", "Pink Cake", "Cookie", "Pale Broth"}

	tests := []struct {
		query string
		want  string
	}{
		{"omelet", "Omelet"},
		{"omlet", "Omelet"},
		{"Pnik Cake", "Pink Cake"},
		{"Fried Eg", "Fried Egg"},
		{"lobster bisque", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := Suggest(names, tt.query); got != tt.want {
				t.Fatalf("Suggest(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestFind(t *testing.T) {
	names := []string{"Fried Egg", "Omelet"}

	if got, ok := Find(names, "Omelet"); !ok || got != "Omelet" {
		t.Fatalf("exact: got %q, %v", got, ok)
	}
	if got, ok := Find(names, " fried egg "); !ok || got != "Fried Egg" {
		t.Fatalf("case-insensitive: got %q, %v", got, ok)
	}
	if _, ok := Find(names, "Cake"); ok {
		t.Fatal("expected no match")
	}
}
