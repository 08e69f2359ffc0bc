package i18n

import (
	"testing"

	"github.com/leonelquinteros/gotext"

	"github.com/hammamikhairi/cooktrack/internal/domain"
)

func TestTranslatorLanguages(t *testing.T) {
	tests := []struct {
		lang     string
		wantLang string
		wantMilk string
		wantErr  bool
	}{
		{"en", "en", "Milk", false},
		{"fr_FR.utf8", "fr", "Lait", false},
		{"es-ES", "es", "Leche", false},
		{"", "en", "Milk", false},
		{"xx", "en", "Milk", true},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			tr, err := New(tt.lang)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v, wantErr=%v", err, tt.wantErr)
			}
			if tr.Language() != tt.wantLang {
				t.Fatalf("expected language %s, got %s", tt.wantLang, tr.Language())
			}
			if got := tr.Milk(); got != tt.wantMilk {
				t.Fatalf("expected %q, got %q", tt.wantMilk, got)
			}
		})
	}
}

func TestModeTitleAndMadeCount(t *testing.T) {
	tr := MustDefault()

	if got := tr.ModeTitle(domain.ModeCooking); got != "Uncooked" {
		t.Fatalf("cooking title: got %q", got)
	}
	if got := tr.ModeTitle(domain.ModeCrafting); got != "Uncrafted" {
		t.Fatalf("crafting title: got %q", got)
	}
	if got := tr.MadeCount(0); got != "Not made yet" {
		t.Fatalf("made 0: got %q", got)
	}
	if got := tr.MadeCount(3); got != "Made: 3" {
		t.Fatalf("made 3: got %q", got)
	}
}

func TestLanguagesListsEmbeddedCatalogs(t *testing.T) {
	langs := Languages()
	if len(langs) < 3 {
		t.Fatalf("expected at least 3 catalogs, got %v", langs)
	}
}

func TestLabelsKeepPercentSigns(t *testing.T) {
	po := gotext.NewPo()
	po.Parse([]byte(`
msgid "Prepared"
msgstr "Prepared %"

msgid "Made"
msgstr "Made (100%)"
`))
	tr := &Translator{lang: "xx", po: po}

	if got := tr.Prepared(); got != "Prepared %" {
		t.Fatalf("prepared: got %q", got)
	}
	if got := tr.MadeCount(2); got != "Made (100%): 2" {
		t.Fatalf("made count: got %q", got)
	}
	if got := tr.Egg(); got != "Egg" {
		t.Fatalf("untranslated label should fall back to msgid, got %q", got)
	}
}
