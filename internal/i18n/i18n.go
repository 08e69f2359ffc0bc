// Package i18n provides the localized labels shown in the checklist.
// Translations are gettext .po files embedded at build time.
package i18n

import (
	"embed"
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	"github.com/hammamikhairi/cooktrack/internal/domain"
)

//go:embed locales/*.po
var locales embed.FS

// DefaultLanguage is used when a requested language has no catalog.
const DefaultLanguage = "en"

// Compile-time interface check.
var _ domain.Labels = (*Translator)(nil)

// Translator looks up labels in one language. Missing entries fall back to
// the English msgid.
type Translator struct {
	lang string
	po   *gotext.Po
}

// New loads the catalog for lang ("fr", "fr_FR", "fr-FR" all select fr).
// Unknown languages fall back to English with an error describing why.
func New(lang string) (*Translator, error) {
	base := normalize(lang)
	data, err := locales.ReadFile("locales/" + base + ".po")
	if err != nil {
		t, _ := New(DefaultLanguage)
		return t, fmt.Errorf("no translations for %q, using %s", lang, DefaultLanguage)
	}
	po := gotext.NewPo()
	po.Parse(data)
	return &Translator{lang: base, po: po}, nil
}

// MustDefault returns the English translator.
func MustDefault() *Translator {
	t, err := New(DefaultLanguage)
	if err != nil {
		panic(err)
	}
	return t
}

// Languages lists the embedded catalogs.
func Languages() []string {
	entries, _ := locales.ReadDir("locales")
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".po"))
	}
	return out
}

func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_-."); i > 0 {
		lang = lang[:i]
	}
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// Language returns the catalog in use.
func (t *Translator) Language() string { return t.lang }

func (t *Translator) Any() string                 { return t.po.Get("Any") }
func (t *Translator) Egg() string                 { return t.po.Get("Egg") }
func (t *Translator) Milk() string                { return t.po.Get("Milk") }
func (t *Translator) WildSeeds() string           { return t.po.Get("Wild Seeds") }
func (t *Translator) Locked() string              { return t.po.Get("Locked") }
func (t *Translator) Uncooked() string            { return t.po.Get("Uncooked") }
func (t *Translator) Uncrafted() string           { return t.po.Get("Uncrafted") }
func (t *Translator) RequiredIngredients() string { return t.po.Get("Required Ingredients") }
func (t *Translator) Require() string             { return t.po.Get("Require") }
func (t *Translator) Prepared() string            { return t.po.Get("Prepared") }
func (t *Translator) Made() string                { return t.po.Get("Made") }
func (t *Translator) NotMade() string             { return t.po.Get("Not made yet") }

// ModeTitle returns the section header for the unmade list of a mode.
func (t *Translator) ModeTitle(m domain.Mode) string {
	if m == domain.ModeCrafting {
		return t.Uncrafted()
	}
	return t.Uncooked()
}

// MadeCount renders a made-count line such as "Made: 3".
func (t *Translator) MadeCount(n int) string {
	if n <= 0 {
		return t.NotMade()
	}
	return fmt.Sprintf("%s: %d", t.Made(), n)
}
