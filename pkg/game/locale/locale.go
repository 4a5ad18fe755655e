// Package locale turns message keys into display text using gettext PO catalogs.
package locale

import (
	"embed"
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

//go:embed locales/*.po
var builtin embed.FS

// Catalog resolves message keys. Later layers override earlier ones; a key
// found in no layer is returned unchanged.
type Catalog struct {
	language string
	layers   []*gotext.Po
}

// Load builds the catalog for language from the embedded catalogs, with an
// optional PO file at overridePath layered on top.
func Load(language, overridePath string) (*Catalog, error) {
	if language == "" {
		language = DefaultLanguage
	}

	data, err := builtin.ReadFile("locales/" + language + ".po")
	if err != nil {
		return nil, fmt.Errorf("no built-in catalog for language %q: %w", language, err)
	}

	c := &Catalog{language: language}
	c.addLayer(data)

	if overridePath != "" {
		extra, err := os.ReadFile(overridePath)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", overridePath, err)
		}
		c.addLayer(extra)
	}

	return c, nil
}

// Default returns the built-in catalog for DefaultLanguage.
func Default() *Catalog {
	c, err := Load(DefaultLanguage, "")
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) addLayer(data []byte) {
	po := gotext.NewPo()
	po.Parse(data)
	c.layers = append(c.layers, po)
}

// Language returns the catalog's language code
func (c *Catalog) Language() string {
	return c.language
}

// Has reports whether any layer translates key
func (c *Catalog) Has(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// Get translates key and formats args into the result
func (c *Catalog) Get(key string, args ...any) string {
	text, _ := c.lookup(key)
	if len(args) == 0 {
		return text
	}
	return fmt.Sprintf(text, args...)
}

// poGet looks up a msgid that is not a compile-time constant.
var poGet = (*gotext.Po).Get

func (c *Catalog) lookup(key string) (string, bool) {
	for i := len(c.layers) - 1; i >= 0; i-- {
		if text := poGet(c.layers[i], key); text != key && text != "" {
			return text, true
		}
	}
	return key, false
}
