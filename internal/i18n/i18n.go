// Package i18n resolves message keys decided by the catalog services into
// user-facing strings. Lookup is pure; the services never format text.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	for _, entry := range []struct {
		tag      language.Tag
		key, msg string
	}{
		{language.English, "favorite.added", "Album added to your favorites."},
		{language.English, "favorite.removed", "Album removed from your favorites."},
		{language.English, "category.inUse", "This category still has albums assigned and cannot be deleted."},
		{language.English, "album.notFound", "Album not found."},
		{language.Polish, "favorite.added", "Album dodany do ulubionych."},
		{language.Polish, "favorite.removed", "Album usunięty z ulubionych."},
		{language.Polish, "category.inUse", "Ta kategoria ma przypisane albumy i nie może zostać usunięta."},
		{language.Polish, "album.notFound", "Nie znaleziono albumu."},
	} {
		if err := message.SetString(entry.tag, entry.key, entry.msg); err != nil {
			panic(err)
		}
	}
}

// Translator is a fixed-locale message lookup.
type Translator struct {
	p *message.Printer
}

// New returns a Translator for the given BCP 47 locale. Unknown locales fall
// back to English.
func New(locale string) *Translator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Translator{p: message.NewPrinter(tag)}
}

// MessageFor returns the localized message for a key. Keys without a catalog
// entry come back as-is, which keeps missing translations visible.
func (t *Translator) MessageFor(key string) string {
	return t.p.Sprintf(key)
}
