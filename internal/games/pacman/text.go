package pacman

import (
	"embed"
	"os"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var localeFS embed.FS

// DefaultLanguage is used when no catalog matches the requested language.
const DefaultLanguage = "en"

var (
	catalogMu sync.RWMutex
	catalog   *gotext.Po
)

// SetLanguage selects the status text catalog. An empty lang reads $LANG.
// Returns the language actually loaded.
func SetLanguage(lang string) string {
	if lang == "" {
		lang = os.Getenv("LANG")
	}
	lang = normalizeLanguage(lang)

	data, err := localeFS.ReadFile("locales/" + lang + ".po")
	if err != nil {
		lang = DefaultLanguage
		data, _ = localeFS.ReadFile("locales/" + DefaultLanguage + ".po")
	}

	po := gotext.NewPo()
	po.Parse(data)

	catalogMu.Lock()
	catalog = po
	catalogMu.Unlock()
	return lang
}

// Languages lists the embedded catalogs.
func Languages() []string {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".po"))
	}
	return out
}

// T returns the translation of a message key. Entries holding verbs are
// formatted by the caller with fmt.Sprintf.
func T(key string) string {
	catalogMu.RLock()
	po := catalog
	catalogMu.RUnlock()

	if po == nil {
		SetLanguage(DefaultLanguage)
		return T(key)
	}
	return po.Get(key)
}

// normalizeLanguage turns "es_ES.UTF-8" into "es".
func normalizeLanguage(lang string) string {
	lang = strings.ToLower(lang)
	if i := strings.IndexAny(lang, "_.-@"); i >= 0 {
		lang = lang[:i]
	}
	if lang == "" || lang == "c" || lang == "posix" {
		return DefaultLanguage
	}
	return lang
}
