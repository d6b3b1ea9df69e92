// Package i18n renders user-facing status messages in the configured
// language. English and Portuguese bundles are embedded.
package i18n

import (
	"embed"
	"encoding/json"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	mu        sync.RWMutex
	localizer *i18n.Localizer
	current   = "en"
)

func init() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	for _, name := range []string{"locales/en.json", "locales/pt.json"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, name); err != nil {
			panic("i18n: " + err.Error())
		}
	}
	localizer = i18n.NewLocalizer(bundle, "en")
}

// Init selects the language. "auto" or "" uses the system locale and falls
// back to English when it cannot be detected.
func Init(lang string) string {
	resolved := Resolve(lang)
	SetLocale(resolved)
	return resolved
}

// Resolve turns a configured locale into a language tag.
func Resolve(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" || strings.EqualFold(lang, "auto") {
		userLocale, err := locale.GetLocale()
		if err != nil || userLocale == "" {
			return "en-US"
		}
		return userLocale
	}
	return lang
}

// SetLocale changes the current locale.
func SetLocale(lang string) {
	mu.Lock()
	defer mu.Unlock()
	localizer = i18n.NewLocalizer(bundle, lang, "en")
	current = lang
}

// Locale returns the language last passed to SetLocale.
func Locale() string {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// T translates a message by its ID with optional template data.
func T(messageID string, templateData map[string]interface{}) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()

	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: templateData,
	})
	if err != nil {
		// Return message ID if translation fails
		return messageID
	}
	return msg
}
