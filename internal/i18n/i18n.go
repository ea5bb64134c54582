// Package i18n handles localized user-facing strings.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	goLocale "github.com/jeandeaual/go-locale"
	i18nLib "github.com/kaptinlin/go-i18n"
	"golang.org/x/text/language"
)

type LocaleProvider interface {
	GetLocales() ([]string, error)
}

type SystemLocaleProvider struct{}

func (provider SystemLocaleProvider) GetLocales() ([]string, error) {
	return goLocale.GetLocales()
}

//go:embed lang/*.json
var embeddedLang embed.FS

const defaultLocale = "en-GB"

// testModeEnv makes T return the key and its arguments verbatim.
const testModeEnv = "COVSUMMARY_TEST"

type catalog struct {
	bundle    *i18nLib.I18n
	localizer *i18nLib.Localizer
}

var (
	langFS         = embeddedLang
	langDir        = "lang"
	localeProvider LocaleProvider = SystemLocaleProvider{}

	// catalogMu also serialises Localizer.Get, whose internal cache is not safe
	// for concurrent use.
	catalogMu sync.Mutex
	active    *catalog
)

type TData map[string]interface{}

type Tvars struct {
	Count int
	Data  *TData
}

// ResetForTesting drops the loaded catalog so the next T call reloads it.
func ResetForTesting() {
	catalogMu.Lock()
	active = nil
	catalogMu.Unlock()
}

// T translates key for the user's locale, falling back to en-GB and then to
// the key itself.
func T(key string, args ...Tvars) string {
	if _, present := os.LookupEnv(testModeEnv); present {
		return formatKeyAndArgs(key, args...)
	}

	if len(args) > 1 {
		panic("Too many arguments")
	}

	var vars i18nLib.Vars
	if len(args) == 1 {
		vars = make(i18nLib.Vars)
		if args[0].Data != nil {
			for name, value := range *args[0].Data {
				vars[name] = value
			}
		}
		vars["count"] = args[0].Count
	}

	catalogMu.Lock()
	defer catalogMu.Unlock()

	if active == nil {
		active = loadCatalog()
	}
	if vars == nil {
		return active.localizer.Get(key)
	}
	return active.localizer.Get(key, vars)
}

func loadCatalog() *catalog {
	files, err := langFS.ReadDir(langDir)
	if err != nil {
		panic(err)
	}

	locales := []string{defaultLocale}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		locale := strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
		if strings.EqualFold(locale, defaultLocale) {
			continue
		}
		locales = append(locales, locale)
	}

	bundle := i18nLib.NewBundle(
		i18nLib.WithDefaultLocale(defaultLocale),
		i18nLib.WithLocales(locales...),
	)
	if err := bundle.LoadFS(langFS, fmt.Sprintf("%s/*.json", langDir)); err != nil {
		panic(err)
	}

	return &catalog{
		bundle:    bundle,
		localizer: bundle.NewLocalizer(buildLocalizerLocales(userLocales())...),
	}
}

func userLocales() []string {
	if envLocale, present := os.LookupEnv("LANG"); present {
		return []string{envLocale}
	}

	detected, err := localeProvider.GetLocales()
	if err != nil {
		return []string{language.English.String()}
	}
	return detected
}

func formatKeyAndArgs(key string, args ...Tvars) string {
	var sb strings.Builder
	sb.WriteString(key)

	for i, arg := range args {
		sb.WriteString(fmt.Sprintf(", Arg %d: {Count: %d, Data: %v}", i+1, arg.Count, arg.Data))
	}

	return sb.String()
}

// buildLocalizerLocales canonicalises raw locale names ("de_DE.UTF-8") and
// appends each base language after its regional form.
func buildLocalizerLocales(rawLocales []string) []string {
	locales := make([]string, 0, len(rawLocales)*2)
	seen := make(map[string]struct{}, len(rawLocales)*2)
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		locales = append(locales, name)
	}

	for _, raw := range rawLocales {
		raw, _, _ = strings.Cut(strings.TrimSpace(raw), ".")
		if raw == "" {
			continue
		}

		tag, err := language.Parse(raw)
		if err != nil {
			continue
		}

		add(tag.String())
		if base, confidence := tag.Base(); confidence != language.No {
			add(base.String())
		}
	}

	return locales
}
