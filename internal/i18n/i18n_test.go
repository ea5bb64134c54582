package i18n

import (
	"embed"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingLocaleProvider struct{}

func (provider failingLocaleProvider) GetLocales() ([]string, error) {
	return nil, errors.New("no locale")
}

type fixedLocaleProvider struct {
	locales []string
}

func (provider fixedLocaleProvider) GetLocales() ([]string, error) {
	return provider.locales, nil
}

//go:embed __fixtures__/*.json
var testData embed.FS

//go:embed __fixtures_invalid__/*.json
var invalidLocales embed.FS

func useFixtures(t *testing.T, fs embed.FS, dir string) {
	t.Helper()
	originalFS := langFS
	originalDir := langDir
	originalProvider := localeProvider

	langFS = fs
	langDir = dir
	ResetForTesting()

	t.Cleanup(func() {
		langFS = originalFS
		langDir = originalDir
		localeProvider = originalProvider
		ResetForTesting()
	})
}

func TestSimpleTranslations(t *testing.T) {
	useFixtures(t, testData, "__fixtures__")

	t.Run("default locale", func(t *testing.T) {
		ResetForTesting()
		t.Setenv("LANG", "en_GB")
		assert.Equal(t, "Hello World", T("test.simple"))
	})

	t.Run("german", func(t *testing.T) {
		ResetForTesting()
		t.Setenv("LANG", "de_DE.UTF-8")
		assert.Equal(t, "Hallo Welt", T("test.simple"))
	})

	t.Run("unknown locale falls back to default", func(t *testing.T) {
		ResetForTesting()
		t.Setenv("LANG", "ja_JP")
		assert.Equal(t, "Hello World", T("test.simple"))
	})

	t.Run("named values are interpolated", func(t *testing.T) {
		ResetForTesting()
		t.Setenv("LANG", "en_GB")
		actual := T("test.named", Tvars{Data: &TData{"path": "target/site/jacoco/index.html"}})
		assert.Equal(t, "Report at target/site/jacoco/index.html", actual)
	})

	t.Run("test mode returns the key", func(t *testing.T) {
		t.Setenv(testModeEnv, "true")
		assert.Equal(t, "test.simple", T("test.simple"))
	})
}

func TestPluralsTranslations(t *testing.T) {
	useFixtures(t, testData, "__fixtures__")
	t.Setenv("LANG", "en_GB")

	other := T("test.multiple", Tvars{Data: &TData{"injectedData": "in English"}})
	assert.Equal(t, "Other message in English", other)

	one := T("test.multiple", Tvars{Count: 1, Data: &TData{"injectedData": "in English"}})
	assert.Equal(t, "One message: in English", one)
}

func TestTestModeFormatsArguments(t *testing.T) {
	t.Setenv(testModeEnv, "true")

	actual := T("test.multiple", Tvars{Count: 1, Data: &TData{"injectedData": "x"}})
	assert.Equal(t, "test.multiple, Arg 1: {Count: 1, Data: &map[injectedData:x]}", actual)
}

func TestMissingTranslation(t *testing.T) {
	useFixtures(t, testData, "__fixtures__")
	t.Setenv("LANG", "en_GB")

	assert.Equal(t, "test.missing", T("test.missing"))
}

func TestEmbeddedCatalogLoads(t *testing.T) {
	ResetForTesting()
	t.Cleanup(ResetForTesting)
	t.Setenv("LANG", "en_GB")

	assert.Equal(t, "help for covsummary", T("cmd.help.template", Tvars{Data: &TData{"command": "covsummary"}}))
}

func TestBadLangDir(t *testing.T) {
	useFixtures(t, testData, "badDir")

	assert.Panics(t, func() {
		loadCatalog()
	})
}

func TestInvalidLocaleFiles(t *testing.T) {
	useFixtures(t, invalidLocales, "__fixtures_invalid__")

	assert.Panics(t, func() {
		loadCatalog()
	})
}

func TestCatalogKeepsDefaultFirst(t *testing.T) {
	useFixtures(t, testData, "__fixtures__")

	loaded := loadCatalog()

	supported := loaded.bundle.SupportedLanguages()
	assert.Equal(t, defaultLocale, supported[0].String())
}

func TestWrongNumberOfArguments(t *testing.T) {
	useFixtures(t, testData, "__fixtures__")

	assert.Panics(t, func() {
		T("test.simple", Tvars{}, Tvars{})
	})
}

func TestUserLocales(t *testing.T) {
	originalProvider := localeProvider
	t.Cleanup(func() { localeProvider = originalProvider })

	t.Run("LANG wins", func(t *testing.T) {
		t.Setenv("LANG", "fr_FR")
		localeProvider = failingLocaleProvider{}
		assert.Equal(t, []string{"fr_FR"}, userLocales())
	})

	t.Run("provider locales", func(t *testing.T) {
		unsetLang(t)
		localeProvider = fixedLocaleProvider{locales: []string{"de_DE", "es_ES"}}
		assert.Equal(t, []string{"de_DE", "es_ES"}, userLocales())
	})

	t.Run("provider failure falls back to English", func(t *testing.T) {
		unsetLang(t)
		localeProvider = failingLocaleProvider{}
		assert.Equal(t, []string{"en"}, userLocales())
	})
}

func TestBuildLocalizerLocales(t *testing.T) {
	actual := buildLocalizerLocales([]string{"de_DE.UTF-8", "", "de-AT", "not a locale!", "en"})
	assert.Equal(t, []string{"de-DE", "de", "de-AT", "en"}, actual)
}
