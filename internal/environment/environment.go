// Package environment exposes build-time values.
package environment

// Replaced at release time with -ldflags "-X".
var (
	appVersion = "REPL_VERSION"
	helpURL    = "REPL_HELP_URL"
)

func AppVersion() string {
	return appVersion
}

func HelpURL() string {
	return helpURL
}
