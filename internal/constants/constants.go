// Package constants defines shared constant values.
package constants

// AppName is the project identifier used in logs and span metadata.
const AppName = "covsummary"

// CommandName is the primary CLI command name.
const CommandName = "covsummary"
