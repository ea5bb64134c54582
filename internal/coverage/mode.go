// Package coverage extracts line and branch coverage figures from the HTML
// summary pages written by the Cobertura and JaCoCo Maven plugins.
package coverage

// Mode selects which report layout is read and how its figures are interpreted.
type Mode int

const (
	Jacoco Mode = iota
	Cobertura
)

const coberturaArg = "cobertura"

// ParseMode maps a command-line argument onto a Mode. Only the exact string
// "cobertura" selects Cobertura; every other value selects Jacoco.
func ParseMode(arg string) Mode {
	if arg == coberturaArg {
		return Cobertura
	}
	return Jacoco
}

// ModeFromArgs reads the mode from the first positional argument. Extra
// arguments are ignored.
func ModeFromArgs(args []string) Mode {
	if len(args) == 0 {
		return Jacoco
	}
	return ParseMode(args[0])
}

func (mode Mode) String() string {
	if mode == Cobertura {
		return coberturaArg
	}
	return "jacoco"
}
