package i18n

import (
	"os"
	"testing"
)

// unsetLang removes LANG for the duration of the test; t.Setenv restores it.
func unsetLang(t *testing.T) {
	t.Helper()
	t.Setenv("LANG", "")
	if err := os.Unsetenv("LANG"); err != nil {
		t.Fatalf("unset LANG: %v", err)
	}
}
