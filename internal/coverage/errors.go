package coverage

import (
	"fmt"
)

// FileAccessError reports a report file that is missing or cannot be read.
type FileAccessError struct {
	Path    string
	Missing bool
	Err     error
}

func (accessError *FileAccessError) Error() string {
	if accessError.Missing {
		return fmt.Sprintf("coverage report not found: %s", accessError.Path)
	}
	return fmt.Sprintf("coverage report cannot be read: %s: %v", accessError.Path, accessError.Err)
}

func (accessError *FileAccessError) Unwrap() error {
	return accessError.Err
}

// PatternNotFoundError means the report holds fewer than two coverage
// elements of the layout the mode expects.
type PatternNotFoundError struct {
	Mode Mode
	Path string
}

func (patternError *PatternNotFoundError) Error() string {
	return fmt.Sprintf("no %s coverage figures found in %s (is this a %s report?)", patternError.Mode, patternError.Path, patternError.Mode)
}

// MalformedFragmentError carries a captured fragment that is not a number
// (Cobertura) or a "<missed> of <total>" ratio (JaCoCo).
type MalformedFragmentError struct {
	Fragment string
	Reason   string
	Err      error
}

func (fragmentError *MalformedFragmentError) Error() string {
	if fragmentError.Err != nil {
		return fmt.Sprintf("malformed coverage fragment %q: %s: %v", fragmentError.Fragment, fragmentError.Reason, fragmentError.Err)
	}
	return fmt.Sprintf("malformed coverage fragment %q: %s", fragmentError.Fragment, fragmentError.Reason)
}

func (fragmentError *MalformedFragmentError) Unwrap() error {
	return fragmentError.Err
}
