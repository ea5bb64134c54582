package covsummary

import (
	"errors"

	"github.com/zackehh/covsummary/internal/coverage"
	"github.com/zackehh/covsummary/internal/i18n"
)

func isExtractionError(err error) bool {
	var accessErr *coverage.FileAccessError
	var patternErr *coverage.PatternNotFoundError
	var fragmentErr *coverage.MalformedFragmentError

	return errors.As(err, &accessErr) || errors.As(err, &patternErr) || errors.As(err, &fragmentErr)
}

// describeError turns an extraction failure into the localized diagnostic
// printed on stderr.
func describeError(mode coverage.Mode, err error) string {
	var accessErr *coverage.FileAccessError
	if errors.As(err, &accessErr) {
		if accessErr.Missing {
			return i18n.T("cmd.root.error.file_missing", i18n.Tvars{
				Data: &i18n.TData{"path": accessErr.Path, "mode": mode.String()},
			})
		}
		reason := ""
		if accessErr.Err != nil {
			reason = accessErr.Err.Error()
		}
		return i18n.T("cmd.root.error.file_access", i18n.Tvars{
			Data: &i18n.TData{"path": accessErr.Path, "reason": reason},
		})
	}

	var patternErr *coverage.PatternNotFoundError
	if errors.As(err, &patternErr) {
		return i18n.T("cmd.root.error.pattern_not_found", i18n.Tvars{
			Data: &i18n.TData{"path": patternErr.Path, "mode": patternErr.Mode.String()},
		})
	}

	var fragmentErr *coverage.MalformedFragmentError
	if errors.As(err, &fragmentErr) {
		return i18n.T("cmd.root.error.malformed_fragment", i18n.Tvars{
			Data: &i18n.TData{"fragment": fragmentErr.Fragment, "reason": fragmentErr.Reason},
		})
	}

	return err.Error()
}
