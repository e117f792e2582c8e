package runtime

import (
	stderrors "errors"

	"github.com/shepherd-cli/shepherd/internal/errors"
)

// GetSuggestion returns the recovery hint carried by err, if any.
func GetSuggestion(err error) string {
	var userErr *errors.UserError
	if stderrors.As(err, &userErr) {
		return userErr.Suggestion
	}
	return ""
}

// FormatError formats an error with optional suggestion.
func FormatError(err error) string {
	msg := err.Error()
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}
