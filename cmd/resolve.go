package cmd

import (
	"strings"

	"github.com/shepherd-cli/shepherd/internal/errors"
)

// Records are listed with abbreviated identifiers, so commands accept any
// unique prefix of a full id.

func resolveSermonID(arg string) (string, error) {
	for _, s := range ctx.App.Sermons() {
		if strings.HasPrefix(s.ID, arg) {
			return s.ID, nil
		}
	}
	return "", errors.ErrSermonNotFound
}

func resolveVisitID(arg string) (string, error) {
	for _, v := range ctx.App.Visits() {
		if strings.HasPrefix(v.ID, arg) {
			return v.ID, nil
		}
	}
	return "", errors.ErrVisitNotFound
}

func resolveEventID(arg string) (string, error) {
	for _, e := range ctx.App.Events() {
		if strings.HasPrefix(e.ID, arg) {
			return e.ID, nil
		}
	}
	return "", errors.ErrEventNotFound
}
