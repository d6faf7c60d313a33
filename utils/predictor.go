// utils/predictor.go
package utils

import (
	"errors"
	"strings"
)

// ErrMissingName is returned when either name is empty.
var ErrMissingName = errors.New("first name and last name are required")

// PredictVariations generates the six most common address patterns for a
// person at a domain, in a fixed order starting with first.last@domain.
// Names are lower-cased first; the domain is used verbatim. Duplicates are
// possible (e.g. single-letter names) and are not removed.
func PredictVariations(domain, firstName, lastName string) ([]string, error) {
	if firstName == "" || lastName == "" {
		return nil, ErrMissingName
	}

	first := strings.ToLower(firstName)
	last := strings.ToLower(lastName)
	// Initials are the first character, which may be multibyte.
	firstInitial := string([]rune(first)[0])
	lastInitial := string([]rune(last)[0])

	return []string{
		first + "." + last + "@" + domain,
		first + last + "@" + domain,
		firstInitial + last + "@" + domain,
		first + lastInitial + "@" + domain,
		last + "." + first + "@" + domain,
		last + first + "@" + domain,
	}, nil
}
