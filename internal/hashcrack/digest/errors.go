package digest

import (
	"fmt"
	"strings"
)

type UnsupportedAlgorithmError struct {
	Name string
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported algorithm %q (supported: %s)", e.Name, strings.Join(Supported(), ", "))
}

// InvalidHashFormatError covers both a wrong length and non-hex characters.
type InvalidHashFormatError struct {
	Expected int
	Actual   int
}

func (e *InvalidHashFormatError) Error() string {
	if e.Expected == e.Actual {
		return fmt.Sprintf("invalid hash format: expected %d hex characters", e.Expected)
	}
	return fmt.Sprintf("invalid hash format: expected %d characters, got %d", e.Expected, e.Actual)
}
