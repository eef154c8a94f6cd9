package dataset

import (
	"fmt"
	"strings"
)

// UnavailableError indicates that none of the candidate resource locations
// exist. Terminal for the process instance; the user must supply the file and
// restart.
type UnavailableError struct {
	FileName   string
	Candidates []string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf(
		"could not find %q; place it in the same folder as the app or inside a 'data/' folder (checked: %s)",
		e.FileName, strings.Join(e.Candidates, ", "))
}

// SchemaError indicates required columns are missing after header
// normalization. Found carries the full observed column list for diagnostics.
type SchemaError struct {
	Missing []string
	Found   []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: [%s]; found columns: [%s]",
		strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
}
