package export

import "fmt"

// Dataset is a titled table plus free-form notes printed under the title.
type Dataset struct {
	Title   string
	Notes   []string
	Headers []string
	Rows    [][]string
}

// Validate checks every row matches the header width.
func (d Dataset) Validate() error {
	if len(d.Headers) == 0 {
		return fmt.Errorf("dataset requires at least one header")
	}
	for i, row := range d.Rows {
		if len(row) != len(d.Headers) {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(d.Headers))
		}
	}
	return nil
}
