package pipeline

// Table is the pipeline's outward contract with the display layer: named
// columns plus rows, with optional axis hints for chart views. Undefined
// metric values appear as nil cells and serialize to null.
type Table struct {
	Title   string   `json:"title"`
	Headers []string `json:"headers"`
	Rows    [][]any  `json:"rows"`
	X       string   `json:"x,omitempty"`
	Y       string   `json:"y,omitempty"`
}

func NewTable(title string, headers ...string) *Table {
	return &Table{Title: title, Headers: headers, Rows: [][]any{}}
}

func (t *Table) WithAxes(x, y string) *Table {
	t.X = x
	t.Y = y
	return t
}

func (t *Table) Append(cells ...any) {
	t.Rows = append(t.Rows, cells)
}

// Cell converts an optional metric to a table cell, nil for undefined.
func Cell(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
