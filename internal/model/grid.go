package model

// Row maps column identifiers to cell text for one grid row.
type Row map[string]string

// GridSnapshot is a one-shot capture of tabular display data. Columns holds
// the identifiers in display order; every Row carries exactly that column
// set. A snapshot does not reflect remote changes made after the read.
type GridSnapshot struct {
	Columns []string `yaml:"columns"        json:"columns"`
	Rows    []Row    `yaml:"rows"           json:"rows"`
	Total   int      `yaml:"total"          json:"total"` // rows reported by the control, before any cap
}

// Empty is the zero harvest: workflows return it when the remote reports an
// error or no results grid exists.
func (g GridSnapshot) Empty() bool {
	return len(g.Rows) == 0
}
