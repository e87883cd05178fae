// Package workflow composes session primitives into complete
// parametrize-execute-harvest runs against report transactions. Every run
// follows the same shape: navigate, fill parameters, execute, dismiss
// popups, check the status bar, harvest the results grid. Remote-reported
// failures are terminal for the run but not errors: the workflow returns an
// empty snapshot and logs the reported text, because "no data for these
// parameters" and "bad parameters" both arrive the same way.
package workflow

import (
	"fmt"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/session"
)

// Addresses on the generic table browser's parameter screen.
const (
	tableField    = "wnd[0]/usr/ctxtGD-TAB"
	fieldsTable   = "wnd[0]/usr/tblSAPLSE16HFIELDS_TABLE"
	maxLinesField = "wnd[0]/usr/txtGD-MAX_LINES"

	fieldNameColumn = "GS_FIELDS-FIELDNAME"
	groupColumn     = "GS_FIELDS-AGGR"
	sumColumn       = "GS_FIELDS-SUM"

	// Column indexes of the group and sum checkboxes in the fields table.
	groupColIndex = 4
	sumColIndex   = 5

	// Aggregated results carry the occurrence count in this grid column.
	countColumn = "COUNT"
)

// FieldSpec configures one field row of a table query: which field, whether
// to group or sum over it, and an optional selection value.
type FieldSpec struct {
	Name  string `yaml:"name"            json:"name"`
	Group bool   `yaml:"group,omitempty" json:"group,omitempty"`
	Sum   bool   `yaml:"sum,omitempty"   json:"sum,omitempty"`
	Value string `yaml:"value,omitempty" json:"value,omitempty"`
}

// TableQueryOptions parametrizes a generic table query.
type TableQueryOptions struct {
	Table   string
	Fields  []FieldSpec
	MaxRows int    // 0 = all
	Dismiss string // popup dismiss control, default when empty
}

// TableQuery runs the generic table browser (SE16H): pick a table, fill the
// field list with grouping and selection values, execute, and harvest the
// results grid. The returned snapshot is empty when the remote reports an
// error or produces no grid.
func TableQuery(s *session.Session, opts TableQueryOptions) (model.GridSnapshot, error) {
	log := s.Logger()

	if err := s.StartTransaction("SE16H"); err != nil {
		return model.GridSnapshot{}, fmt.Errorf("table query %s: %w", opts.Table, err)
	}
	if err := s.SetFieldByID(tableField, opts.Table); err != nil {
		return model.GridSnapshot{}, fmt.Errorf("table query %s: %w", opts.Table, err)
	}
	if err := s.SendVKey(session.VKeyEnter, ""); err != nil {
		return model.GridSnapshot{}, err
	}

	// Fill the fields table, one row per spec.
	for row, f := range opts.Fields {
		id := model.CellAddress(fieldsTable, "ctxt", fieldNameColumn, 0, row)
		if err := s.SetFieldByID(id, f.Name); err != nil {
			return model.GridSnapshot{}, fmt.Errorf("field row %d (%s): %w", row, f.Name, err)
		}
		if f.Group {
			if err := s.SetTableCheckbox(fieldsTable, groupColumn, groupColIndex, row, true); err != nil {
				return model.GridSnapshot{}, fmt.Errorf("group checkbox for %s: %w", f.Name, err)
			}
		}
		if f.Sum {
			if err := s.SetTableCheckbox(fieldsTable, sumColumn, sumColIndex, row, true); err != nil {
				return model.GridSnapshot{}, fmt.Errorf("sum checkbox for %s: %w", f.Name, err)
			}
		}
	}
	if err := s.SendVKey(session.VKeyEnter, ""); err != nil {
		return model.GridSnapshot{}, err
	}

	// Selection values land on the redrawn screen. A field that cannot take
	// its value narrows nothing; the query still runs, just wider.
	for _, f := range opts.Fields {
		if f.Value == "" {
			continue
		}
		if err := s.SetField(f.Name, f.Value); err != nil {
			log.Warn("selection value not applied", zap.String("field", f.Name), zap.Error(err))
		}
	}
	if opts.MaxRows > 0 {
		if err := s.SetFieldByID(maxLinesField, strconv.Itoa(opts.MaxRows)); err != nil {
			log.Warn("row limit not applied", zap.Int("max_rows", opts.MaxRows), zap.Error(err))
		}
	}

	if err := s.SendVKey(session.VKeyF8, ""); err != nil {
		return model.GridSnapshot{}, err
	}
	return harvest(s, opts.Dismiss, queryColumns(opts.Fields), opts.MaxRows, "SE16H")
}

// queryColumns derives the harvest column set from the field specs, with
// the count column appended when any field groups.
func queryColumns(fields []FieldSpec) []string {
	columns := make([]string, 0, len(fields)+1)
	grouped := false
	for _, f := range fields {
		columns = append(columns, f.Name)
		grouped = grouped || f.Group
	}
	if grouped {
		columns = append(columns, countColumn)
	}
	return columns
}

// ExecuteWithEnter selects Enter as the execute key. Enter's own key code
// is zero, which is indistinguishable from an unset ExecuteVKey.
const ExecuteWithEnter = -1

// ReportOptions parametrizes a generic report transaction run.
type ReportOptions struct {
	Transaction string
	Selection   map[string]string // selection screen fields by semantic name
	ExecuteVKey int               // 0 = F8, ExecuteWithEnter = Enter
	Columns     []string          // nil = all grid columns
	MaxRows     int
	Dismiss     string
}

// Report opens a report transaction, fills its selection screen, executes
// and harvests the results grid. Selection fields are applied in sorted name
// order so runs are deterministic; a field that cannot be set is logged and
// skipped, matching TableQuery's tolerance.
func Report(s *session.Session, opts ReportOptions) (model.GridSnapshot, error) {
	log := s.Logger()

	if err := s.StartTransaction(opts.Transaction); err != nil {
		return model.GridSnapshot{}, fmt.Errorf("report %s: %w", opts.Transaction, err)
	}

	names := make([]string, 0, len(opts.Selection))
	for name := range opts.Selection {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := s.SetField(name, opts.Selection[name]); err != nil {
			log.Warn("selection field not applied", zap.String("field", name), zap.Error(err))
		}
	}

	execute := opts.ExecuteVKey
	switch execute {
	case 0:
		execute = session.VKeyF8
	case ExecuteWithEnter:
		execute = session.VKeyEnter
	}
	if err := s.SendVKey(execute, ""); err != nil {
		return model.GridSnapshot{}, err
	}
	return harvest(s, opts.Dismiss, opts.Columns, opts.MaxRows, opts.Transaction)
}

// harvest is the shared tail of every run: dismiss a blocking popup, stop on
// a remote-reported failure, locate the results grid and read it out.
func harvest(s *session.Session, dismiss string, columns []string, maxRows int, label string) (model.GridSnapshot, error) {
	log := s.Logger()

	if _, err := s.HandlePopup(dismiss); err != nil {
		return model.GridSnapshot{}, fmt.Errorf("%s: %w", label, err)
	}

	failure, err := s.StatusError()
	if err != nil {
		return model.GridSnapshot{}, fmt.Errorf("%s: %w", label, err)
	}
	if failure != "" {
		log.Warn("remote reported failure", zap.String("transaction", label), zap.String("status", failure))
		return model.GridSnapshot{}, nil
	}

	grid := s.FindGrid("")
	if grid == nil {
		log.Warn("no results grid", zap.String("transaction", label))
		return model.GridSnapshot{}, nil
	}
	return grid.ReadAll(columns, maxRows)
}
