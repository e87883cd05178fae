// Package scripttest provides an in-memory scripting backend for tests.
// Screens are assembled from Component values registered by address; lookups
// behave like the real object model, including document-order name matches
// and hard failures on absent addresses.
package scripttest

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/saptools/sapgui-cli/internal/scripting"
)

// Component is a scriptable fake control. Configure the exported fields to
// shape its behavior; zero values give a plain, readable, writable control.
type Component struct {
	IDVal   string
	TypeVal string
	NameVal string

	Text       string
	TextErr    error // forced failure for every text read
	SetTextErr error
	Selected   bool
	Key        string
	Change     bool
	Container  bool
	Kids       []*Component
	Message    string // status bar severity code (S/W/E/A/I)

	PressErr  error
	SelectErr error
	PressFunc func() error // optional side effect, runs before PressErr is checked

	Rows        int
	Columns     []string
	Cells       map[string]string // keyed by CellKey(row, column)
	FailColumns map[string]bool   // columns whose reads always fail

	PressCount  int
	SelectCount int
	CellReads   int
	VKeys       []int
	Visualized  bool
}

// CellKey builds the map key for one grid cell.
func CellKey(row int, column string) string {
	return fmt.Sprintf("%d|%s", row, column)
}

func (c *Component) ID() string   { return c.IDVal }
func (c *Component) Type() string { return c.TypeVal }
func (c *Component) Name() string { return c.NameVal }

func (c *Component) ContainerType() (bool, error) { return c.Container, nil }

func (c *Component) Children() ([]scripting.Component, error) {
	if !c.Container && len(c.Kids) == 0 {
		return nil, fmt.Errorf("%w: Children", scripting.ErrNotSupported)
	}
	kids := make([]scripting.Component, len(c.Kids))
	for i, k := range c.Kids {
		kids[i] = k
	}
	return kids, nil
}

func (c *Component) GetText() (string, error) {
	if c.TextErr != nil {
		return "", c.TextErr
	}
	return c.Text, nil
}

func (c *Component) SetText(value string) error {
	if c.SetTextErr != nil {
		return c.SetTextErr
	}
	c.Text = value
	return nil
}

func (c *Component) GetSelected() (bool, error) { return c.Selected, nil }

func (c *Component) SetSelected(selected bool) error {
	c.Selected = selected
	return nil
}

func (c *Component) SetKey(key string) error {
	c.Key = key
	return nil
}

func (c *Component) Press() error {
	c.PressCount++
	if c.PressFunc != nil {
		if err := c.PressFunc(); err != nil {
			return err
		}
	}
	return c.PressErr
}

func (c *Component) Select() error {
	c.SelectCount++
	return c.SelectErr
}

func (c *Component) Changeable() (bool, error) { return c.Change, nil }

func (c *Component) Visualize(on bool) error {
	c.Visualized = on
	return nil
}

func (c *Component) SendVKey(code int) error {
	c.VKeys = append(c.VKeys, code)
	return nil
}

func (c *Component) MessageType() (string, error) { return c.Message, nil }

func (c *Component) RowCount() (int, error) { return c.Rows, nil }

func (c *Component) ColumnOrder() ([]string, error) {
	if c.Columns == nil {
		return nil, fmt.Errorf("%w: ColumnOrder", scripting.ErrNotSupported)
	}
	return append([]string(nil), c.Columns...), nil
}

func (c *Component) ColumnTitle(column string) (string, error) {
	return column, nil
}

func (c *Component) CellValue(row int, column string) (string, error) {
	c.CellReads++
	if c.FailColumns[column] {
		return "", fmt.Errorf("%w: cell [%d,%s]", scripting.ErrNotSupported, row, column)
	}
	return c.Cells[CellKey(row, column)], nil
}

func (c *Component) ClickCell(row int, column string) error       { return nil }
func (c *Component) DoubleClickCell(row int, column string) error { return nil }
func (c *Component) SelectRows(spec string) error                 { return nil }
func (c *Component) SetCurrentCell(row int, column string) error  { return nil }

// Fake is an in-memory Backend. Register components with Add; navigation
// calls are recorded so tests can assert on them.
type Fake struct {
	InfoValue scripting.SessionInfo

	comps map[string]*Component
	order []*Component // document order for name lookups

	Transactions []string
	Commands     []string
	EndCount     int
	LockCount    int
	UnlockCount  int
	Closed       bool

	StartErr   error
	LockErr    error
	HardCopies map[string]string
}

// New creates an empty fake backend.
func New() *Fake {
	return &Fake{
		comps:      make(map[string]*Component),
		HardCopies: make(map[string]string),
	}
}

// Add registers a component and, recursively, its children. Returns the fake
// for chaining.
func (f *Fake) Add(comps ...*Component) *Fake {
	for _, c := range comps {
		f.register(c)
	}
	return f
}

func (f *Fake) register(c *Component) {
	if c.IDVal != "" {
		f.comps[c.IDVal] = c
	}
	f.order = append(f.order, c)
	for _, kid := range c.Kids {
		f.register(kid)
	}
}

// Remove deletes a component by address, e.g. to model a dismissed popup.
func (f *Fake) Remove(id string) {
	delete(f.comps, id)
	for i, c := range f.order {
		if c.IDVal == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

// Get returns a registered component for assertions, nil when absent.
func (f *Fake) Get(id string) *Component {
	return f.comps[id]
}

func (f *Fake) Info() (scripting.SessionInfo, error) {
	return f.InfoValue, nil
}

func (f *Fake) StartTransaction(code string) error {
	if f.StartErr != nil {
		return f.StartErr
	}
	f.Transactions = append(f.Transactions, code)
	return nil
}

func (f *Fake) EndTransaction() error {
	f.EndCount++
	return nil
}

func (f *Fake) SendCommand(command string) error {
	f.Commands = append(f.Commands, command)
	return nil
}

func (f *Fake) FindByID(id string) (scripting.Component, error) {
	c, ok := f.comps[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", scripting.ErrNotFound, id)
	}
	return c, nil
}

func (f *Fake) FindByName(name, rawType string) (scripting.Component, error) {
	for _, c := range f.order {
		if c.NameVal == name && (rawType == "" || c.TypeVal == rawType) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: name %q type %q", scripting.ErrNotFound, name, rawType)
}

func (f *Fake) FindAllByName(name, rawType string) ([]scripting.Component, error) {
	var matches []scripting.Component
	for _, c := range f.order {
		if c.NameVal == name && (rawType == "" || c.TypeVal == rawType) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

func (f *Fake) LockUI() error {
	if f.LockErr != nil {
		return f.LockErr
	}
	f.LockCount++
	return nil
}

func (f *Fake) UnlockUI() error {
	f.UnlockCount++
	return nil
}

// HardCopy records the request and writes a minimal PNG so callers that
// re-read the file succeed.
func (f *Fake) HardCopy(windowID, path string) error {
	if _, err := f.FindByID(windowID); err != nil {
		return err
	}
	f.HardCopies[windowID] = path
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return png.Encode(out, image.NewRGBA(image.Rect(0, 0, 8, 8)))
}

func (f *Fake) Close() {
	f.Closed = true
}
