//go:build windows

package sapgui

import (
	"fmt"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"

	"github.com/saptools/sapgui-cli/internal/scripting"
)

// component wraps one control's IDispatch. Property and method names follow
// the scripting API; a dispatch failure on a property the control does not
// expose surfaces as ErrNotSupported.
type component struct {
	disp *ole.IDispatch
}

func (c *component) ID() string   { return dispString(c.disp, "Id") }
func (c *component) Type() string { return dispString(c.disp, "Type") }
func (c *component) Name() string { return dispString(c.disp, "Name") }

func (c *component) ContainerType() (bool, error) {
	return c.boolProp("ContainerType")
}

func (c *component) Children() ([]scripting.Component, error) {
	v, err := oleutil.GetProperty(c.disp, "Children")
	if err != nil || v.ToIDispatch() == nil {
		return nil, fmt.Errorf("%w: Children", scripting.ErrNotSupported)
	}
	coll := v.ToIDispatch()
	defer coll.Release()
	return collectionComponents(coll)
}

func (c *component) GetText() (string, error) {
	v, err := oleutil.GetProperty(c.disp, "Text")
	if err != nil {
		return "", fmt.Errorf("%w: Text", scripting.ErrNotSupported)
	}
	defer v.Clear()
	return v.ToString(), nil
}

func (c *component) SetText(value string) error {
	if _, err := oleutil.PutProperty(c.disp, "Text", value); err != nil {
		return fmt.Errorf("set text: %w", err)
	}
	return nil
}

func (c *component) GetSelected() (bool, error) {
	return c.boolProp("Selected")
}

func (c *component) SetSelected(selected bool) error {
	if _, err := oleutil.PutProperty(c.disp, "Selected", selected); err != nil {
		return fmt.Errorf("set selected: %w", err)
	}
	return nil
}

func (c *component) SetKey(key string) error {
	if _, err := oleutil.PutProperty(c.disp, "Key", key); err != nil {
		return fmt.Errorf("set key: %w", err)
	}
	return nil
}

func (c *component) Press() error {
	if _, err := oleutil.CallMethod(c.disp, "Press"); err != nil {
		return fmt.Errorf("press: %w", err)
	}
	return nil
}

func (c *component) Select() error {
	if _, err := oleutil.CallMethod(c.disp, "Select"); err != nil {
		return fmt.Errorf("select: %w", err)
	}
	return nil
}

func (c *component) Changeable() (bool, error) {
	return c.boolProp("Changeable")
}

func (c *component) Visualize(on bool) error {
	if _, err := oleutil.CallMethod(c.disp, "Visualize", on); err != nil {
		return fmt.Errorf("visualize: %w", err)
	}
	return nil
}

func (c *component) SendVKey(code int) error {
	if _, err := oleutil.CallMethod(c.disp, "SendVKey", code); err != nil {
		return fmt.Errorf("send vkey %d: %w", code, err)
	}
	return nil
}

func (c *component) MessageType() (string, error) {
	v, err := oleutil.GetProperty(c.disp, "MessageType")
	if err != nil {
		return "", fmt.Errorf("%w: MessageType", scripting.ErrNotSupported)
	}
	defer v.Clear()
	return v.ToString(), nil
}

func (c *component) RowCount() (int, error) {
	v, err := oleutil.GetProperty(c.disp, "RowCount")
	if err != nil {
		return 0, fmt.Errorf("%w: RowCount", scripting.ErrNotSupported)
	}
	defer v.Clear()
	return int(v.Val), nil
}

func (c *component) ColumnOrder() ([]string, error) {
	v, err := oleutil.GetProperty(c.disp, "ColumnOrder")
	if err != nil || v.ToIDispatch() == nil {
		return nil, fmt.Errorf("%w: ColumnOrder", scripting.ErrNotSupported)
	}
	coll := v.ToIDispatch()
	defer coll.Release()

	count := dispInt(coll, "Count")
	columns := make([]string, 0, count)
	for i := 0; i < count; i++ {
		itemV, err := oleutil.CallMethod(coll, "Item", i)
		if err != nil {
			continue
		}
		columns = append(columns, itemV.ToString())
		itemV.Clear()
	}
	return columns, nil
}

func (c *component) ColumnTitle(column string) (string, error) {
	v, err := oleutil.CallMethod(c.disp, "GetDisplayedColumnTitle", column)
	if err != nil {
		return "", fmt.Errorf("%w: GetDisplayedColumnTitle", scripting.ErrNotSupported)
	}
	defer v.Clear()
	return v.ToString(), nil
}

func (c *component) CellValue(row int, column string) (string, error) {
	v, err := oleutil.CallMethod(c.disp, "GetCellValue", row, column)
	if err != nil {
		return "", fmt.Errorf("cell [%d,%s]: %w", row, column, err)
	}
	defer v.Clear()
	return v.ToString(), nil
}

func (c *component) ClickCell(row int, column string) error {
	if _, err := oleutil.CallMethod(c.disp, "Click", row, column); err != nil {
		return fmt.Errorf("click cell [%d,%s]: %w", row, column, err)
	}
	return nil
}

func (c *component) DoubleClickCell(row int, column string) error {
	if _, err := oleutil.CallMethod(c.disp, "DoubleClick", row, column); err != nil {
		return fmt.Errorf("double-click cell [%d,%s]: %w", row, column, err)
	}
	return nil
}

func (c *component) SelectRows(spec string) error {
	if _, err := oleutil.PutProperty(c.disp, "SelectedRows", spec); err != nil {
		return fmt.Errorf("select rows %q: %w", spec, err)
	}
	return nil
}

func (c *component) SetCurrentCell(row int, column string) error {
	if _, err := oleutil.PutProperty(c.disp, "CurrentCellRow", row); err != nil {
		return fmt.Errorf("set current cell row: %w", err)
	}
	if _, err := oleutil.PutProperty(c.disp, "CurrentCellColumn", column); err != nil {
		return fmt.Errorf("set current cell column: %w", err)
	}
	return nil
}

func (c *component) boolProp(name string) (bool, error) {
	v, err := oleutil.GetProperty(c.disp, name)
	if err != nil {
		return false, fmt.Errorf("%w: %s", scripting.ErrNotSupported, name)
	}
	defer v.Clear()
	b, ok := v.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s is not boolean", scripting.ErrNotSupported, name)
	}
	return b, nil
}

// dispString reads a string property, degrading to "" when unavailable.
func dispString(disp *ole.IDispatch, name string) string {
	v, err := oleutil.GetProperty(disp, name)
	if err != nil {
		return ""
	}
	defer v.Clear()
	return v.ToString()
}

// dispInt reads an integer property, degrading to 0 when unavailable.
func dispInt(disp *ole.IDispatch, name string) int {
	v, err := oleutil.GetProperty(disp, name)
	if err != nil {
		return 0
	}
	defer v.Clear()
	return int(v.Val)
}
