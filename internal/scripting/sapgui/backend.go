//go:build windows

package sapgui

import (
	"fmt"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"

	"github.com/saptools/sapgui-cli/internal/scripting"
)

// scriptingCtrlProgID is the well-known registration of the running GUI; its
// GetScriptingEngine property yields the GuiApplication root.
const scriptingCtrlProgID = "SAPGUI.ScriptingCtrl.1"

// Backend drives one GuiSession over COM. All calls are serialized by the
// single-threaded apartment; there is no per-call timeout, so a hung remote
// blocks the caller.
type Backend struct {
	app  *ole.IDispatch // GuiApplication
	conn *ole.IDispatch // GuiConnection
	sess *ole.IDispatch // GuiSession
}

// Attach locates the running GUI instance and resolves
// Application → Connection(index) → Session(index).
func Attach(opts scripting.AttachOptions) (*Backend, error) {
	if err := ole.CoInitialize(0); err != nil {
		oleErr, ok := err.(*ole.OleError)
		// S_FALSE: already initialized on this thread.
		if !ok || oleErr.Code() != 1 {
			return nil, fmt.Errorf("initialize COM: %w", err)
		}
	}

	unknown, err := oleutil.GetActiveObject(scriptingCtrlProgID)
	if err != nil {
		ole.CoUninitialize()
		return nil, fmt.Errorf("%w: is the GUI running with scripting enabled? (%v)", scripting.ErrNoEngine, err)
	}
	wrapper, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		ole.CoUninitialize()
		return nil, fmt.Errorf("%w: %v", scripting.ErrNoEngine, err)
	}
	defer wrapper.Release()

	engineV, err := oleutil.GetProperty(wrapper, "GetScriptingEngine")
	if err != nil {
		ole.CoUninitialize()
		return nil, fmt.Errorf("%w: %v", scripting.ErrNoEngine, err)
	}
	app := engineV.ToIDispatch()

	connV, err := oleutil.CallMethod(app, "Children", opts.Connection)
	if err != nil || connV.ToIDispatch() == nil {
		app.Release()
		ole.CoUninitialize()
		return nil, fmt.Errorf("%w: index %d", scripting.ErrNoConnection, opts.Connection)
	}
	conn := connV.ToIDispatch()

	sessV, err := oleutil.CallMethod(conn, "Children", opts.Session)
	if err != nil || sessV.ToIDispatch() == nil {
		conn.Release()
		app.Release()
		ole.CoUninitialize()
		return nil, fmt.Errorf("%w: index %d", scripting.ErrNoSession, opts.Session)
	}

	return &Backend{app: app, conn: conn, sess: sessV.ToIDispatch()}, nil
}

// Info reads the GuiSessionInfo properties.
func (b *Backend) Info() (scripting.SessionInfo, error) {
	infoV, err := oleutil.GetProperty(b.sess, "Info")
	if err != nil {
		return scripting.SessionInfo{}, fmt.Errorf("read session info: %w", err)
	}
	info := infoV.ToIDispatch()
	defer info.Release()

	return scripting.SessionInfo{
		System:       dispString(info, "SystemName"),
		Client:       dispString(info, "Client"),
		User:         dispString(info, "User"),
		Language:     dispString(info, "Language"),
		Transaction:  dispString(info, "Transaction"),
		Program:      dispString(info, "Program"),
		ScreenNumber: dispInt(info, "ScreenNumber"),
		ResponseTime: dispInt(info, "ResponseTime"),
		RoundTrips:   dispInt(info, "RoundTrips"),
	}, nil
}

func (b *Backend) StartTransaction(code string) error {
	if _, err := oleutil.CallMethod(b.sess, "StartTransaction", code); err != nil {
		return fmt.Errorf("start transaction %s: %w", code, err)
	}
	return nil
}

func (b *Backend) EndTransaction() error {
	if _, err := oleutil.CallMethod(b.sess, "EndTransaction"); err != nil {
		return fmt.Errorf("end transaction: %w", err)
	}
	return nil
}

func (b *Backend) SendCommand(command string) error {
	if _, err := oleutil.CallMethod(b.sess, "SendCommand", command); err != nil {
		return fmt.Errorf("send command %q: %w", command, err)
	}
	return nil
}

func (b *Backend) FindByID(id string) (scripting.Component, error) {
	v, err := oleutil.CallMethod(b.sess, "FindById", id)
	if err != nil || v.ToIDispatch() == nil {
		return nil, fmt.Errorf("%w: %s", scripting.ErrNotFound, id)
	}
	return &component{disp: v.ToIDispatch()}, nil
}

func (b *Backend) FindByName(name, rawType string) (scripting.Component, error) {
	v, err := oleutil.CallMethod(b.sess, "FindByName", name, rawType)
	if err != nil || v.ToIDispatch() == nil {
		return nil, fmt.Errorf("%w: name %q type %q", scripting.ErrNotFound, name, rawType)
	}
	return &component{disp: v.ToIDispatch()}, nil
}

func (b *Backend) FindAllByName(name, rawType string) ([]scripting.Component, error) {
	v, err := oleutil.CallMethod(b.sess, "FindAllByName", name, rawType)
	if err != nil || v.ToIDispatch() == nil {
		return nil, fmt.Errorf("find all by name %q: %w", name, err)
	}
	coll := v.ToIDispatch()
	defer coll.Release()
	return collectionComponents(coll)
}

func (b *Backend) LockUI() error {
	if _, err := oleutil.CallMethod(b.sess, "LockSessionUI"); err != nil {
		return fmt.Errorf("lock session UI: %w", err)
	}
	return nil
}

func (b *Backend) UnlockUI() error {
	if _, err := oleutil.CallMethod(b.sess, "UnlockSessionUI"); err != nil {
		return fmt.Errorf("unlock session UI: %w", err)
	}
	return nil
}

// HardCopy saves a PNG screenshot of the given window on the local machine.
func (b *Backend) HardCopy(windowID, path string) error {
	wnd, err := b.FindByID(windowID)
	if err != nil {
		return err
	}
	c := wnd.(*component)
	defer c.disp.Release()
	// Image type 2 = PNG per the scripting API.
	if _, err := oleutil.CallMethod(c.disp, "HardCopy", path, 2); err != nil {
		return fmt.Errorf("hardcopy %s: %w", windowID, err)
	}
	return nil
}

func (b *Backend) Close() {
	b.sess.Release()
	b.conn.Release()
	b.app.Release()
	ole.CoUninitialize()
}

// collectionComponents converts a GuiComponentCollection to a slice,
// preserving document order.
func collectionComponents(coll *ole.IDispatch) ([]scripting.Component, error) {
	count := dispInt(coll, "Count")
	components := make([]scripting.Component, 0, count)
	for i := 0; i < count; i++ {
		itemV, err := oleutil.CallMethod(coll, "Item", i)
		if err != nil || itemV.ToIDispatch() == nil {
			continue
		}
		components = append(components, &component{disp: itemV.ToIDispatch()})
	}
	return components, nil
}
