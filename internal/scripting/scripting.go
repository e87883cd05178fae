// Package scripting defines the boundary to the remote application's
// scripting object model: a fixed hierarchy Application → Connection[index]
// → Session[index], each level an indexable child collection, with controls
// addressed by hierarchical path strings. Backends attach to a running
// instance; they never launch or own the remote application.
package scripting

// Backend is one attached remote session. All calls are synchronous
// request/response against shared mutable remote state; the backend performs
// no internal locking beyond what the remote session itself provides.
type Backend interface {
	// Info reads session metadata. Pure query, no side effects.
	Info() (SessionInfo, error)

	// StartTransaction navigates to a transaction by code.
	StartTransaction(code string) error
	// EndTransaction leaves the current transaction, returning to the menu.
	EndTransaction() error
	// SendCommand executes a raw command string, the direct equivalent of
	// typing into the command field ("/nSE16", "/nex", "/o").
	SendCommand(command string) error

	// FindByID resolves a control by its full address, erroring on a miss.
	FindByID(id string) (Component, error)
	// FindByName returns the first control matching a semantic name and raw
	// scripting type, in document order of the underlying tree.
	FindByName(name, rawType string) (Component, error)
	// FindAllByName returns every match for name and type, in document order.
	FindAllByName(name, rawType string) ([]Component, error)

	// LockUI blocks end-user interaction with the remote session.
	LockUI() error
	// UnlockUI releases a previous LockUI.
	UnlockUI() error

	// HardCopy asks the given window to save a screenshot to path.
	HardCopy(windowID, path string) error

	// Close releases the attachment. The remote session stays open; its
	// lifetime belongs to the remote application.
	Close()
}

// Component is one live control handle. The interface mirrors the scripting
// surface: plain get/set properties and zero-argument actions. Not every
// control supports every call; unsupported calls return an error, and the
// session layer gates them behind capability kinds so callers never reach
// them on an incompatible control.
type Component interface {
	ID() string
	Type() string
	Name() string

	ContainerType() (bool, error)
	Children() ([]Component, error)

	GetText() (string, error)
	SetText(value string) error
	GetSelected() (bool, error)
	SetSelected(selected bool) error
	SetKey(key string) error
	Press() error
	Select() error
	Changeable() (bool, error)
	Visualize(on bool) error

	// SendVKey emulates a virtual key on a window component.
	SendVKey(code int) error
	// MessageType reads the one-character severity code of a status bar.
	MessageType() (string, error)

	// Grid surface (row/column tabular controls with a uniform cell API).
	RowCount() (int, error)
	ColumnOrder() ([]string, error)
	ColumnTitle(column string) (string, error)
	CellValue(row int, column string) (string, error)
	ClickCell(row int, column string) error
	DoubleClickCell(row int, column string) error
	SelectRows(spec string) error
	SetCurrentCell(row int, column string) error
}

// SessionInfo is the session metadata readout.
type SessionInfo struct {
	System       string `yaml:"system"        json:"system"`
	Client       string `yaml:"client"        json:"client"`
	User         string `yaml:"user"          json:"user"`
	Language     string `yaml:"language"      json:"language"`
	Transaction  string `yaml:"transaction"   json:"transaction"`
	Program      string `yaml:"program"       json:"program"`
	ScreenNumber int    `yaml:"screen"        json:"screen"`
	ResponseTime int    `yaml:"response_time" json:"response_time"` // milliseconds
	RoundTrips   int    `yaml:"round_trips"   json:"round_trips"`
}
