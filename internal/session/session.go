// Package session is the automation core over the scripting object model:
// one attached remote session, element resolution with staleness tracking,
// typed control accessors, status and popup monitoring, grid harvesting and
// screen exploration. Everything is synchronous; the session performs no
// internal parallelism and no retries.
package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/scripting"
)

// Session drives exactly one remote session. Concurrent callers sharing a
// Session race on the same remote state; the only concurrency discipline
// offered is the scoped UI lock (WithLockedUI).
type Session struct {
	backend scripting.Backend
	log     *zap.Logger

	// gen advances on every navigating operation. Controls resolved at an
	// older generation refuse to act; see StaleAddressError.
	gen uint64
}

// Attach connects to the running remote instance and wraps the resulting
// backend. A nil logger disables logging.
func Attach(opts scripting.AttachOptions, log *zap.Logger) (*Session, error) {
	backend, err := scripting.Attach(opts)
	if err != nil {
		return nil, fmt.Errorf("attach: %w", err)
	}
	s := New(backend, log)
	if info, err := backend.Info(); err == nil {
		s.log.Info("connected",
			zap.String("system", info.System),
			zap.String("client", info.Client),
			zap.String("user", info.User),
			zap.String("transaction", info.Transaction))
	}
	return s, nil
}

// New wraps an already-attached backend. Used by tests and by callers that
// bring their own bridge.
func New(backend scripting.Backend, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{backend: backend, log: log}
}

// Close releases the attachment. The remote session stays open.
func (s *Session) Close() {
	s.backend.Close()
}

// Logger returns the session's logger, never nil.
func (s *Session) Logger() *zap.Logger { return s.log }

// Generation returns the current navigation generation.
func (s *Session) Generation() uint64 { return s.gen }

// bump invalidates every previously resolved control.
func (s *Session) bump() { s.gen++ }

// Info reads session metadata. Pure query, no navigation.
func (s *Session) Info() (scripting.SessionInfo, error) {
	return s.backend.Info()
}

// StartTransaction navigates to a transaction by code. Invalidates all
// resolved addresses.
func (s *Session) StartTransaction(code string) error {
	s.bump()
	s.log.Info("starting transaction", zap.String("tcode", code))
	return s.backend.StartTransaction(code)
}

// EndTransaction leaves the current transaction. Invalidates all resolved
// addresses.
func (s *Session) EndTransaction() error {
	s.bump()
	return s.backend.EndTransaction()
}

// SendCommand executes a raw command string, the equivalent of typing into
// the command field. Invalidates all resolved addresses.
func (s *Session) SendCommand(command string) error {
	s.bump()
	s.log.Info("send command", zap.String("command", command))
	return s.backend.SendCommand(command)
}

// SendVKey emulates a virtual key on the given window, the main window when
// windowID is empty. Invalidates all resolved addresses.
func (s *Session) SendVKey(code int, windowID string) error {
	if windowID == "" {
		windowID = model.MainWindow
	}
	wnd, err := s.backend.FindByID(windowID)
	if err != nil {
		return &NotFoundError{Query: windowID, Err: err}
	}
	s.bump()
	if err := wnd.SendVKey(code); err != nil {
		return fmt.Errorf("vkey %d on %s: %w", code, windowID, err)
	}
	return nil
}

// WithLockedUI blocks end-user interaction with the remote session for the
// duration of fn. The unlock runs on every exit path, error or not.
func (s *Session) WithLockedUI(fn func() error) error {
	if err := s.backend.LockUI(); err != nil {
		return fmt.Errorf("lock UI: %w", err)
	}
	defer s.backend.UnlockUI()
	return fn()
}

// HardCopy saves a screenshot of the given window to path, the main window
// when windowID is empty.
func (s *Session) HardCopy(windowID, path string) error {
	if windowID == "" {
		windowID = model.MainWindow
	}
	return s.backend.HardCopy(windowID, path)
}

// Visualize draws (or clears) the red debug frame around a control.
func (s *Session) Visualize(address string, on bool) error {
	c, err := s.backend.FindByID(address)
	if err != nil {
		return &NotFoundError{Query: address, Err: err}
	}
	return c.Visualize(on)
}
