package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/saptools/sapgui-cli/internal/model"
)

// DefaultPopupDismiss is the first toolbar button of the popup window,
// conventionally the confirm/continue control.
const DefaultPopupDismiss = "wnd[1]/tbar[0]/btn[0]"

// ReadStatus reads the status bar message and decodes its severity.
func (s *Session) ReadStatus() (model.StatusMessage, error) {
	sbar, err := s.backend.FindByID(model.StatusBar)
	if err != nil {
		return model.StatusMessage{}, &NotFoundError{Query: model.StatusBar, Err: err}
	}
	text, err := sbar.GetText()
	if err != nil {
		return model.StatusMessage{}, fmt.Errorf("read status text: %w", err)
	}
	code, err := sbar.MessageType()
	if err != nil {
		return model.StatusMessage{}, fmt.Errorf("read status type: %w", err)
	}
	return model.StatusMessage{Text: text, Severity: model.ParseSeverity(code)}, nil
}

// StatusError is the single choke point workflows use to decide whether to
// proceed: it returns the reported failure string when the status bar shows
// an error or abort, and "" otherwise. The returned error only signals that
// the status bar itself could not be read.
func (s *Session) StatusError() (string, error) {
	msg, err := s.ReadStatus()
	if err != nil {
		return "", err
	}
	if !msg.Failed() {
		return "", nil
	}
	if msg.Text == "" {
		return fmt.Sprintf("remote reported %s status", msg.Severity), nil
	}
	return msg.Text, nil
}

// HandlePopup checks for a modal popup window and, when present, presses
// the dismiss control (DefaultPopupDismiss when dismissID is empty).
// Returns false without error when no popup exists. A failure to interact
// with a confirmed-present popup is an error: the popup still blocks the
// screen and the caller must know.
func (s *Session) HandlePopup(dismissID string) (bool, error) {
	if dismissID == "" {
		dismissID = DefaultPopupDismiss
	}
	if _, err := s.backend.FindByID(model.PopupWindow); err != nil {
		// Existence-check failure just means no popup.
		return false, nil
	}
	btn, err := s.backend.FindByID(dismissID)
	if err != nil {
		return true, fmt.Errorf("popup present but dismiss control missing: %w", &NotFoundError{Query: dismissID, Err: err})
	}
	if err := btn.Press(); err != nil {
		return true, fmt.Errorf("dismiss popup via %s: %w", dismissID, err)
	}
	s.bump()
	s.log.Info("dismissed popup", zap.String("button", dismissID))
	return true, nil
}
