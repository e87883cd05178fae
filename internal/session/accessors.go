package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/saptools/sapgui-cli/internal/model"
)

// check gates an operation on staleness and capability. Every accessor goes
// through it before touching the remote control.
func (c *Control) check(op string, kinds ...model.Kind) error {
	if c.gen != c.sess.gen {
		return &StaleAddressError{Address: c.Address, Resolved: c.gen, Current: c.sess.gen}
	}
	for _, k := range kinds {
		if c.Kind == k {
			return nil
		}
	}
	return &TypeMismatchError{Address: c.Address, Kind: c.Kind, Op: op}
}

// Text reads the control's text. Supported on text fields, labels and combo
// boxes.
func (c *Control) Text() (string, error) {
	if err := c.check("get text", model.KindText, model.KindLabel, model.KindCombo); err != nil {
		return "", err
	}
	return c.raw.GetText()
}

// SetText writes a text field's value.
func (c *Control) SetText(value string) error {
	if err := c.check("set text", model.KindText); err != nil {
		return err
	}
	return c.raw.SetText(value)
}

// Selected reads a checkbox or radio button state.
func (c *Control) Selected() (bool, error) {
	if err := c.check("get selected", model.KindCheckbox, model.KindRadio); err != nil {
		return false, err
	}
	return c.raw.GetSelected()
}

// SetSelected sets a checkbox state.
func (c *Control) SetSelected(selected bool) error {
	if err := c.check("set selected", model.KindCheckbox); err != nil {
		return err
	}
	return c.raw.SetSelected(selected)
}

// Select activates a radio button or tab. Selecting a tab redraws the
// screen and invalidates resolved addresses.
func (c *Control) Select() error {
	if err := c.check("select", model.KindRadio, model.KindTab); err != nil {
		return err
	}
	if c.Kind == model.KindTab {
		c.sess.bump()
	}
	return c.raw.Select()
}

// Press presses a button. The resulting roundtrip redraws the screen, so
// all resolved addresses are invalidated.
func (c *Control) Press() error {
	if err := c.check("press", model.KindButton); err != nil {
		return err
	}
	c.sess.bump()
	return c.raw.Press()
}

// SelectKey picks a combo box entry by key.
func (c *Control) SelectKey(key string) error {
	if err := c.check("select key", model.KindCombo); err != nil {
		return err
	}
	return c.raw.SetKey(key)
}

// IsChangeable reports whether the control accepts input. Available on any
// kind; unsupported controls report false.
func (c *Control) IsChangeable() (bool, error) {
	if c.gen != c.sess.gen {
		return false, &StaleAddressError{Address: c.Address, Resolved: c.gen, Current: c.sess.gen}
	}
	changeable, err := c.raw.Changeable()
	if err != nil {
		return false, nil
	}
	return changeable, nil
}

// SetField writes a field located by semantic name, probing the ordered
// prefix list (ctxt, txt, cmb) and moving on when a probe cannot resolve or
// set. Only when every probe is exhausted does it fail, with
// ErrNoCompatibleControl.
func (s *Session) SetField(name, value string) error {
	for _, prefix := range model.SetPrefixOrder {
		c := s.LookupByName(name, prefix)
		if c == nil {
			continue
		}
		var err error
		if c.Kind == model.KindCombo {
			err = c.SelectKey(value)
		} else {
			err = c.SetText(value)
		}
		if err == nil {
			s.log.Debug("set field", zap.String("name", name), zap.String("value", value), zap.String("prefix", prefix))
			return nil
		}
	}
	return fmt.Errorf("field %q: %w", name, ErrNoCompatibleControl)
}

// GetField reads a field located by semantic name, probing txt, ctxt, lbl.
func (s *Session) GetField(name string) (string, error) {
	for _, prefix := range model.GetPrefixOrder {
		c := s.LookupByName(name, prefix)
		if c == nil {
			continue
		}
		if v, err := c.Text(); err == nil {
			return v, nil
		}
	}
	return "", fmt.Errorf("field %q: %w", name, ErrNoCompatibleControl)
}

// SetFieldByID writes a text field by its full address. Strict.
func (s *Session) SetFieldByID(id, value string) error {
	c, err := s.FindByID(id)
	if err != nil {
		return err
	}
	return c.SetText(value)
}

// GetFieldByID reads a field's text by its full address. Strict.
func (s *Session) GetFieldByID(id string) (string, error) {
	c, err := s.FindByID(id)
	if err != nil {
		return "", err
	}
	return c.Text()
}

// SetCheckbox sets a checkbox located by semantic name.
func (s *Session) SetCheckbox(name string, checked bool) error {
	c, err := s.FindByName(name, "chk")
	if err != nil {
		return err
	}
	return c.SetSelected(checked)
}

// SetCheckboxByID sets a checkbox by its full address.
func (s *Session) SetCheckboxByID(id string, checked bool) error {
	c, err := s.FindByID(id)
	if err != nil {
		return err
	}
	return c.SetSelected(checked)
}

// SelectRadio selects a radio button located by semantic name.
func (s *Session) SelectRadio(name string) error {
	c, err := s.FindByName(name, "rad")
	if err != nil {
		return err
	}
	return c.Select()
}

// PressButton presses a button located by semantic name.
func (s *Session) PressButton(name string) error {
	c, err := s.FindByName(name, "btn")
	if err != nil {
		return err
	}
	return c.Press()
}

// PressButtonByID presses a button by its full address.
func (s *Session) PressButtonByID(id string) error {
	c, err := s.FindByID(id)
	if err != nil {
		return err
	}
	return c.Press()
}

// SelectTab selects a tab by its full address.
func (s *Session) SelectTab(id string) error {
	c, err := s.FindByID(id)
	if err != nil {
		return err
	}
	return c.Select()
}

// SelectComboKey picks a combo box entry by key, locating the box by name.
func (s *Session) SelectComboKey(name, key string) error {
	c, err := s.FindByName(name, "cmb")
	if err != nil {
		return err
	}
	return c.SelectKey(key)
}
