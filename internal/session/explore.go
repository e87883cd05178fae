package session

import (
	"fmt"
	"strings"

	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/scripting"
)

// Explore inventories a container's controls: its direct children plus one
// level into any child that is itself a container. One level is enough for
// the common screen shapes (subscreens, tab strips) without the cost of a
// full recursive walk over a large tree. An empty containerID scans the
// main window user area.
//
// Property reads are tolerant: a control that refuses to report text or
// changeability still appears in the inventory with zero values.
func (s *Session) Explore(containerID string) ([]model.ElementInfo, error) {
	if containerID == "" {
		containerID = model.UserArea
	}
	root, err := s.backend.FindByID(containerID)
	if err != nil {
		return nil, &NotFoundError{Query: containerID, Err: err}
	}
	kids, err := root.Children()
	if err != nil {
		return nil, err
	}

	var elements []model.ElementInfo
	for _, kid := range kids {
		elements = append(elements, describe(kid))
		if container, err := kid.ContainerType(); err != nil || !container {
			continue
		}
		grandkids, err := kid.Children()
		if err != nil {
			continue
		}
		for _, g := range grandkids {
			elements = append(elements, describe(g))
		}
	}
	return elements, nil
}

// describe reads a component's inventory properties, degrading each one
// independently.
func describe(c scripting.Component) model.ElementInfo {
	rawType := c.Type()
	kind := model.MapType(rawType)
	if kind == model.KindUnknown {
		if prefix, _ := model.SplitPrefix(model.LastSegment(c.ID())); prefix != "" {
			kind = model.PrefixKind[prefix]
		}
	}
	info := model.ElementInfo{
		Address: c.ID(),
		Type:    rawType,
		Kind:    kind,
		Name:    c.Name(),
	}
	if text, err := c.GetText(); err == nil {
		info.Text = text
	}
	if changeable, err := c.Changeable(); err == nil {
		info.Changeable = changeable
	}
	return info
}

// DescribeScreen renders the current screen as plain text: session context,
// status bar, then one line per inventoried control. The format is meant to
// be read, not parsed; structured consumers use Explore directly.
func (s *Session) DescribeScreen() (string, error) {
	var b strings.Builder

	if info, err := s.backend.Info(); err == nil {
		fmt.Fprintf(&b, "Transaction: %s\n", info.Transaction)
		fmt.Fprintf(&b, "Program: %s (screen %d)\n", info.Program, info.ScreenNumber)
	}
	if status, err := s.ReadStatus(); err == nil && status.Text != "" {
		fmt.Fprintf(&b, "Status [%s]: %s\n", status.Severity, status.Text)
	}

	elements, err := s.Explore("")
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "Elements (%d):\n", len(elements))
	for _, e := range elements {
		fmt.Fprintf(&b, "  %-8s %s", e.Kind, e.Address)
		if e.Name != "" {
			fmt.Fprintf(&b, " name=%q", e.Name)
		}
		if e.Text != "" {
			fmt.Fprintf(&b, " text=%q", e.Text)
		}
		if e.Changeable {
			b.WriteString(" changeable")
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
