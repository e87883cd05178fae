package session

import (
	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/scripting"
)

// Control is a capability-tagged handle on one resolved control. It carries
// the navigation generation at resolution time; after any navigating
// operation the handle refuses further use.
type Control struct {
	Address string
	Kind    model.Kind
	RawType string
	Name    string

	raw  scripting.Component
	sess *Session
	gen  uint64
}

// wrap tags a raw component with its capability kind. Controls whose type
// cannot be read fall back to the address prefix; anything unrecognized
// stays KindUnknown with the raw type preserved.
func (s *Session) wrap(c scripting.Component) *Control {
	rawType := c.Type()
	kind := model.MapType(rawType)
	if kind == model.KindUnknown {
		if prefix, _ := model.SplitPrefix(model.LastSegment(c.ID())); prefix != "" {
			kind = model.PrefixKind[prefix]
		}
	}
	return &Control{
		Address: c.ID(),
		Kind:    kind,
		RawType: rawType,
		Name:    c.Name(),
		raw:     c,
		sess:    s,
		gen:     s.gen,
	}
}

// FindByID resolves a control by its full address. Strict: a miss is a
// NotFoundError.
func (s *Session) FindByID(id string) (*Control, error) {
	c, err := s.backend.FindByID(id)
	if err != nil {
		return nil, &NotFoundError{Query: id, Err: err}
	}
	return s.wrap(c), nil
}

// LookupByID resolves a control by address. Tolerant: a miss yields nil.
func (s *Session) LookupByID(id string) *Control {
	c, err := s.backend.FindByID(id)
	if err != nil {
		return nil
	}
	return s.wrap(c)
}

// FindByName resolves the first control matching a semantic field name and
// typed prefix ("ctxt", "txt", "chk", ...; empty matches any type). When
// several controls share a name, the first match in document order of the
// scripting tree wins; FindAllByName returns the full ordered set.
func (s *Session) FindByName(name, prefix string) (*Control, error) {
	c, err := s.backend.FindByName(name, model.PrefixType[prefix])
	if err != nil {
		return nil, &NotFoundError{Query: prefix + name, Err: err}
	}
	return s.wrap(c), nil
}

// LookupByName is the tolerant form of FindByName: nil on a miss.
func (s *Session) LookupByName(name, prefix string) *Control {
	c, err := s.backend.FindByName(name, model.PrefixType[prefix])
	if err != nil {
		return nil
	}
	return s.wrap(c)
}

// FindAllByName returns every control matching name and prefix, in document
// order of the scripting tree.
func (s *Session) FindAllByName(name, prefix string) ([]*Control, error) {
	comps, err := s.backend.FindAllByName(name, model.PrefixType[prefix])
	if err != nil {
		return nil, &NotFoundError{Query: prefix + name, Err: err}
	}
	controls := make([]*Control, len(comps))
	for i, c := range comps {
		controls[i] = s.wrap(c)
	}
	return controls, nil
}

// Children resolves a container's direct children, the main window user
// area when containerID is empty.
func (s *Session) Children(containerID string) ([]*Control, error) {
	if containerID == "" {
		containerID = model.UserArea
	}
	container, err := s.backend.FindByID(containerID)
	if err != nil {
		return nil, &NotFoundError{Query: containerID, Err: err}
	}
	kids, err := container.Children()
	if err != nil {
		return nil, err
	}
	controls := make([]*Control, len(kids))
	for i, c := range kids {
		controls[i] = s.wrap(c)
	}
	return controls, nil
}
