package cmd

import (
	"fmt"
	"strings"

	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/scripting"
	"github.com/saptools/sapgui-cli/internal/session"
	"github.com/saptools/sapgui-cli/internal/workflow"
)

// attachSession connects to the configured connection and session. Tests
// override this to inject a fake backend.
var attachSession = func() (*session.Session, error) {
	return session.Attach(scripting.AttachOptions{
		Connection: cfg.Connection,
		Session:    cfg.Session,
	}, log)
}

// withSession attaches, runs fn, and releases the attachment.
func withSession(fn func(*session.Session) error) error {
	s, err := attachSession()
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

// parseKinds converts a comma-separated kind list ("text,button") into
// capability kinds, rejecting unknown names.
func parseKinds(list string) ([]model.Kind, error) {
	if list == "" {
		return nil, nil
	}
	known := map[model.Kind]bool{
		model.KindText: true, model.KindLabel: true, model.KindCheckbox: true,
		model.KindRadio: true, model.KindCombo: true, model.KindButton: true,
		model.KindTab: true, model.KindGrid: true, model.KindTable: true,
		model.KindWindow: true, model.KindShell: true, model.KindUnknown: true,
	}
	var kinds []model.Kind
	for _, part := range strings.Split(list, ",") {
		k := model.Kind(strings.TrimSpace(part))
		if k == "" {
			continue
		}
		if !known[k] {
			return nil, fmt.Errorf("unknown kind %q", k)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// parseVKey resolves a virtual key given as a name ("f8", "enter") or a
// numeric code.
func parseVKey(arg string) (int, error) {
	if code, ok := session.VKeyNames[strings.ToLower(arg)]; ok {
		return code, nil
	}
	var code int
	if _, err := fmt.Sscanf(arg, "%d", &code); err != nil || code < 0 {
		return 0, fmt.Errorf("unknown virtual key %q", arg)
	}
	return code, nil
}

// parseFieldSpecs parses field arguments of the form
// NAME[:group][:sum][=VALUE] into workflow field specs, e.g.
// "UMSKZ:group", "DMBTR:sum", "BUKRS=1000".
func parseFieldSpecs(args []string) ([]workflow.FieldSpec, error) {
	specs := make([]workflow.FieldSpec, 0, len(args))
	for _, arg := range args {
		spec := workflow.FieldSpec{}
		head := arg
		if i := strings.Index(arg, "="); i >= 0 {
			head = arg[:i]
			spec.Value = arg[i+1:]
		}
		parts := strings.Split(head, ":")
		spec.Name = parts[0]
		if spec.Name == "" {
			return nil, fmt.Errorf("field spec %q: empty name", arg)
		}
		for _, mod := range parts[1:] {
			switch mod {
			case "group":
				spec.Group = true
			case "sum":
				spec.Sum = true
			default:
				return nil, fmt.Errorf("field spec %q: unknown modifier %q", arg, mod)
			}
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// splitColumns splits a comma-separated column list, dropping empties.
func splitColumns(list string) []string {
	var columns []string
	for _, c := range strings.Split(list, ",") {
		if c = strings.TrimSpace(c); c != "" {
			columns = append(columns, c)
		}
	}
	return columns
}

// parseSelection parses NAME=VALUE selection arguments.
func parseSelection(args []string) (map[string]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	selection := make(map[string]string, len(args))
	for _, arg := range args {
		i := strings.Index(arg, "=")
		if i <= 0 {
			return nil, fmt.Errorf("selection %q: want NAME=VALUE", arg)
		}
		selection[arg[:i]] = arg[i+1:]
	}
	return selection, nil
}
