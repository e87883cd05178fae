package output

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/scripting"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ExploreResult is the top-level output of the `explore` command.
type ExploreResult struct {
	Container string              `yaml:"container"      json:"container"`
	TS        int64               `yaml:"ts"             json:"ts"`
	Elements  []model.ElementInfo `yaml:"elements"       json:"elements"`
	Diff      *model.ScreenDiff   `yaml:"diff,omitempty" json:"diff,omitempty"`
}

// GridResult is the top-level output of the `grid read` command.
type GridResult struct {
	Address  string             `yaml:"address"  json:"address"`
	Snapshot model.GridSnapshot `yaml:"snapshot" json:"snapshot"`
}

// DistinctResult is the top-level output of the `grid distinct` command.
type DistinctResult struct {
	Address string   `yaml:"address" json:"address"`
	Column  string   `yaml:"column"  json:"column"`
	Values  []string `yaml:"values"  json:"values"`
}

// InfoResult is the top-level output of the `info` command.
type InfoResult struct {
	Session scripting.SessionInfo `yaml:"session" json:"session"`
}

// StatusResult is the top-level output of the `status` command.
type StatusResult struct {
	Status model.StatusMessage `yaml:"status" json:"status"`
	Failed bool                `yaml:"failed" json:"failed"`
}

// FieldResult is the top-level output of the field read commands.
type FieldResult struct {
	Field string `yaml:"field" json:"field"`
	Value string `yaml:"value" json:"value"`
}

// PopupResult is the top-level output of the `popup` command.
type PopupResult struct {
	Dismissed bool   `yaml:"dismissed"        json:"dismissed"`
	Button    string `yaml:"button,omitempty" json:"button,omitempty"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
