package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/deskpilot/deskpilot/internal/ax"
	"gopkg.in/yaml.v3"
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

// SnapshotResult is the top-level output of the `snapshot` command.
type SnapshotResult struct {
	TS       int64     `yaml:"ts"       json:"ts"`
	Count    int       `yaml:"count"    json:"count"`
	Elements []ax.Node `yaml:"elements" json:"elements"`
}

// ActionResult is the top-level output of the click/focus/type commands.
type ActionResult struct {
	Status string `yaml:"status"           json:"status"`
	Action string `yaml:"action"           json:"action"`
	Target string `yaml:"target,omitempty" json:"target,omitempty"`
	Detail string `yaml:"detail,omitempty" json:"detail,omitempty"`
}

// AskResult is the top-level output of the `ask` command.
type AskResult struct {
	Status   string `yaml:"status"             json:"status"`
	Response string `yaml:"response,omitempty" json:"response,omitempty"`
	Action   string `yaml:"action,omitempty"   json:"action,omitempty"`
	Pending  string `yaml:"pending,omitempty"  json:"pending,omitempty"`
}

// StatusResult is the top-level output of the `status` command.
type StatusResult struct {
	Accessibility string `yaml:"accessibility"      json:"accessibility"`
	Planner       string `yaml:"planner"            json:"planner"`
	PlannerModel  string `yaml:"model,omitempty"    json:"model,omitempty"`
	PlannerUptime string `yaml:"uptime,omitempty"   json:"uptime,omitempty"`
	Version       string `yaml:"version"            json:"version"`
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
