package output

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/deskpilot/deskpilot/internal/ax"
	"gopkg.in/yaml.v3"
)

func capture(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	ferr := fn()
	w.Close()
	os.Stdout = old
	if ferr != nil {
		t.Fatal(ferr)
	}
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	result := SnapshotResult{
		TS:    1707500000,
		Count: 1,
		Elements: []ax.Node{
			{ID: "a3f", Role: ax.RoleButton, Title: "OK", Enabled: true},
		},
	}

	got := capture(t, func() error { return PrintYAML(result) })

	if bytes.Count([]byte(got), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", got)
	}
	var decoded SnapshotResult
	if err := yaml.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Count != 1 || len(decoded.Elements) != 1 {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Elements[0].Title != "OK" {
		t.Errorf("title: got %q, want %q", decoded.Elements[0].Title, "OK")
	}
}

func TestPrintJSON_Compact(t *testing.T) {
	got := capture(t, func() error {
		return PrintJSON(ActionResult{Status: "ok", Action: "click", Target: "Submit"})
	})
	if bytes.Count([]byte(got), []byte("\n")) != 1 {
		t.Errorf("compact JSON should be a single line, got:\n%s", got)
	}
	var decoded ActionResult
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Action != "click" || decoded.Target != "Submit" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestPrint_RespectsFormat(t *testing.T) {
	defer func() { OutputFormat = FormatYAML; PrettyOutput = false }()

	OutputFormat = FormatJSON
	PrettyOutput = true
	got := capture(t, func() error { return Print(ActionResult{Status: "ok", Action: "focus"}) })
	if !bytes.Contains([]byte(got), []byte("  \"status\"")) {
		t.Errorf("pretty JSON should be indented, got:\n%s", got)
	}

	OutputFormat = Format("csv")
	if err := Print(struct{}{}); err == nil {
		t.Error("unsupported format should error")
	}
}

func TestActionResult_OmitEmpty(t *testing.T) {
	data, err := yaml.Marshal(ActionResult{Status: "ok", Action: "click"})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["target"]; ok {
		t.Error("empty target should be omitted")
	}
	if _, ok := m["detail"]; ok {
		t.Error("empty detail should be omitted")
	}
	if _, ok := m["status"]; !ok {
		t.Error("status should always be present")
	}
}
