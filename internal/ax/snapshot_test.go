package ax

import (
	"errors"
	"testing"

	"github.com/deskpilot/deskpilot/internal/platform"
)

func TestCapture_AllowListOnly(t *testing.T) {
	win := elem("AXWindow", "win",
		elem("AXButton", "OK"),
		elem("AXGroup", "container",
			elem("AXStaticText", "hello"),
			elem("AXImage", "logo"),
		),
		elem("AXScrollArea", ""),
	)
	acc := newFakeAccessor(win, win)

	nodes, err := Capture(acc, 0, -1)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	for _, n := range nodes {
		switch n.Role {
		case RoleButton, RoleStaticText, RoleTextField, RoleCheckbox, RoleMenuItem, RoleTab:
		default:
			t.Errorf("role %q is outside the allow-list", n.Role)
		}
	}
}

func TestCapture_TitlePriorityChain(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]platform.Value
		want  string
	}{
		{
			"title_wins",
			map[string]platform.Value{
				platform.AttrTitle: platform.StringValue("Title"),
				platform.AttrValue: platform.StringValue("Value"),
			},
			"Title",
		},
		{
			"label_value_second",
			map[string]platform.Value{
				platform.AttrLabelValue:  platform.StringValue("Label"),
				platform.AttrDescription: platform.StringValue("Desc"),
			},
			"Label",
		},
		{
			"value_third",
			map[string]platform.Value{
				platform.AttrValue: platform.StringValue("Value"),
				platform.AttrHelp:  platform.StringValue("Help"),
			},
			"Value",
		},
		{
			"numeric_value_rendered",
			map[string]platform.Value{
				platform.AttrValue: platform.NumberValue(42),
			},
			"42",
		},
		{
			"description_fourth",
			map[string]platform.Value{
				platform.AttrDescription: platform.StringValue("Desc"),
			},
			"Desc",
		},
		{
			"help_last",
			map[string]platform.Value{
				platform.AttrHelp: platform.StringValue("Help"),
			},
			"Help",
		},
		{
			"empty_strings_skipped",
			map[string]platform.Value{
				platform.AttrTitle: platform.StringValue(""),
				platform.AttrValue: platform.StringValue("Value"),
			},
			"Value",
		},
		{
			"nothing_present",
			map[string]platform.Value{},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			btn := elem("AXButton", "")
			for name, v := range tt.attrs {
				btn.withAttr(name, v)
			}
			win := elem("AXWindow", "", btn)
			acc := newFakeAccessor(win, win)

			nodes, err := Capture(acc, 0, -1)
			if err != nil {
				t.Fatalf("Capture: %v", err)
			}
			if len(nodes) != 1 {
				t.Fatalf("got %d nodes, want 1", len(nodes))
			}
			if nodes[0].Title != tt.want {
				t.Errorf("title = %q, want %q", nodes[0].Title, tt.want)
			}
		})
	}
}

func TestCapture_EnabledDefaultsTrue(t *testing.T) {
	enabled := elem("AXButton", "on")
	disabled := elem("AXButton", "off").withAttr(platform.AttrEnabled, platform.BoolValue(false))
	win := elem("AXWindow", "", enabled, disabled)
	acc := newFakeAccessor(win, win)

	nodes, err := Capture(acc, 0, -1)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	if !nodes[0].Enabled {
		t.Errorf("element without enabled attribute should default to enabled")
	}
	if nodes[1].Enabled {
		t.Errorf("element with enabled=false should be disabled")
	}
}

func TestCapture_FrameDefaultsZero(t *testing.T) {
	framed := elem("AXButton", "framed").withFrame(10, 20, 100, 30)
	frameless := elem("AXButton", "frameless")
	win := elem("AXWindow", "", framed, frameless)
	acc := newFakeAccessor(win, win)

	nodes, err := Capture(acc, 0, -1)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	want := platform.Rect{X: 10, Y: 20, W: 100, H: 30}
	if nodes[0].Frame != want {
		t.Errorf("frame = %+v, want %+v", nodes[0].Frame, want)
	}
	if !nodes[1].Frame.IsZero() {
		t.Errorf("frameless element should report the zero rect, got %+v", nodes[1].Frame)
	}
}

func TestCapture_Limit(t *testing.T) {
	var buttons []*fakeElement
	for i := 0; i < 10; i++ {
		buttons = append(buttons, elem("AXButton", "b"))
	}
	win := elem("AXWindow", "", buttons...)
	acc := newFakeAccessor(win, win)

	nodes, err := Capture(acc, 4, -1)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if len(nodes) != 4 {
		t.Errorf("got %d nodes with limit 4, want 4", len(nodes))
	}
}

func TestCapture_ThreeLevelFixture(t *testing.T) {
	email := elem("AXTextField", "Email")
	submit := elem("AXButton", "Submit", email)
	win := elem("AXWindow", "Form", submit)
	acc := newFakeAccessor(win, win)

	nodes, err := Capture(acc, 10, 2)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	if nodes[0].Role != RoleButton || nodes[0].Title != "Submit" {
		t.Errorf("first node = %s %q, want button Submit", nodes[0].Role, nodes[0].Title)
	}
	if nodes[1].Role != RoleTextField || nodes[1].Title != "Email" {
		t.Errorf("second node = %s %q, want text-field Email", nodes[1].Role, nodes[1].Title)
	}
}

func TestCapture_DepthExcludesDeepElements(t *testing.T) {
	deep := elem("AXButton", "deep")
	mid := elem("AXGroup", "", deep)
	win := elem("AXWindow", "", mid)
	acc := newFakeAccessor(win, win)

	nodes, err := Capture(acc, 10, 1)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if len(nodes) != 0 {
		t.Errorf("got %d nodes beyond the depth bound, want 0", len(nodes))
	}
}

func TestCapture_EmptyResultIsSuccess(t *testing.T) {
	win := elem("AXWindow", "", elem("AXGroup", ""))
	acc := newFakeAccessor(win, win)

	nodes, err := Capture(acc, 0, -1)
	if err != nil {
		t.Fatalf("Capture with no interesting elements should succeed, got %v", err)
	}
	if nodes == nil || len(nodes) != 0 {
		t.Errorf("want non-nil empty slice, got %v", nodes)
	}
}

func TestCapture_FailStates(t *testing.T) {
	win := elem("AXWindow", "")

	tests := []struct {
		name string
		acc  *fakeAccessor
		want error
	}{
		{"not_trusted", &fakeAccessor{trusted: false, app: win, win: win}, ErrAccessibilityDisabled},
		{"no_focused_app", &fakeAccessor{trusted: true}, ErrNoFocusedApp},
		{"no_focused_window", &fakeAccessor{trusted: true, app: win}, ErrNoFocusedWindow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Capture(tt.acc, 0, -1)
			if !errors.Is(err, tt.want) {
				t.Errorf("Capture error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCapture_NodeIDIsHashString(t *testing.T) {
	btn := elem("AXButton", "OK")
	win := elem("AXWindow", "", btn)
	acc := newFakeAccessor(win, win)

	nodes, err := Capture(acc, 0, -1)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if nodes[0].ID == "" {
		t.Errorf("node ID should be the rendered identity hash, got empty string")
	}
}
