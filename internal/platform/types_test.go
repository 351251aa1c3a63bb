package platform

import "testing"

func TestRect_IsZero(t *testing.T) {
	if !(Rect{}).IsZero() {
		t.Error("zero rect should report IsZero")
	}
	if (Rect{X: 1}).IsZero() {
		t.Error("non-zero rect should not report IsZero")
	}
	if (Rect{W: 100, H: 40}).IsZero() {
		t.Error("rect with size should not report IsZero")
	}
}

func TestRect_Center(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		wantX  int
		wantY  int
	}{
		{name: "origin", r: Rect{W: 100, H: 40}, wantX: 50, wantY: 20},
		{name: "offset", r: Rect{X: 100, Y: 200, W: 80, H: 40}, wantX: 140, wantY: 220},
		{name: "zero", r: Rect{}, wantX: 0, wantY: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.r.Center()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Center() = (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestValue_AsString(t *testing.T) {
	if s, ok := StringValue("hello").AsString(); !ok || s != "hello" {
		t.Errorf("AsString = %q, %v", s, ok)
	}
	if _, ok := NumberValue(3).AsString(); ok {
		t.Error("number should not read as string")
	}
	if _, ok := Absent.AsString(); ok {
		t.Error("absent should not read as string")
	}
}

func TestValue_AsText(t *testing.T) {
	tests := []struct {
		name   string
		v      Value
		want   string
		wantOK bool
	}{
		{name: "string", v: StringValue("Save"), want: "Save", wantOK: true},
		{name: "integer_number", v: NumberValue(42), want: "42", wantOK: true},
		{name: "fractional_number", v: NumberValue(2.5), want: "2.5", wantOK: true},
		{name: "bool", v: BoolValue(true), wantOK: false},
		{name: "absent", v: Absent, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.v.AsText()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("AsText() = %q, %v, want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestValue_AsBool(t *testing.T) {
	if b, ok := BoolValue(true).AsBool(); !ok || !b {
		t.Errorf("AsBool = %v, %v", b, ok)
	}
	if _, ok := StringValue("true").AsBool(); ok {
		t.Error("string should not read as bool")
	}
}

func TestValue_AsElement(t *testing.T) {
	if _, ok := Absent.AsElement(); ok {
		t.Error("absent should not read as element")
	}
	if _, ok := (Value{Kind: KindElement}).AsElement(); ok {
		t.Error("nil element should report false")
	}
}
