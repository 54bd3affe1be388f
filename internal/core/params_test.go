package core

import "testing"

func TestParameterSnapshotLines(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{{
		Name: "Grid",
		Params: []Parameter{
			{Key: "width", Label: "Width", Type: ParamTypeInt, Value: "5"},
		},
	}}}
	lines := s.Lines()
	if len(lines) != 2 || lines[0] != "Grid" || lines[1] != "  Width: 5" {
		t.Fatalf("unexpected lines %q", lines)
	}
}
