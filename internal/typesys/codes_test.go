package typesys

import "testing"

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{INT, true}, {REAL, true}, {BOOL, false}, {CHAR, false}, {STRING, false}, {NONE, false},
	}
	for _, tt := range tests {
		if got := tt.code.IsNumeric(); got != tt.want {
			t.Errorf("%v.IsNumeric() = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestRefIsDefined(t *testing.T) {
	if Undefined.IsDefined() {
		t.Error("Undefined.IsDefined() = true, want false")
	}
	if !(Ref{Code: INT}).IsDefined() {
		t.Error("Ref{Code: INT}.IsDefined() = false, want true")
	}
}

func TestRefIsComposite(t *testing.T) {
	if !(Ref{Code: ARRAY, Ref: 1}).IsComposite() {
		t.Error("ARRAY ref is not composite")
	}
	if !(Ref{Code: RECORD, Ref: 2}).IsComposite() {
		t.Error("RECORD ref is not composite")
	}
	if (Ref{Code: STRING}).IsComposite() {
		t.Error("STRING ref (numeric overlap with ARRAY=5) reported composite by value alone")
	}
}

func TestEntryKindString(t *testing.T) {
	tests := []struct {
		kind EntryKind
		want string
	}{
		{CONST, "CONST"}, {VAR, "VAR"}, {TYPE, "TYPE"}, {PROC, "PROC"},
		{FUNC, "FUNC"}, {PROGRAM, "PROGRAM"}, {PARAM, "PARAM"}, {KindNone, "NONE"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestNamedSentinelNeverCollidesWithRealCodes(t *testing.T) {
	if NAMED == NONE || NAMED == INT || NAMED == REAL || NAMED == BOOL ||
		NAMED == CHAR || NAMED == STRING || NAMED == ARRAY || NAMED == RECORD {
		t.Error("NAMED collides with a real primitive/composite code")
	}
}
