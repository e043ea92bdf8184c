package server

import (
	"strings"
	"testing"
)

func TestParseScanOption(t *testing.T) {
	if v, err := ParseScanOption("soExactValue"); err != nil || v != ScanExactValue {
		t.Fatalf("soExactValue: %v, %v", v, err)
	}
	if v, err := ParseScanOption("soUnchanged"); err != nil || v != ScanOption(10) {
		t.Fatalf("soUnchanged: %v, %v", v, err)
	}
	_, err := ParseScanOption("soBogus")
	if err == nil {
		t.Fatal("expected error for unknown scan option")
	}
	if !strings.Contains(err.Error(), "soExactValue") {
		t.Errorf("error should list accepted values: %v", err)
	}
}

func TestParseVarType(t *testing.T) {
	if v, err := ParseVarType("vtByte"); err != nil || v != VarByte {
		t.Fatalf("vtByte: %v, %v", v, err)
	}
	if v, err := ParseVarType("vtAll"); err != nil || v != VarType(10) {
		t.Fatalf("vtAll: %v, %v", v, err)
	}
	// The upper ordinals match Cheat Engine's TVariableType order.
	for name, want := range map[string]VarType{
		"vtByteArray": 7,
		"vtGrouped":   8,
		"vtBinary":    9,
	} {
		if v, err := ParseVarType(name); err != nil || v != want {
			t.Fatalf("%s: got %v, %v, want %v", name, v, err, want)
		}
	}
	if _, err := ParseVarType("vtNope"); err == nil {
		t.Fatal("expected error for unknown var type")
	}
}

func TestParseAlignmentType(t *testing.T) {
	if v, err := ParseAlignmentType("fsmAligned"); err != nil || v != AlignAligned {
		t.Fatalf("fsmAligned: %v, %v", v, err)
	}
	if _, err := ParseAlignmentType("fsmDiagonal"); err == nil {
		t.Fatal("expected error for unknown alignment type")
	}
}

func TestParseRoundingType(t *testing.T) {
	for _, name := range []string{"rtRounded", "rtExtremerounded", "rtTruncated"} {
		if v, err := ParseRoundingType(name); err != nil || v != name {
			t.Fatalf("%s: %v, %v", name, v, err)
		}
	}
	if _, err := ParseRoundingType("rtSideways"); err == nil {
		t.Fatal("expected error for unknown rounding type")
	}
}
