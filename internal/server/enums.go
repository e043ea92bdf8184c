package server

import (
	"fmt"
	"sort"
	"strings"
)

// Scan options, variable types, and alignment modes use Cheat Engine's
// own enumeration names and ordinals; the upstream API takes the ordinal.

type ScanOption int

const (
	ScanUnknownValue     ScanOption = 0
	ScanExactValue       ScanOption = 1
	ScanValueBetween     ScanOption = 2
	ScanBiggerThan       ScanOption = 3
	ScanSmallerThan      ScanOption = 4
	ScanIncreasedValue   ScanOption = 5
	ScanIncreasedValueBy ScanOption = 6
	ScanDecreasedValue   ScanOption = 7
	ScanDecreasedValueBy ScanOption = 8
	ScanChanged          ScanOption = 9
	ScanUnchanged        ScanOption = 10
)

var scanOptions = map[string]ScanOption{
	"soUnknownValue":     ScanUnknownValue,
	"soExactValue":       ScanExactValue,
	"soValueBetween":     ScanValueBetween,
	"soBiggerThan":       ScanBiggerThan,
	"soSmallerThan":      ScanSmallerThan,
	"soIncreasedValue":   ScanIncreasedValue,
	"soIncreasedValueBy": ScanIncreasedValueBy,
	"soDecreasedValue":   ScanDecreasedValue,
	"soDecreasedValueBy": ScanDecreasedValueBy,
	"soChanged":          ScanChanged,
	"soUnchanged":        ScanUnchanged,
}

type VarType int

const (
	VarByte      VarType = 0
	VarWord      VarType = 1
	VarDword     VarType = 2
	VarQword     VarType = 3
	VarSingle    VarType = 4
	VarDouble    VarType = 5
	VarString    VarType = 6
	VarByteArray VarType = 7
	VarGrouped   VarType = 8
	VarBinary    VarType = 9
	VarAll       VarType = 10
)

var varTypes = map[string]VarType{
	"vtByte":      VarByte,
	"vtWord":      VarWord,
	"vtDword":     VarDword,
	"vtQword":     VarQword,
	"vtSingle":    VarSingle,
	"vtDouble":    VarDouble,
	"vtString":    VarString,
	"vtByteArray": VarByteArray,
	"vtGrouped":   VarGrouped,
	"vtBinary":    VarBinary,
	"vtAll":       VarAll,
}

type AlignmentType int

const (
	AlignNone       AlignmentType = 0
	AlignAligned    AlignmentType = 1
	AlignLastDigits AlignmentType = 2
)

var alignmentTypes = map[string]AlignmentType{
	"fsmNotAligned": AlignNone,
	"fsmAligned":    AlignAligned,
	"fsmLastDigits": AlignLastDigits,
}

// Rounding types are forwarded to the upstream verbatim, so only the
// accepted set is enforced here.
var roundingTypes = map[string]bool{
	"rtRounded":        true,
	"rtExtremerounded": true,
	"rtTruncated":      true,
}

// ParseScanOption maps a Cheat Engine scan option name to its ordinal.
// Unrecognized names are an error; silently passing bad strings upstream
// produces confusing scans.
func ParseScanOption(name string) (ScanOption, error) {
	if v, ok := scanOptions[name]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown scan option %q (accepted: %s)", name, sortedKeys(scanOptions))
}

// ParseVarType maps a Cheat Engine variable type name to its ordinal.
func ParseVarType(name string) (VarType, error) {
	if v, ok := varTypes[name]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown variable type %q (accepted: %s)", name, sortedKeys(varTypes))
}

// ParseAlignmentType maps an alignment mode name to its ordinal.
func ParseAlignmentType(name string) (AlignmentType, error) {
	if v, ok := alignmentTypes[name]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown alignment type %q (accepted: %s)", name, sortedKeys(alignmentTypes))
}

// ParseRoundingType validates a rounding mode name.
func ParseRoundingType(name string) (string, error) {
	if roundingTypes[name] {
		return name, nil
	}
	return "", fmt.Errorf("unknown rounding type %q (accepted: %s)", name, sortedKeys(roundingTypes))
}

func sortedKeys[V any](m map[string]V) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
