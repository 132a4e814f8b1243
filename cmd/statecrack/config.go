package main

import "github.com/xtaci/statecrack/rngtypes"

// Config holds one run's parsed flags: which generator to target, how
// many future values to predict once solved, and (V8_INT only) the
// multiplier the observed integers were scaled by.
type Config struct {
	Type       rngtypes.RngType
	Predict    int
	Multiplier uint64
}

// parseRngType maps the CLI's -t/--type spelling onto an RngType.
func parseRngType(s string) (rngtypes.RngType, bool) {
	switch s {
	case "V8":
		return rngtypes.V8, true
	case "V8_LEGACY":
		return rngtypes.V8Legacy, true
	case "V8_INT":
		return rngtypes.V8Int, true
	case "MT19937":
		return rngtypes.MT19937, true
	default:
		return 0, false
	}
}
