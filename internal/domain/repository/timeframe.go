package repository

// Timeframe represents the chart resolution a signal was generated for.
type Timeframe string

const (
	TFM1  Timeframe = "M1"
	TFM5  Timeframe = "M5"
	TFM15 Timeframe = "M15"
	TFM30 Timeframe = "M30"
	TFH1  Timeframe = "H1"
	TFH4  Timeframe = "H4"
	TFD1  Timeframe = "D1"
	TFW1  Timeframe = "W1"
)

// IsValidTimeframe returns true if tf is a supported timeframe.
func IsValidTimeframe(tf Timeframe) bool {
	switch tf {
	case TFM1, TFM5, TFM15, TFM30, TFH1, TFH4, TFD1, TFW1:
		return true
	default:
		return false
	}
}

// DefaultTimeframe returns the default timeframe.
func DefaultTimeframe() Timeframe { return TFD1 }

// NormalizeTimeframe converts raw string to a valid timeframe (or default).
func NormalizeTimeframe(s string) Timeframe {
	if s == "" {
		return DefaultTimeframe()
	}
	tf := Timeframe(s)
	if IsValidTimeframe(tf) {
		return tf
	}
	return DefaultTimeframe()
}

// TimeframeName returns a human-readable label for rendering.
func TimeframeName(tf Timeframe) string {
	switch tf {
	case TFM1:
		return "1 Minute (M1)"
	case TFM5:
		return "5 Minutes (M5)"
	case TFM15:
		return "15 Minutes (M15)"
	case TFM30:
		return "30 Minutes (M30)"
	case TFH1:
		return "1 Hour (H1)"
	case TFH4:
		return "4 Hours (H4)"
	case TFD1:
		return "Daily (D1)"
	case TFW1:
		return "Weekly (W1)"
	default:
		return string(tf)
	}
}
