package overlap

// Level buckets a slot by the share of zones in working hours.
type Level int

const (
	LevelNone   Level = iota // under 25%
	LevelLow                 // 25% or more
	LevelMedium              // 50% or more
	LevelHigh                // 75% or more
)

func (l Level) String() string {
	switch l {
	case LevelHigh:
		return "high"
	case LevelMedium:
		return "medium"
	case LevelLow:
		return "low"
	default:
		return "none"
	}
}

// LevelFor buckets overlap out of total zones. No zones is LevelNone.
func LevelFor(overlap, total int) Level {
	if total <= 0 {
		return LevelNone
	}
	switch q := overlap * 100; {
	case q >= total*75:
		return LevelHigh
	case q >= total*50:
		return LevelMedium
	case q >= total*25:
		return LevelLow
	default:
		return LevelNone
	}
}
