package entity

// Mark is the content of a single board cell.
type Mark int8

const (
	EmptyMark Mark = iota
	MarkX
	MarkO
)

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return " "
	}
}

// Value - weight of the mark in a line sum: X counts +1, O counts -1.
func (that Mark) Value() int {
	switch that {
	case MarkX:
		return 1
	case MarkO:
		return -1
	default:
		return 0
	}
}

func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return EmptyMark
	}
}

// Outcome is the result of a game. OutcomeNone means the game is still in progress.
type Outcome int8

const (
	OutcomeNone Outcome = iota
	OutcomeX
	OutcomeO
	OutcomeDraw
)

const outcomeTie = "-"

func (that Outcome) String() string {
	switch that {
	case OutcomeX:
		return MarkX.String()
	case OutcomeO:
		return MarkO.String()
	case OutcomeDraw:
		return outcomeTie
	default:
		return ""
	}
}

func (that Outcome) IsTerminal() bool {
	return that != OutcomeNone
}

// OutcomeFor - the winning outcome of the given mark.
func OutcomeFor(mark Mark) Outcome {
	switch mark {
	case MarkX:
		return OutcomeX
	case MarkO:
		return OutcomeO
	default:
		return OutcomeNone
	}
}
