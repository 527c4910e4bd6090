package rules

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeLost Outcome = iota
	OutcomeWon
	OutcomeSecretFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeSecretFound:
		return "secret"
	default:
		return "lost"
	}
}

// GameResult is the terminal message of one session.
type GameResult struct {
	Outcome    Outcome
	Won        bool
	Score      int
	Difficulty Difficulty

	// HackerSurvivalTime is the longest stretch, in seconds, survived on
	// the hacker tier without collecting a sprout.
	HackerSurvivalTime float64
	TotalSurvivalTime  float64

	// UnlockedSecret is the story fragment id found, 0 when none.
	UnlockedSecret int
	FoundPeel      bool
	FoundCaramel   bool
}
