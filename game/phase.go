package game

// Phase is the coarse game mode. Exactly one value is active at any time
// and it spans the whole run of the process.
type Phase int

const (
	Loading Phase = iota
	MainMenu
	Playing
	Paused
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "Loading"
	case MainMenu:
		return "MainMenu"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	}
	return "Unknown"
}
