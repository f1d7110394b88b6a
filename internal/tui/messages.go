package tui

// chatSettledMsg is delivered once the dispatch of an accepted message has
// appended its assistant turn.
type chatSettledMsg struct {
	err error
}

type resetDoneMsg struct {
	err error
}

type clearStatusMsg struct{}
