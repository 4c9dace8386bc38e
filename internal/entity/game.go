package entity

const (
	WithBotType  = "bot"
	SelfPlayType = "selfplay"
)

// Game is a single session: the current board plus the moves that led to it.
// Every earlier position can be rebuilt from History since boards are values.
type Game struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	BotMark Mark   `json:"bot_mark,omitempty"`
	Board   Board  `json:"board"`
	History []Move `json:"history,omitempty"`
}

func NewGame(id, gameType string, botMark Mark) *Game {
	return &Game{
		ID:      id,
		Type:    gameType,
		BotMark: botMark,
		Board:   InitialBoard(),
	}
}

func (that *Game) Turn() Mark {
	return that.Board.Turn()
}

func (that *Game) Outcome() Outcome {
	return that.Board.Outcome()
}

func (that *Game) IsFinished() bool {
	return that.Board.IsTerminal()
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Game) IsSelfPlay() bool {
	return that.Type == SelfPlayType
}

// IsBotTurn reports whether the bot should move now.
func (that *Game) IsBotTurn() bool {
	if that.IsFinished() {
		return false
	}

	switch {
	case that.IsSelfPlay():
		return true
	case that.IsWithBot():
		return that.Turn() == that.BotMark
	default:
		return false
	}
}
