package searcher

// Hyperparameters for the minimax bots

// Unbounded searches until every line reaches a terminal position
const Unbounded = -1

const TicTacToeWinScore = 1.0

// Depths count total plies, the candidate move included
const (
	Connect4Depth    = 4
	Connect4WinScore = 100.0
)

const (
	ReversiDepth    = 4
	ReversiWinScore = 10000.0
)
