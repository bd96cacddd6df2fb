package game

// Reversi evaluation weights
const (
	ReversiMobilityWeight = 10.0
	ReversiCornerWeight   = 25.0
	ReversiEdgeWeight     = 5.0
	ReversiInteriorWeight = 1.0
)

// Connect-4 evaluation weights. The evaluation is bounded by Connect4EvalScale so that
// it never outweighs a real win or loss.
const (
	Connect4EvalScale    = 50.0
	connect4CentreWeight = 3.0
	connect4ThreeWeight  = 5.0
	connect4TwoWeight    = 2.0
)

// EvaluateNeutral scores every cut-off position as a draw.
func EvaluateNeutral(Engine, Player) float64 {
	return 0
}

// EvaluateReversi combines the mobility difference with positional weights of occupied
// cells (corners, then edges, then interior) from p's perspective.
func EvaluateReversi(e Engine, p Player) float64 {
	opponent := p.Opponent()
	mobility := float64(e.CountLegalMoves(p) - e.CountLegalMoves(opponent))
	return ReversiMobilityWeight*mobility + positionalScore(e.Board(), p)
}

func positionalScore(b Board, p Player) float64 {
	own, opponent := p.Cell(), p.Opponent().Cell()
	score := 0.0
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			switch b.At(r, c) {
			case own:
				score += squareWeight(b, r, c)
			case opponent:
				score -= squareWeight(b, r, c)
			}
		}
	}
	return score
}

func squareWeight(b Board, row, col int) float64 {
	rowEdge := row == 0 || row == b.rows-1
	colEdge := col == 0 || col == b.cols-1
	switch {
	case rowEdge && colEdge:
		return ReversiCornerWeight
	case rowEdge || colEdge:
		return ReversiEdgeWeight
	default:
		return ReversiInteriorWeight
	}
}

// EvaluateConnect4 scores every four-cell window that only one player occupies, plus a
// bonus for pieces in the centre column, then normalizes the two totals to
// [-Connect4EvalScale, Connect4EvalScale] from p's perspective.
func EvaluateConnect4(e Engine, p Player) float64 {
	b := e.Board()
	own, opponent := p.Cell(), p.Opponent().Cell()

	var ownScore, opponentScore float64
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			for _, d := range lineDirections {
				counts, ok := windowCounts(b, r, c, d, connect4Run)
				if !ok {
					continue
				}
				ownScore += windowScore(counts[own], counts[opponent])
				opponentScore += windowScore(counts[opponent], counts[own])
			}
		}
	}

	centre := b.cols / 2
	for r := 0; r < b.rows; r++ {
		switch b.At(r, centre) {
		case own:
			ownScore += connect4CentreWeight
		case opponent:
			opponentScore += connect4CentreWeight
		}
	}

	return Connect4EvalScale * normalize(ownScore, opponentScore)
}

// windowCounts tallies the cells of the window starting at (row, col) along d. ok is
// false when the window leaves the board.
func windowCounts(b Board, row, col int, d direction, length int) (counts [3]int, ok bool) {
	for i := 0; i < length; i++ {
		cell := b.At(row+i*d.dRow, col+i*d.dCol)
		if cell == OutOfBounds {
			return counts, false
		}
		counts[cell]++
	}
	return counts, true
}

func windowScore(mine, theirs int) float64 {
	if theirs > 0 {
		return 0 // Blocked window
	}
	switch mine {
	case 3:
		return connect4ThreeWeight
	case 2:
		return connect4TwoWeight
	default:
		return 0
	}
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
