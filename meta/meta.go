// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines scoring root moves.
const GO_ROUTINES = 4

// GAMES_PER_MATCHUP defines how many games each experiment matchup plays.
const GAMES_PER_MATCHUP = 10

// MAX_TURNS guards the match loop against games that never end. Passes count as turns.
const MAX_TURNS = 300

// LOG_LEVEL is the default zerolog level name.
const LOG_LEVEL = "info"

// OUTPUT_DIR is where experiment records are written.
const OUTPUT_DIR = "experiments/results"
