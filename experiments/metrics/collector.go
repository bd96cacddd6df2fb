package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines      int
	Depth           int
	Duration        time.Duration
	Nodes           int
	HeuristicLeaves int
	TerminalLeaves  int
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	Move   string
	Pass   bool
	SearchMetric
}

type GameMetric struct {
	Kind           string
	StartingPlayer int    // Player ID
	Winner         string // Outcome
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

type Collector interface {
	Start(goroutines, depth int)
	AddNode()
	AddHeuristicLeaf()
	AddTerminalLeaf()
	Complete() SearchMetric
}

type collector struct {
	goroutines      int
	depth           int
	startTime       time.Time
	nodes           atomic.Int64
	heuristicLeaves atomic.Int64
	terminalLeaves  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(goroutines, depth int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.nodes.Store(0)
	m.heuristicLeaves.Store(0)
	m.terminalLeaves.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddHeuristicLeaf() {
	m.heuristicLeaves.Add(1)
}

func (m *collector) AddTerminalLeaf() {
	m.terminalLeaves.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:      m.goroutines,
		Depth:           m.depth,
		Duration:        time.Since(m.startTime),
		Nodes:           int(m.nodes.Load()),
		HeuristicLeaves: int(m.heuristicLeaves.Load()),
		TerminalLeaves:  int(m.terminalLeaves.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int) {}
func (m *dummyCollector) AddNode()                    {}
func (m *dummyCollector) AddHeuristicLeaf()           {}
func (m *dummyCollector) AddTerminalLeaf()            {}
func (m *dummyCollector) Complete() SearchMetric      { return SearchMetric{} }
