package engine

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/PortalChess/Chess/chess"
)

// ConstructionEvent describes one firing of a board-construction path.
type ConstructionEvent struct {
	BoardID string
	Layout  string // "standard", "empty", "custom", "fen" or "clone"
	Pieces  int
	Active  chess.Colour
	Status  chess.GameStatus
}

// Instrumentation receives construction events. It is a pure side channel:
// implementations cannot influence engine control flow or results, and the
// engine never reads anything back from them.
type Instrumentation interface {
	BoardConstructed(ev ConstructionEvent)
}

// nopInstrumentation is the default sink.
type nopInstrumentation struct{}

func (nopInstrumentation) BoardConstructed(ConstructionEvent) {}

// DebugSink writes a spew dump of every construction event to Out. Intended
// for development only: the legality filter and checkmate test construct a
// clone per simulated move, so a live game emits a large volume of "clone"
// events.
type DebugSink struct {
	Out io.Writer
}

// BoardConstructed implements Instrumentation.
func (s DebugSink) BoardConstructed(ev ConstructionEvent) {
	fmt.Fprintf(s.Out, "board constructed: %s", spew.Sdump(ev))
}
