package sway

import "fmt"

// globalDebug mirrors the most recently set Stage debug flag so that node
// operations (which lack a Stage pointer) can check it cheaply.
var globalDebug bool

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("sway debug: %s on disposed node %q", op, n.Name))
	}
}

// debugMaxActions is the live action count above which debug mode warns.
// Usually a sign of actions being added every frame and never finishing.
const debugMaxActions = 10000

func debugCheckActionCount(n int) {
	if n > debugMaxActions {
		log().Warn("sway: live action count exceeds threshold", "count", n, "threshold", debugMaxActions)
	}
}

// debugLogTick reports one Manager.Update.
func debugLogTick(live, updated, finished int) {
	log().Debug("sway: manager tick", "live", live, "updated", updated, "finished", finished)
}
