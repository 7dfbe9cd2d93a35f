package bitvec

type actionKind uint8

const (
	actionContinue actionKind = iota
	actionStop
	actionReplace
)

// Action is the result of an EachBlock visitor: continue unchanged, stop the
// iteration, or replace the current block.
type Action struct {
	kind  actionKind
	value uint64
}

var (
	// Continue leaves the block unchanged and moves on.
	Continue = Action{kind: actionContinue}
	// Stop ends the iteration; EachBlock then returns false.
	Stop = Action{kind: actionStop}
)

// Replace stores v in place of the current block. The value is masked like
// a SetBlock write.
func Replace(v uint64) Action {
	return Action{kind: actionReplace, value: v}
}

// Value returns the replacement value and whether the action is a replacement.
func (a Action) Value() (uint64, bool) {
	return a.value, a.kind == actionReplace
}

func (a Action) String() string {
	switch a.kind {
	case actionStop:
		return "stop"
	case actionReplace:
		return "replace"
	default:
		return "continue"
	}
}
