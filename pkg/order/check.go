package order

import (
	"fmt"

	"github.com/matzehuels/toporder/pkg/errors"
)

// InvariantViolation describes a visible edge whose endpoints are out of
// order, or which touches an unindexed node.
type InvariantViolation[N comparable] struct {
	From, To           N
	FromIndex, ToIndex int
	// Backward is set when the violation was found through the
	// predecessor view.
	Backward  bool
	Unindexed bool
}

func (v *InvariantViolation[N]) Error() string {
	view := "forward"
	if v.Backward {
		view = "backward"
	}
	if v.Unindexed {
		return fmt.Sprintf("%s edge %v->%v touches an unindexed node", view, v.From, v.To)
	}
	return fmt.Sprintf("%s edge %v->%v has index %d >= %d", view, v.From, v.To, v.FromIndex, v.ToIndex)
}

// CheckAll verifies index(u) < index(v) for every visible edge (u, v), once
// through the successor view and once through the predecessor view. The
// first violation is returned as an [errors.ErrCodeStateInvariant] error
// wrapping an [*InvariantViolation].
func CheckAll[N comparable](m *Maintainer[N]) error {
	for _, u := range m.ForwardKeys() {
		for v := range m.Successors(u) {
			if err := m.checkEdge(u, v, false); err != nil {
				return err
			}
		}
	}
	for _, v := range m.BackwardKeys() {
		for u := range m.Predecessors(v) {
			if err := m.checkEdge(u, v, true); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Maintainer[N]) checkEdge(u, v N, backward bool) error {
	iu, okU := m.index[u]
	iv, okV := m.index[v]
	if okU && okV && iu < iv {
		return nil
	}
	violation := &InvariantViolation[N]{
		From: u, To: v,
		FromIndex: iu, ToIndex: iv,
		Backward:  backward,
		Unindexed: !okU || !okV,
	}
	return errors.Wrap(errors.ErrCodeStateInvariant, violation, "order invariant broken")
}
