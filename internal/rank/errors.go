package rank

import (
	"fmt"

	"github.com/go-faster/errors"
)

var (
	// ErrEmptyGraph is returned by the solver when the graph has no nodes.
	// Callers should treat it as "nothing to summarize".
	ErrEmptyGraph = errors.New("graph has no nodes")

	// ErrInvalidEdge matches every *InvalidEdgeError.
	ErrInvalidEdge = errors.New("invalid edge")

	// ErrInvalidOption is wrapped by NewRanker when an option is out of range.
	ErrInvalidOption = errors.New("invalid ranker option")
)

// InvalidEdgeError は自己ループまたは非正の重みのエッジ追加を表す
type InvalidEdgeError struct {
	From   string
	To     string
	Weight float64
	Reason string
}

func (e *InvalidEdgeError) Error() string {
	return fmt.Sprintf("invalid edge %q -> %q (weight %g): %s", e.From, e.To, e.Weight, e.Reason)
}

// Is reports whether target is ErrInvalidEdge.
func (e *InvalidEdgeError) Is(target error) bool {
	return target == ErrInvalidEdge
}
