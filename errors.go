package kmst

import (
	"errors"
	"fmt"
)

var (
	// ErrDataFormat indicates a missing, truncated or inconsistent instance file.
	ErrDataFormat = errors.New("kmst: malformed instance data")
	// ErrUnknownFormulation indicates an unrecognized formulation tag.
	ErrUnknownFormulation = errors.New("kmst: formulation not recognized")
	// ErrUnknownSolver indicates an unrecognized or unavailable solver backend.
	ErrUnknownSolver = errors.New("kmst: solver not recognized")
	// ErrNotSolved indicates the engine terminated without an optimal solution.
	ErrNotSolved = errors.New("kmst: no optimal solution")
	// ErrPipelineOrder indicates the build steps were called out of order.
	ErrPipelineOrder = errors.New("kmst: model build steps called out of order")
)

// StructuralError reports a solved selection that is not a valid k-vertex
// tree. It signals a defect in the formulation, not in the instance data.
type StructuralError struct {
	Instance    string
	K           int
	Nodes       int
	Edges       int
	IsTree      bool
	IsConnected bool
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("kmst: solution for %s is not a valid tree on k=%d vertices (nodes=%d, edges=%d, tree=%v, connected=%v)",
		e.Instance, e.K, e.Nodes, e.Edges, e.IsTree, e.IsConnected)
}
