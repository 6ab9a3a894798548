package nonempty

import "fmt"

// Container is the capability tag shared by every wrapper in this package.
// The unexported method keeps the interface sealed: only this package can
// mint implementations, so holding a Container proves the non-empty
// invariant and downstream dispatch may skip its own emptiness checks.
type Container interface {
	fmt.Stringer

	// Len reports the element count, at least 1 for every reachable instance.
	Len() int

	nonEmpty()
}

var (
	_ Container = Vector[int]{}
	_ Container = Text{}
)
