// Package workload replays scripted or generated operation sequences against
// arraypq queues and compares the strategies against each other.
package workload

import (
	"fmt"
	"strings"
)

// OpKind identifies a PriorityQueue operation.
type OpKind int

// Operation kinds, one per PriorityQueue method a workload can call.
const (
	Insert OpKind = iota
	Remove
	Peek
	Delete
	Contains
	Clear
)

var opNames = [...]string{
	Insert:   "insert",
	Remove:   "remove",
	Peek:     "peek",
	Delete:   "delete",
	Contains: "contains",
	Clear:    "clear",
}

func (k OpKind) String() string {
	if k < 0 || int(k) >= len(opNames) {
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
	return opNames[k]
}

// takesPriority reports whether the operation needs a priority argument.
func (k OpKind) takesPriority() bool {
	return k == Insert || k == Delete || k == Contains
}

// ParseOpKind returns the OpKind named by s.
func ParseOpKind(s string) (OpKind, bool) {
	s = strings.ToLower(s)
	for k, name := range opNames {
		if name == s {
			return OpKind(k), true
		}
	}
	return 0, false
}

// Op is a single step of a workload. Priority is ignored by kinds that take
// no argument.
type Op struct {
	Kind     OpKind
	Priority int
}

func (o Op) String() string {
	if o.Kind.takesPriority() {
		return fmt.Sprintf("%s %d", o.Kind, o.Priority)
	}
	return o.Kind.String()
}

// Task is the element replayed through a queue. IDs are handed out in
// insertion order so the FIFO tie-break between equal priorities is visible
// in the results.
type Task struct {
	ID       int
	Priority int
}

// CompareTasks orders tasks by priority alone; lower values come first.
func CompareTasks(a, b Task) int {
	switch {
	case a.Priority < b.Priority:
		return -1
	case a.Priority > b.Priority:
		return 1
	default:
		return 0
	}
}

// Outcome records what one Op returned.
type Outcome struct {
	Op   Op
	Task Task // element returned by remove or peek
	OK   bool // the boolean result, or whether remove/peek found an element
	Size int  // queue size after the op
}

func (o Outcome) String() string {
	switch o.Op.Kind {
	case Remove, Peek:
		if !o.OK {
			return fmt.Sprintf("%s -> empty (size %d)", o.Op, o.Size)
		}
		return fmt.Sprintf("%s -> #%d/%d (size %d)", o.Op, o.Task.ID, o.Task.Priority, o.Size)
	case Clear:
		return fmt.Sprintf("%s (size %d)", o.Op, o.Size)
	default:
		return fmt.Sprintf("%s -> %t (size %d)", o.Op, o.OK, o.Size)
	}
}
