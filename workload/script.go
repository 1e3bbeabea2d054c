package workload

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
)

// ScriptError reports a malformed line in a workload script.
type ScriptError struct {
	// Line is the 1-based line number
	Line int
	// Text is the offending line
	Text string
	// Reason explains what is wrong with it
	Reason string
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("script line %d (%q): %s", e.Line, e.Text, e.Reason)
}

// Parse reads a workload script, one operation per line:
//
//	insert 5
//	remove
//	peek
//	delete 5
//	contains 5
//	clear
//
// Blank lines and text after '#' are ignored.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		kind, ok := ParseOpKind(fields[0])
		if !ok {
			return nil, &ScriptError{Line: line, Text: scanner.Text(), Reason: "unknown operation"}
		}
		op := Op{Kind: kind}
		switch {
		case kind.takesPriority() && len(fields) != 2:
			return nil, &ScriptError{Line: line, Text: scanner.Text(), Reason: "expected one priority argument"}
		case !kind.takesPriority() && len(fields) != 1:
			return nil, &ScriptError{Line: line, Text: scanner.Text(), Reason: "unexpected argument"}
		case kind.takesPriority():
			p, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, &ScriptError{Line: line, Text: scanner.Text(), Reason: "priority is not an integer"}
			}
			op.Priority = p
		}
		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return ops, nil
}

// Generate returns n pseudo-random operations drawn from seed. Priorities are
// in [0, maxPriority]; a small range produces many ties. Inserts dominate so
// the queue fills up and exercises the capacity limit.
func Generate(seed int64, n, maxPriority int) []Op {
	if maxPriority < 0 {
		maxPriority = 0
	}
	r := rand.New(rand.NewSource(seed))
	ops := make([]Op, 0, n)
	for i := 0; i < n; i++ {
		var op Op
		switch x := r.Intn(100); {
		case x < 50:
			op.Kind = Insert
		case x < 75:
			op.Kind = Remove
		case x < 83:
			op.Kind = Peek
		case x < 90:
			op.Kind = Contains
		case x < 98:
			op.Kind = Delete
		default:
			op.Kind = Clear
		}
		if op.Kind.takesPriority() {
			op.Priority = r.Intn(maxPriority + 1)
		}
		ops = append(ops, op)
	}
	return ops
}
