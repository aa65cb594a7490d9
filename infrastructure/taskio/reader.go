// Package taskio implements the line-delimited task-file reader
// (spec.md §6 stdin grammar), grounded on the field layout of
// _examples/original_source/src/search/tasks (version line, metric
// flag, variables with domains and axiom layers, mutex groups, initial
// state, goal conjunction, operators, axioms) — simplified to a
// whitespace-tokenized grammar sufficient to round-trip the data model
// in spec.md §3, not a byte-for-byte reproduction of the original
// binary-ish SAS+ format.
package taskio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/felixgeelhaar/planner-go/domain/task"
)

// Read parses a complete Task from r.
func Read(r io.Reader) (*task.Task, error) {
	sc := &scanner{s: bufio.NewScanner(r)}
	sc.s.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if err := sc.expectKeyword("version"); err != nil {
		return nil, err
	}
	if _, err := sc.nextInt(); err != nil {
		return nil, err
	}

	if err := sc.expectKeyword("metric"); err != nil {
		return nil, err
	}
	metricFlag, err := sc.nextInt()
	if err != nil {
		return nil, err
	}

	tk := &task.Task{Metric: metricFlag != 0}

	if tk.Variables, err = readVariables(sc); err != nil {
		return nil, err
	}
	if tk.MutexGroups, err = readMutexGroups(sc); err != nil {
		return nil, err
	}
	if tk.Initial, err = readInitial(sc, len(tk.Variables)); err != nil {
		return nil, err
	}
	if tk.Goal, err = readGoal(sc); err != nil {
		return nil, err
	}
	if tk.Operators, err = readOperators(sc); err != nil {
		return nil, err
	}
	if tk.Axioms, err = readAxioms(sc); err != nil {
		return nil, err
	}

	return tk, sc.err()
}

func readVariables(sc *scanner) ([]task.VariableInfo, error) {
	if err := sc.expectKeyword("variables"); err != nil {
		return nil, err
	}
	n, err := sc.nextInt()
	if err != nil {
		return nil, err
	}
	out := make([]task.VariableInfo, n)
	for i := 0; i < n; i++ {
		if err := sc.expectKeyword("var"); err != nil {
			return nil, err
		}
		name, err := sc.nextToken()
		if err != nil {
			return nil, err
		}
		domainSize, err := sc.nextInt()
		if err != nil {
			return nil, err
		}
		axiomLayer, err := sc.nextInt()
		if err != nil {
			return nil, err
		}
		out[i] = task.VariableInfo{Name: name, DomainSize: domainSize, AxiomLayer: axiomLayer}
	}
	return out, nil
}

func readMutexGroups(sc *scanner) ([][]task.Fact, error) {
	if err := sc.expectKeyword("mutex_groups"); err != nil {
		return nil, err
	}
	n, err := sc.nextInt()
	if err != nil {
		return nil, err
	}
	out := make([][]task.Fact, n)
	for i := 0; i < n; i++ {
		if err := sc.expectKeyword("mutex"); err != nil {
			return nil, err
		}
		k, err := sc.nextInt()
		if err != nil {
			return nil, err
		}
		facts := make([]task.Fact, k)
		for j := 0; j < k; j++ {
			if facts[j], err = sc.nextFact(); err != nil {
				return nil, err
			}
		}
		out[i] = facts
	}
	return out, nil
}

func readInitial(sc *scanner, numVars int) (task.State, error) {
	if err := sc.expectKeyword("initial"); err != nil {
		return nil, err
	}
	state := make(task.State, numVars)
	for i := 0; i < numVars; i++ {
		v, err := sc.nextInt()
		if err != nil {
			return nil, err
		}
		state[i] = v
	}
	return state, nil
}

func readGoal(sc *scanner) ([]task.Fact, error) {
	if err := sc.expectKeyword("goal"); err != nil {
		return nil, err
	}
	k, err := sc.nextInt()
	if err != nil {
		return nil, err
	}
	facts := make([]task.Fact, k)
	for i := 0; i < k; i++ {
		if facts[i], err = sc.nextFact(); err != nil {
			return nil, err
		}
	}
	return facts, nil
}

func readOperators(sc *scanner) ([]task.Operator, error) {
	if err := sc.expectKeyword("operators"); err != nil {
		return nil, err
	}
	n, err := sc.nextInt()
	if err != nil {
		return nil, err
	}
	out := make([]task.Operator, n)
	for i := 0; i < n; i++ {
		if err := sc.expectKeyword("operator"); err != nil {
			return nil, err
		}
		name, err := sc.nextToken()
		if err != nil {
			return nil, err
		}
		if err := sc.expectKeyword("cost"); err != nil {
			return nil, err
		}
		cost, err := sc.nextInt()
		if err != nil {
			return nil, err
		}

		if err := sc.expectKeyword("precondition"); err != nil {
			return nil, err
		}
		pk, err := sc.nextInt()
		if err != nil {
			return nil, err
		}
		precond := make([]task.Fact, pk)
		for j := 0; j < pk; j++ {
			if precond[j], err = sc.nextFact(); err != nil {
				return nil, err
			}
		}

		if err := sc.expectKeyword("effects"); err != nil {
			return nil, err
		}
		ek, err := sc.nextInt()
		if err != nil {
			return nil, err
		}
		effects := make([]task.Effect, ek)
		for j := 0; j < ek; j++ {
			ck, err := sc.nextInt()
			if err != nil {
				return nil, err
			}
			cond := make([]task.Fact, ck)
			for c := 0; c < ck; c++ {
				if cond[c], err = sc.nextFact(); err != nil {
					return nil, err
				}
			}
			fact, err := sc.nextFact()
			if err != nil {
				return nil, err
			}
			effects[j] = task.Effect{Condition: cond, Fact: fact}
		}

		out[i] = task.Operator{Name: name, Precondition: precond, Effects: effects, Cost: cost}
	}
	return out, nil
}

func readAxioms(sc *scanner) ([]task.Axiom, error) {
	if err := sc.expectKeyword("axioms"); err != nil {
		return nil, err
	}
	n, err := sc.nextInt()
	if err != nil {
		return nil, err
	}
	out := make([]task.Axiom, n)
	for i := 0; i < n; i++ {
		if err := sc.expectKeyword("axiom"); err != nil {
			return nil, err
		}
		layer, err := sc.nextInt()
		if err != nil {
			return nil, err
		}
		ck, err := sc.nextInt()
		if err != nil {
			return nil, err
		}
		cond := make([]task.Fact, ck)
		for j := 0; j < ck; j++ {
			if cond[j], err = sc.nextFact(); err != nil {
				return nil, err
			}
		}
		head, err := sc.nextFact()
		if err != nil {
			return nil, err
		}
		out[i] = task.Axiom{Condition: cond, Head: head, Layer: layer}
	}
	return out, nil
}

// scanner tokenizes the input whitespace- and newline-delimited,
// buffering tokens one line at a time.
type scanner struct {
	s       *bufio.Scanner
	fields  []string
	readErr error
}

func (sc *scanner) fill() bool {
	for len(sc.fields) == 0 {
		if !sc.s.Scan() {
			return false
		}
		sc.fields = strings.Fields(sc.s.Text())
	}
	return true
}

func (sc *scanner) nextToken() (string, error) {
	if !sc.fill() {
		if err := sc.s.Err(); err != nil {
			sc.readErr = err
		}
		return "", fmt.Errorf("%w: unexpected end of task input", task.ErrMalformedTask)
	}
	tok := sc.fields[0]
	sc.fields = sc.fields[1:]
	return tok, nil
}

func (sc *scanner) expectKeyword(kw string) error {
	tok, err := sc.nextToken()
	if err != nil {
		return err
	}
	if tok != kw {
		return fmt.Errorf("%w: expected %q, got %q", task.ErrMalformedTask, kw, tok)
	}
	return nil
}

func (sc *scanner) nextInt() (int, error) {
	tok, err := sc.nextToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: expected integer, got %q", task.ErrMalformedTask, tok)
	}
	return n, nil
}

// nextFact parses one "var:val" token.
func (sc *scanner) nextFact() (task.Fact, error) {
	tok, err := sc.nextToken()
	if err != nil {
		return task.Fact{}, err
	}
	parts := strings.SplitN(tok, ":", 2)
	if len(parts) != 2 {
		return task.Fact{}, fmt.Errorf("%w: expected var:val fact, got %q", task.ErrMalformedTask, tok)
	}
	v, err1 := strconv.Atoi(parts[0])
	val, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return task.Fact{}, fmt.Errorf("%w: expected var:val fact, got %q", task.ErrMalformedTask, tok)
	}
	return task.Fact{Var: v, Val: val}, nil
}

func (sc *scanner) err() error {
	return sc.readErr
}
