// Package domain contains the core model for the task dependency graph.
package domain

import (
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

// Graph is the full set of tasks and their prerequisite relations. It is
// built once at startup and treated as immutable afterwards.
type Graph struct {
	tasks map[InternedString]Task
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{tasks: make(map[InternedString]Task)}
}

// AddTask adds a task to the graph. It returns ErrTaskAlreadyExists if a
// task with the same name is already present.
func (g *Graph) AddTask(t *Task) error {
	if _, exists := g.tasks[t.Name]; exists {
		return zerr.With(ErrTaskAlreadyExists, "task", t.Name.String())
	}
	g.tasks[t.Name] = *t
	return nil
}

// Task returns the task with the given name.
func (g *Graph) Task(name InternedString) (Task, bool) {
	t, ok := g.tasks[name]
	return t, ok
}

// TaskCount returns the number of tasks in the graph.
func (g *Graph) TaskCount() int {
	return len(g.tasks)
}

// Names returns all task names in lexical order.
func (g *Graph) Names() []string {
	names := make([]string, 0, len(g.tasks))
	for name := range g.tasks {
		names = append(names, name.String())
	}
	sort.Strings(names)
	return names
}

// Validate checks that every prerequisite exists and that the prerequisite
// relation is acyclic. It uses a three-color depth-first search; on a cycle
// the error carries the cycle path in its metadata.
func (g *Graph) Validate() error {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[InternedString]int, len(g.tasks))
	var path []InternedString

	var visit func(name InternedString) error
	visit = func(name InternedString) error {
		state[name] = visiting
		path = append(path, name)

		task := g.tasks[name]
		for _, pre := range task.Prerequisites {
			if _, exists := g.tasks[pre]; !exists {
				return zerr.With(zerr.With(ErrMissingPrerequisite,
					"task", name.String()),
					"prerequisite", pre.String())
			}
			switch state[pre] {
			case visiting:
				return zerr.With(ErrCycleDetected, "cycle", cyclePath(path, pre))
			case unvisited:
				if err := visit(pre); err != nil {
					return err
				}
			}
		}

		state[name] = done
		path = path[:len(path)-1]
		return nil
	}

	for name := range g.tasks {
		if state[name] == unvisited {
			if err := visit(name); err != nil {
				return err
			}
		}
	}
	return nil
}

// cyclePath renders the portion of path from the first occurrence of dep,
// closed by dep itself, e.g. "a -> b -> a".
func cyclePath(path []InternedString, dep InternedString) string {
	start := 0
	for i, node := range path {
		if node == dep {
			start = i
			break
		}
	}
	parts := make([]string, 0, len(path)-start+1)
	for _, node := range path[start:] {
		parts = append(parts, node.String())
	}
	parts = append(parts, dep.String())
	return strings.Join(parts, " -> ")
}

// Resolve returns the target's prerequisite closure in execution order: a
// depth-first post-order that follows each prerequisite list as declared
// and visits every task at most once. The target itself is last. It returns
// ErrUnknownTask if the target or any reachable prerequisite is missing.
//
// Resolve assumes Validate has been called on the graph; on a cyclic graph
// it terminates but the order is unspecified.
func (g *Graph) Resolve(target InternedString) ([]Task, error) {
	if _, ok := g.tasks[target]; !ok {
		return nil, zerr.With(ErrUnknownTask, "task", target.String())
	}

	visited := make(map[InternedString]bool)
	order := make([]Task, 0, len(g.tasks))

	var visit func(name InternedString) error
	visit = func(name InternedString) error {
		if visited[name] {
			return nil
		}
		task, ok := g.tasks[name]
		if !ok {
			return zerr.With(ErrUnknownTask, "task", name.String())
		}
		visited[name] = true
		for _, pre := range task.Prerequisites {
			if err := visit(pre); err != nil {
				return err
			}
		}
		order = append(order, task)
		return nil
	}

	if err := visit(target); err != nil {
		return nil, err
	}
	return order, nil
}
