package extract

import "strings"

// Document is a resume or job description prepared for the strategies.
type Document struct {
	Text  string
	Lines []string
	Lower string
}

func NewDocument(text string) *Document {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}

	return &Document{
		Text:  text,
		Lines: lines,
		Lower: strings.ToLower(text),
	}
}

// Strategy extracts a single field value. The boolean reports success.
type Strategy[T any] interface {
	Name() string
	Extract(doc *Document) (T, bool)
}

type strategyFunc[T any] struct {
	name string
	fn   func(doc *Document) (T, bool)
}

// NewStrategy wraps fn as a named Strategy.
func NewStrategy[T any](name string, fn func(doc *Document) (T, bool)) Strategy[T] {
	return &strategyFunc[T]{name: name, fn: fn}
}

func (s *strategyFunc[T]) Name() string { return s.name }

func (s *strategyFunc[T]) Extract(doc *Document) (T, bool) { return s.fn(doc) }

// First runs strategies in order and returns the value of the first that succeeds
// together with its name.
func First[T any](doc *Document, strategies []Strategy[T]) (T, string, bool) {
	for _, s := range strategies {
		if v, ok := s.Extract(doc); ok {
			return v, s.Name(), true
		}
	}

	var zero T
	return zero, "", false
}

// Accumulator adds values to a list collected by earlier accumulators.
type Accumulator interface {
	Name() string
	Accumulate(doc *Document, found []string) []string
}

type accumulatorFunc struct {
	name string
	fn   func(doc *Document, found []string) []string
}

func NewAccumulator(name string, fn func(doc *Document, found []string) []string) Accumulator {
	return &accumulatorFunc{name: name, fn: fn}
}

func (a *accumulatorFunc) Name() string { return a.name }

func (a *accumulatorFunc) Accumulate(doc *Document, found []string) []string {
	return a.fn(doc, found)
}

// Collect runs every accumulator in order over the same list.
func Collect(doc *Document, accumulators []Accumulator) []string {
	var found []string
	for _, a := range accumulators {
		found = a.Accumulate(doc, found)
	}
	return found
}
