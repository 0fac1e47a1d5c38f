package main

import (
	"fmt"

	automaton "github.com/geange/fsa"
)

// Document is the YAML form of an automaton.
type Document struct {
	States      []StateDoc      `yaml:"states"`
	Transitions []TransitionDoc `yaml:"transitions,omitempty"`
}

type StateDoc struct {
	ID     int  `yaml:"id"`
	Accept bool `yaml:"accept,omitempty"`
}

// TransitionDoc with empty symbols is an epsilon transition.
type TransitionDoc struct {
	From    int    `yaml:"from"`
	To      int    `yaml:"to"`
	Symbols string `yaml:"symbols,omitempty"`
}

func (d *Document) Automaton() (*automaton.Automaton, error) {
	a := automaton.NewAutomaton()
	for _, s := range d.States {
		if err := a.AddState(s.ID); err != nil {
			return nil, err
		}
		if err := a.SetAccept(s.ID, s.Accept); err != nil {
			return nil, err
		}
	}
	for _, t := range d.Transitions {
		if err := a.AddTransitionLabel(t.From, t.To, t.Symbols); err != nil {
			return nil, fmt.Errorf("transition %d -> %d: %w", t.From, t.To, err)
		}
	}
	if !a.HasStart() {
		return nil, automaton.ErrNoStartState
	}
	return a, nil
}

func NewDocument(a *automaton.Automaton) *Document {
	d := &Document{}
	for _, s := range a.States() {
		d.States = append(d.States, StateDoc{ID: s, Accept: a.IsAccept(s)})
	}
	for _, t := range a.Transitions() {
		d.Transitions = append(d.Transitions, TransitionDoc{From: t.Source, To: t.Dest, Symbols: t.Label()})
	}
	return d
}

type ClassDoc struct {
	Kind       string `yaml:"kind"`
	HasEpsilon bool   `yaml:"hasEpsilon"`
	IsDFA      bool   `yaml:"isDFA"`
	Complete   bool   `yaml:"complete"`
}

type StepDoc struct {
	From   int    `yaml:"from"`
	To     int    `yaml:"to"`
	Symbol string `yaml:"symbol,omitempty"`
}

type RunDoc struct {
	Word     string    `yaml:"word"`
	Accepted bool      `yaml:"accepted"`
	Consumed int       `yaml:"consumed"`
	Trace    []StepDoc `yaml:"trace"`
}

func NewRunDoc(word string, accepted bool, trace automaton.Trace) *RunDoc {
	r := &RunDoc{
		Word:     word,
		Accepted: accepted,
		Consumed: trace.Consumed(),
		Trace:    []StepDoc{},
	}
	for _, s := range trace {
		step := StepDoc{From: s.Transition.Source, To: s.Transition.Dest}
		if !s.IsEpsilon() {
			step.Symbol = string(s.Symbol)
		}
		r.Trace = append(r.Trace, step)
	}
	return r
}

type RowDoc struct {
	State  int            `yaml:"state"`
	Set    []int          `yaml:"set"`
	Accept bool           `yaml:"accept,omitempty"`
	Next   map[string]int `yaml:"next,omitempty"`
}

func NewTableDoc(table *automaton.SubsetTable) []RowDoc {
	rows := make([]RowDoc, 0, len(table.Rows))
	for _, row := range table.Rows {
		r := RowDoc{
			State:  row.State,
			Set:    row.Set.GetArray(),
			Accept: row.Accept,
			Next:   make(map[string]int, len(table.Alphabet)),
		}
		for j, c := range table.Alphabet {
			r.Next[string(c)] = table.Rows[row.Next[j]].State
		}
		rows = append(rows, r)
	}
	return rows
}
