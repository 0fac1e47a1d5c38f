// Package main is a command-line tool to classify, convert and run finite
// automata described in YAML.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	automaton "github.com/geange/fsa"

	"gopkg.in/yaml.v2"
)

type Opts struct {
	in  string
	out string
}

func main() {

	opts := &Opts{}
	flag.StringVar(&opts.in, "f", "-", "automaton file, - for stdin")
	flag.StringVar(&opts.out, "o", "-", "output file, - for stdout")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [-f file] [-o file] classify|eps|dfa|convert|table|accept WORD...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := opts.run(flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func (opts *Opts) run(args []string) error {
	if len(args) == 0 {
		flag.Usage()
		return errors.New("missing command")
	}

	in := os.Stdin
	if opts.in != "-" {
		f, err := os.Open(opts.in)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	a, err := Load(in)
	if err != nil {
		return err
	}
	log.Printf("loaded %d states, %d transitions", a.GetNumStates(), a.GetNumTransitions())

	x, err := Execute(a, args[0], args[1:])
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if opts.out != "-" {
		f, err := os.Create(opts.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	bs, err := yaml.Marshal(x)
	if err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}

// Load reads a YAML Document.
func Load(r io.Reader) (*automaton.Automaton, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var d Document
	if err := yaml.UnmarshalStrict(bs, &d); err != nil {
		return nil, err
	}
	return d.Automaton()
}

// Execute runs one command and returns the value to print.
func Execute(a *automaton.Automaton, cmd string, args []string) (interface{}, error) {
	switch cmd {
	case "classify":
		c := automaton.Classify(a)
		return &ClassDoc{
			Kind:       c.Kind().String(),
			HasEpsilon: c.HasEpsilon,
			IsDFA:      c.IsDFA,
			Complete:   automaton.IsComplete(a),
		}, nil
	case "eps":
		r, err := automaton.RemoveEpsilons(a)
		if err != nil {
			return nil, err
		}
		return NewDocument(r), nil
	case "dfa":
		r, err := automaton.Determinize(a)
		if err != nil {
			return nil, err
		}
		log.Printf("determinized into %d states", r.GetNumStates())
		return NewDocument(r), nil
	case "convert":
		r, err := automaton.ToDFA(a)
		if err != nil {
			return nil, err
		}
		log.Printf("converted into %d states", r.GetNumStates())
		return NewDocument(r), nil
	case "table":
		table, err := automaton.BuildSubsetTable(a)
		if err != nil {
			return nil, err
		}
		return NewTableDoc(table), nil
	case "accept":
		if len(args) == 0 {
			args = []string{""}
		}
		runs := make([]*RunDoc, 0, len(args))
		for _, word := range args {
			ok, trace := automaton.Accepts(a, word)
			runs = append(runs, NewRunDoc(word, ok, trace))
		}
		return runs, nil
	}
	return nil, fmt.Errorf("unknown command '%s'", cmd)
}
