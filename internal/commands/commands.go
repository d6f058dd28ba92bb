// Package commands runs developer console lines as subcommands with their own flag sets.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrEmpty   = errors.New("missing command")
	ErrUnknown = errors.New("unknown command")
	ErrUsage   = errors.New("usage")
)

// Command is a subcommand with its own flags. Run receives the positional arguments left after
// flag parsing.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds subcommands by name.
type Registry struct {
	cmds map[string]*Command
}

func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. A nil fs gets an empty flag set. Flag errors are returned from
// Execute instead of being printed.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func(args []string) error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	fs.SetOutput(io.Discard)
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Names returns the registered command names in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Usage returns the one-line usage of name.
func (r *Registry) Usage(name string) (string, bool) {
	c, ok := r.cmds[name]
	if !ok {
		return "", false
	}
	return c.Usage, true
}

// Parse splits a console line into tokens. A leading "cmd" token is accepted and dropped.
func Parse(line string) []string {
	fields := strings.Fields(line)
	if len(fields) > 0 && fields[0] == "cmd" {
		return fields[1:]
	}
	return fields
}

// Execute runs the subcommand in args[0] with args[1:] as flag and positional arguments.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrEmpty
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, args[0])
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	if err := cmd.Run(cmd.FlagSet.Args()); err != nil {
		if errors.Is(err, ErrUsage) {
			return fmt.Errorf("%w: %s", ErrUsage, cmd.Usage)
		}
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return nil
}

// Floats parses every argument as a float32. It returns ErrUsage when any is malformed.
func Floats(args []string) ([]float32, error) {
	out := make([]float32, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, ErrUsage
		}
		out[i] = float32(v)
	}
	return out, nil
}

// Toggle registers a command that switches a boolean with --show and --hide.
func (r *Registry) Toggle(name string, set func(bool)) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	show := fs.Bool("show", false, "show")
	hide := fs.Bool("hide", false, "hide")
	r.Register(name, name+" --show|--hide", fs, func(args []string) error {
		// Flag state persists between runs of the same set.
		defer func() { *show, *hide = false, false }()
		if *show == *hide || len(args) > 0 {
			return ErrUsage
		}
		set(*show)
		return nil
	})
}
