package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/zephyrtronium/shunt"
)

var cli struct {
	In     string   `short:"i" placeholder:"FILE" help:"Input file with one program per line, or - for stdin. Default stdin if no programs are given."`
	Format string   `short:"f" enum:"string,repr" default:"string" help:"Parse tree format (${enum})."`
	Tokens bool     `short:"t" help:"Print the tokens of each program."`
	Trace  bool     `help:"Log parser reductions to stderr."`
	Progs  []string `arg:"" optional:"" name:"program" help:"Programs to parse."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("shunt"),
		kong.Description(`Tokenize and parse programs like "let a = 2; -a ^ 2" and print their parse trees.`),
		kong.Configuration(kong.JSON, ".shunt.json", "~/.shunt.json"),
		kong.UsageOnError(),
	)
	log := zap.NewNop()
	if cli.Trace {
		l, err := zap.NewDevelopment()
		kctx.FatalIfErrorf(err)
		log = l
	}

	ins, err := inputs(cli.In, len(cli.Progs) == 0)
	kctx.FatalIfErrorf(err)
	for i, arg := range cli.Progs {
		ins = append(ins, input{name: "arg " + strconv.Itoa(i+1), src: arg})
	}

	p := printer{
		w:      os.Stdout,
		format: cli.Format,
		tokens: cli.Tokens,
		opts:   []shunt.ParseOption{shunt.Trace(log)},
	}
	err = p.run(ins)
	log.Sync()
	kctx.FatalIfErrorf(err)
}

// input is a program and a name to report it by.
type input struct {
	name string
	src  string
}

type printer struct {
	w      io.Writer
	format string
	tokens bool
	opts   []shunt.ParseOption
}

// run prints the parse of each input. Failures are reported inline and do not
// stop later inputs.
func (p *printer) run(ins []input) error {
	failed := 0
	for _, in := range ins {
		if err := p.print(in); err != nil {
			fmt.Fprintf(p.w, "%s: %v\n", in.name, err)
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d programs failed", failed, len(ins))
	}
	return nil
}

func (p *printer) print(in input) error {
	toks, err := shunt.Tokenize(in.src)
	if err != nil {
		return err
	}
	if p.tokens {
		fmt.Fprintln(p.w, toks)
	}
	e, err := shunt.ParseProgram(toks, p.opts...)
	if err != nil {
		return err
	}
	switch p.format {
	case "repr":
		fmt.Fprintln(p.w, repr.String(e, repr.Indent("  "), repr.OmitEmpty(true)))
	default:
		fmt.Fprintln(p.w, e)
	}
	return nil
}

// inputs reads programs from the named file, or from stdin if the name is -
// or empty and std is set.
func inputs(name string, std bool) ([]input, error) {
	var r io.Reader
	switch {
	case name != "" && name != "-":
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		r = f
	case name == "-", std:
		name = "stdin"
		r = os.Stdin
	default:
		return nil, nil
	}
	return readLines(name, r)
}

// readLines reads one program per non-blank line.
func readLines(name string, r io.Reader) ([]input, error) {
	var ins []input
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		ins = append(ins, input{name: name + ":" + strconv.Itoa(n), src: line})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return ins, nil
}
