// Command curve3 reads a curve description, evaluates every curve at a
// parameter and prints a summary.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"curve3"
)

const usage = `Usage: curve3 [flags] INPUT_FILE
       curve3 help

Flags:
  --error-policy={skip,panic}
        What the parser does when it finds an invalid record.
        skip: report the record and continue. The program fails if no
              valid curves are found.
        panic: fail on the first invalid record.
  --format={text,yaml,json}
        Output format of the report. (default text)
  --t=VALUE
        Parameter at which curves are evaluated. (default π/4)
  --log-level=LEVEL
        Minimum level of diagnostics written to stderr. (default warn)
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 1 && args[0] == "help" {
		fmt.Fprint(stdout, usage)
		return 0
	}

	fs := flag.NewFlagSet("curve3", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	policyFlag := fs.String("error-policy", "skip", "")
	format := fs.String("format", "text", "")
	t := fs.Float64("t", math.Pi/4, "")
	level := slog.LevelWarn
	fs.TextVar(&level, "log-level", level, "")

	if err := fs.Parse(args); err != nil {
		fmt.Fprint(stderr, usage)
		return fatal(stderr, fmt.Errorf("invalid CLI argument: %w", err))
	}
	switch fs.NArg() {
	case 0:
		return fatal(stderr, errors.New("no input file"))
	case 1:
	default:
		return fatal(stderr, errors.New("too many arguments"))
	}
	policy, err := curve3.ParseErrorPolicy(*policyFlag)
	if err != nil {
		fmt.Fprint(stderr, usage)
		return fatal(stderr, err)
	}
	encode, ok := encoders[*format]
	if !ok {
		fmt.Fprint(stderr, usage)
		return fatal(stderr, fmt.Errorf("invalid format %q", *format))
	}

	curves, err := curve3.Parse(fs.Arg(0), policy,
		curve3.WithLogger(curve3.NewTextLogger(stderr, level)))
	if err != nil {
		return fatal(stderr, err)
	}
	if len(curves) == 0 {
		return fatal(stderr, errors.New("no valid curves found"))
	}

	if err := encode(stdout, curve3.Summarize(curves, *t)); err != nil {
		return fatal(stderr, fmt.Errorf("write report: %w", err))
	}
	return 0
}

func fatal(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "Application panicked with error message %q\n", err.Error())
	return 1
}

var encoders = map[string]func(io.Writer, curve3.Report) error{
	"text": func(w io.Writer, r curve3.Report) error {
		return r.WriteText(w)
	},
	"yaml": func(w io.Writer, r curve3.Report) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	},
	"json": func(w io.Writer, r curve3.Report) error {
		enc := gojson.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	},
}
