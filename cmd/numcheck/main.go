// Command numcheck checks a linear system stored as JSON.
//
// Usage:
//
//	numcheck [flags] problem.json
//	numcheck [flags] -          (read from stdin)
//
// The input holds the coefficient matrix and, optionally, a candidate
// solution and right-hand side:
//
//	{"a": [[3, -1], [-1, 3]], "x": [1, 1], "b": [2, 2]}
//
// Each field is a number or nested lists of numbers; the nesting depth sets
// the dimension count, so a 1-D or 3-D "a" is accepted and reported as an
// invalid matrix rather than rejected while decoding. -sparse converts a 2-D
// "a" only.
//
// numcheck prints whether A is diagonally dominant and, when both x and b
// are present, the residual norm ||A·x - b||. Arguments that cannot be
// evaluated are reported as "invalid (reason)" and do not change the exit
// status; unreadable or malformed input (ragged lists, non-numbers) exits
// with status 1. -h prints usage and exits with status 0.
//
// Examples:
//
//	numcheck system.json
//	numcheck -weak system.json
//	numcheck -sparse -json system.json
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/katalvlaran/numcheck/check"
	"github.com/katalvlaran/numcheck/matrix"
)

// problem is the decoded input file. Fields stay raw until arrayFromJSON
// infers their dimension count.
type problem struct {
	A json.RawMessage `json:"a"`
	X json.RawMessage `json:"x,omitempty"`
	B json.RawMessage `json:"b,omitempty"`
}

// result is the -json output shape. Invalid fields are reported as strings
// in Error* and leave the value nil.
type result struct {
	Dominant      *bool    `json:"dominant"`
	DominantError string   `json:"dominant_error,omitempty"`
	FirstViolator *int     `json:"first_violation,omitempty"`
	Residual      *float64 `json:"residual,omitempty"`
	ResidualError string   `json:"residual_error,omitempty"`
}

type config struct {
	sparse  bool
	weak    bool
	jsonOut bool
	path    string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("numcheck: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("%v", err)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("numcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.sparse, "sparse", false, "store A in compressed sparse column form before checking")
	fs.BoolVar(&cfg.weak, "weak", false, "accept rows where |a_ii| equals the off-diagonal sum")
	fs.BoolVar(&cfg.jsonOut, "json", false, "print results as JSON")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: numcheck [flags] problem.json|-\n\n")
		fmt.Fprintf(stderr, "Checks diagonal dominance of A and the residual norm of A·x = b.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return cfg, errors.New("expected exactly one input file")
	}
	cfg.path = fs.Arg(0)

	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	in := stdin
	if cfg.path != "-" {
		f, err := os.Open(cfg.path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var p problem
	dec := json.NewDecoder(in)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return fmt.Errorf("decode %s: %w", cfg.path, err)
	}

	res, err := evaluate(p, cfg)
	if err != nil {
		return err
	}

	if cfg.jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	return printTable(stdout, res, present(p.X) && present(p.B))
}

// evaluate builds the containers and runs both checks. Only container
// construction errors (missing a, ragged lists) are returned; invalid-input
// outcomes are recorded in the result.
func evaluate(p problem, cfg config) (result, error) {
	var res result

	if !present(p.A) {
		return res, errors.New("matrix a: missing")
	}
	dense, err := arrayFromJSON(p.A)
	if err != nil {
		return res, fmt.Errorf("matrix a: %w", err)
	}
	var a any = dense
	if cfg.sparse && dense.Ndim() == 2 {
		d, err := dense.AsDense()
		if err != nil {
			return res, fmt.Errorf("matrix a: %w", err)
		}
		if a, err = matrix.CSCFromDense(d); err != nil {
			return res, fmt.Errorf("matrix a: %w", err)
		}
	}

	var opts []check.Option
	if cfg.weak {
		opts = append(opts, check.WithNonStrict())
	}
	rep, err := check.Dominance(a, opts...)
	if err != nil {
		res.DominantError = err.Error()
	} else {
		res.Dominant = &rep.Dominant
		if rep.FirstViolation >= 0 {
			res.FirstViolator = &rep.FirstViolation
		}
	}

	if present(p.X) && present(p.B) {
		x, err := arrayFromJSON(p.X)
		if err != nil {
			return res, fmt.Errorf("vector x: %w", err)
		}
		b, err := arrayFromJSON(p.B)
		if err != nil {
			return res, fmt.Errorf("vector b: %w", err)
		}
		norm, err := check.ResidualNorm(a, x, b)
		if err != nil {
			res.ResidualError = err.Error()
		} else {
			res.Residual = &norm
		}
	}

	return res, nil
}

func printTable(w io.Writer, res result, withResidual bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	switch {
	case res.Dominant == nil:
		fmt.Fprintf(tw, "dominant\tinvalid (%s)\n", res.DominantError)
	case res.FirstViolator != nil:
		fmt.Fprintf(tw, "dominant\t%t (row %d)\n", *res.Dominant, *res.FirstViolator)
	default:
		fmt.Fprintf(tw, "dominant\t%t\n", *res.Dominant)
	}

	if withResidual {
		if res.Residual == nil {
			fmt.Fprintf(tw, "residual\tinvalid (%s)\n", res.ResidualError)
		} else {
			fmt.Fprintf(tw, "residual\t%.8g\n", *res.Residual)
		}
	}

	return tw.Flush()
}
