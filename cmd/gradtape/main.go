// Package main provides the gradtape CLI.
//
// Usage:
//
//	gradtape version
//	gradtape reduce [-op sum|mean|max] [-v] -f input.yaml
//
// The input document holds a nested list and an optional seed:
//
//	data: [[1, 2, 3], [4, 5, 6]]
//	seed: 1.0
//
// reduce traces the tensor, reduces its trailing axis, averages the result
// to a scalar and runs the backward pass seeded with seed, printing the
// reduction and the gradient of the input.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/gradtape/autodiff"
	"github.com/born-ml/gradtape/tensor"
)

const version = "v0.0.1-dev"

// input is the YAML document read by reduce.
type input struct {
	Data any      `yaml:"data"`
	Seed *float64 `yaml:"seed"`
}

type reduceFunc func(*autodiff.Tensor[*autodiff.OwnedTape]) *autodiff.Tensor[*autodiff.OwnedTape]

var reductions = map[string]reduceFunc{
	"sum":  autodiff.SumLast[*autodiff.OwnedTape],
	"mean": autodiff.MeanLast[*autodiff.OwnedTape],
	"max":  autodiff.MaxLast[*autodiff.OwnedTape],
}

func main() {
	logger, level := newLogger(os.Stderr)
	if err := run(os.Args[1:], os.Stdin, os.Stdout, logger, level); err != nil {
		logger.Error("gradtape failed", "error", err)
		os.Exit(1)
	}
}

// newLogger returns a text logger on w whose level is controlled by the
// returned LevelVar (info by default).
func newLogger(w io.Writer) (*slog.Logger, *slog.LevelVar) {
	level := new(slog.LevelVar)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), level
}

func run(args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger, level *slog.LevelVar) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "gradtape %s\n", version)
		return nil
	case "reduce":
		return runReduce(args[1:], stdin, stdout, logger, level)
	default:
		usage(stdout)
		return errors.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "gradtape - reverse-mode autodiff core")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  reduce     Reduce the trailing axis of a YAML tensor and print its gradient")
}

func runReduce(args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger, level *slog.LevelVar) error {
	fs := flag.NewFlagSet("reduce", flag.ContinueOnError)
	fs.SetOutput(stdout)
	file := fs.String("f", "-", "input YAML file (- for stdin)")
	opName := fs.String("op", "sum", "reduction: sum, mean or max")
	verbose := fs.Bool("v", false, "log tape statistics")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		level.Set(slog.LevelDebug)
	}

	reduce, ok := reductions[*opName]
	if !ok {
		return errors.Errorf("unknown reduction %q", *opName)
	}

	doc, err := readInput(*file, stdin)
	if err != nil {
		return err
	}

	x, err := autodiff.FromNested(doc.Data)
	if err != nil {
		return errors.Wrap(err, "parse data")
	}
	if x.Rank() == 0 {
		return errors.New("data must have rank >= 1")
	}
	seed := 1.0
	if doc.Seed != nil {
		seed = *doc.Seed
	}

	reduced := reduce(autodiff.Trace(x))
	loss := autodiff.Mean(reduced)
	logger.Debug("forward done", "op", *opName, "input_shape", x.Shape(), "ops", loss.Holder().NumOps())

	tape := autodiff.BackwardWithGrad(loss, tensor.Scalar(seed))
	logger.Debug("backward done", "gradients", tape.Len())

	fmt.Fprintf(stdout, "%s_last:\n%v\n", *opName, reduced)
	fmt.Fprintf(stdout, "mean: %g\n", loss.Item())
	fmt.Fprintf(stdout, "gradient:\n%v\n", autodiff.Gradient(tape, x))
	return nil
}

func readInput(path string, stdin io.Reader) (*input, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "open %s", path)
		}
		defer f.Close()
		r = f
	}

	var doc input
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode input")
	}
	if doc.Data == nil {
		return nil, errors.New("input has no data")
	}
	return &doc, nil
}
