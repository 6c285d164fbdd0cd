// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/mathcalc/calculator"
)

var (
	errUsage    = errors.New("usage: mathcalc [flags] <operation> <args...> | mathcalc ops")
	errMismatch = errors.New("result does not match expectation")
)

// Run evaluates the operation named in cfg.Args and writes the result to out.
// Diagnostics go to logOut through slog.
func Run(cfg Config, out, logOut io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	if logOut == nil {
		logOut = io.Discard
	}
	lvl, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: lvl}))

	if len(cfg.Args) == 0 {
		return errUsage
	}
	if cfg.Args[0] == "ops" {
		return listOperations(out, cfg.Format)
	}

	op, err := calculator.ParseOperation(cfg.Args[0])
	if err != nil {
		return err
	}
	raw := cfg.Args[1:]
	nums := make([]calculator.Number, len(raw))
	for i, s := range raw {
		if nums[i], err = calculator.ParseNumber(s); err != nil {
			return err
		}
	}

	calc := calculator.New(
		calculator.WithRelTolerance(cfg.RelTol),
		calculator.WithAbsTolerance(cfg.AbsTol),
	)
	logger.Debug("evaluate", "op", op, "args", raw)
	r, err := calc.Apply(op, nums...)
	if err != nil {
		logger.Error("evaluation failed", "op", op, "args", raw, "err", err)
		return err
	}
	logger.Info("evaluated", "op", op, "result", r.String())

	rep := report{Operation: string(op), Args: raw, Result: resultValue(r)}
	if err := encode(out, cfg.Format, rep, r.String()); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	if cfg.Expect == "" {
		return nil
	}
	ok, err := matches(calc, r, cfg.Expect)
	if err != nil {
		return err
	}
	if !ok {
		logger.Warn("expectation failed", "op", op, "got", r.String(), "want", cfg.Expect)
		return fmt.Errorf("%w: got %s, want %s", errMismatch, r, cfg.Expect)
	}

	return nil
}

// matches compares r with the textual expectation want. Float results use
// the calculator's tolerances; integers and booleans compare exactly.
func matches(calc *calculator.Calculator, r calculator.Result, want string) (bool, error) {
	want = strings.TrimSpace(want)
	switch r.Kind() {
	case calculator.KindBool:
		b, err := strconv.ParseBool(want)
		if err != nil {
			return false, fmt.Errorf("%w: %q is not a boolean", calculator.ErrBadInput, want)
		}
		return b == r.Bool(), nil
	case calculator.KindBigInt:
		v, ok := new(big.Int).SetString(want, 10)
		if !ok {
			return false, fmt.Errorf("%w: %q is not an integer", calculator.ErrBadInput, want)
		}
		return v.Cmp(r.BigInt()) == 0, nil
	}

	n, err := calculator.ParseNumber(want)
	if err != nil {
		return false, err
	}

	return calc.Equal(r.Number(), n), nil
}

func listOperations(out io.Writer, format string) error {
	ops := calculator.Operations()
	infos := make([]opInfo, len(ops))
	var text strings.Builder
	for i, op := range ops {
		infos[i] = opInfo{Name: string(op), Arity: op.Arity()}
		fmt.Fprintf(&text, "%-10s %d\n", op, op.Arity())
	}

	return encode(out, format, infos, strings.TrimSuffix(text.String(), "\n"))
}
