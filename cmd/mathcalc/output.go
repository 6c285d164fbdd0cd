// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/mathcalc/calculator"
	"gopkg.in/yaml.v3"
)

// report is the structured form of one evaluation.
type report struct {
	Operation string   `json:"operation" yaml:"operation"`
	Args      []string `json:"args" yaml:"args"`
	Result    any      `json:"result" yaml:"result"`
}

// opInfo is the structured form of one registry entry.
type opInfo struct {
	Name  string `json:"name" yaml:"name"`
	Arity int    `json:"arity" yaml:"arity"`
}

// resultValue converts r to a value both encoders render as a scalar.
// Values with no native scalar form (huge integers, NaN, ±Inf) become strings.
func resultValue(r calculator.Result) any {
	switch r.Kind() {
	case calculator.KindBool:
		return r.Bool()
	case calculator.KindBigInt:
		if b := r.BigInt(); b.IsInt64() {
			return b.Int64()
		}
		return r.String()
	}

	n := r.Number()
	if n.IsInt() {
		return n.Int64()
	}
	if f := n.Float64(); !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}

	return n.String()
}

// encode writes v in the given format; text uses fallback.
func encode(w io.Writer, format string, v any, text string) error {
	switch format {
	case formatJSON:
		return json.NewEncoder(w).Encode(v)
	case formatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		_, err := fmt.Fprintln(w, text)
		return err
	}
}
