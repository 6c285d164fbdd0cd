// SPDX-License-Identifier: MIT

// Command mathcalc evaluates one calculator operation from the command line.
//
//	mathcalc [flags] <operation> <args...>
//	mathcalc ops
//
// Examples:
//
//	mathcalc divide 10 2            # 5
//	mathcalc -format json power 4 0.5
//	mathcalc -expect 0.3 add 0.1 0.2
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "%v\n\nFlags:\n", errUsage)
		flag.PrintDefaults()
	}
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:], os.Environ())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := Run(cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
