// Command torsion reduces torsion-pendulum measurements: it fits torsion
// coefficients, runs whole experiments from TOML files and converts result
// tables between CSV and LaTeX.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; it only provides defaults for TORSION_* variables
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
