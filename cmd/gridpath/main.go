// Command gridpath runs the search suite on a preset or random grid and
// reports the best algorithm under a priority order.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
