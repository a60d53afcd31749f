// Command timeview fetches the time report from a running backend once and
// prints the same view the browser page renders.
package main

import (
	"fmt"
	"os"

	"github.com/bengobox/clock-service/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
