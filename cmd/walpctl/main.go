// Command walpctl runs the area and length quantity calculator in a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/guttosm/area-length-service/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
