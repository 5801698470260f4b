// Command diskspace reports per-directory disk usage.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/diskspace/internal/cli"
)

// version can be overridden with -ldflags "-X main.version=1.0.0".
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
