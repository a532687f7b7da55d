// Command scout ranks a title catalog against free-text queries.
package main

import (
	"os"

	"github.com/custodia-labs/scout/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
