// main holds the entry logic for the gitsleuth CLI.
package main

import (
	"fmt"
	"os"

	"github.com/gitsleuth/gitsleuth/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
