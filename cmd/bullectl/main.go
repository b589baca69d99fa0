// Command bullectl manages bulle profiles and saved volumes from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/llehouerou/bulle/internal/state"
)

func main() {
	root := newRootCmd(func() (state.Interface, error) { return state.Open() })
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
