package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/parse"
)

var errDuoMinutes = errors.New("--duo-minutes takes one or two values")

// readNetwork parses the file named by args[0], or stdin when absent or "-".
func readNetwork(cmd *cobra.Command, args []string) (*core.Network, error) {
	var r io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, name = f, args[0]
	}

	n, err := parse.Network(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return n, nil
}
