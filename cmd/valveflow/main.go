// Command valveflow answers the valve puzzle for one agent and for two
// cooperating agents, reading the network from a file or stdin.
//
//	valveflow solve input.txt
//	valveflow solve --workers 4 --duo-minutes 26 < input.txt
//	valveflow paths input.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "valveflow:", err)
		os.Exit(1)
	}
}
