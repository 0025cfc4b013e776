// Runs the digest dispatch core from the command line
package main

import (
	"github.com/digestbridge/digestbridge/cmd"
	_ "github.com/digestbridge/digestbridge/cmd/all" // import all commands
)

func main() {
	cmd.Main()
}
