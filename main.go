// Shepherd - a pastoral ministry organizer for the command line.
package main

import (
	"os"

	"github.com/shepherd-cli/shepherd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
