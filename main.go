package main

import (
	"github.com/joshyou/comp-bio/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
