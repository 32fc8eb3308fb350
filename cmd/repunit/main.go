// Command repunit finds the shortest arithmetic expression over repeated-digit
// constants for every result from 0 to 1000.
package main

import "github.com/mesh-intelligence/repunit/internal/cli"

func main() {
	cli.Execute()
}
