// cubecross - CLI for planning the opening cross of a 3x3x3 solve.
package main

import (
	"github.com/cubetools/cubecross/internal/cli"
)

func main() {
	cli.Execute()
}
