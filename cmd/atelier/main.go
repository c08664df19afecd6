package main

import (
	"github.com/atelierhq/atelier/internal/cmd"
)

func main() {
	cmd.Execute()
}
