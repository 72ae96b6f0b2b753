package main

import (
	"github.com/arvanshad/bazaar/cmd"
)

func main() {
	cmd.Start()
}
