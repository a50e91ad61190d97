package main

import (
	"github.com/kopaki-io/kopaki/cmd"
)

func main() {
	cmd.Execute()
}
