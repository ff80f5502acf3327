package main

import (
	"github.com/mrivnak/pi-fan/cmd"
)

func main() {
	cmd.Execute()
}
