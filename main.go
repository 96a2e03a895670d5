package main

import (
	"github.com/pocketevm/pocketevm/command/root"
)

func main() {
	root.NewRootCommand().Execute()
}
