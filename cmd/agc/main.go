package main

import (
	"os"

	"github.com/Calvin-Zhu01/agent-guard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
