// main is the entry point of the trajectory CLI.
package main

import (
	"github.com/huangsam/trajectory/cmd"
	"github.com/huangsam/trajectory/internal/contract"
	"github.com/huangsam/trajectory/internal/history"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Failed to stop profiling", stopErr)
	}
	history.CloseStores()
	if err != nil {
		contract.LogFatal("Error running command", err)
	}
}
