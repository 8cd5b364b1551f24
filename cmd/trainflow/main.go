package main

import (
	"log/slog"

	"github.com/crafthr/trainflow/pkg/trainflow"
)

func main() {

	//you may do your own logger setup here or use this default one with slog
	trainflow.SetupLogger()

	if err := trainflow.Start(nil); err != nil {
		slog.Error("Server exited with error", "error", err)
	}
}
