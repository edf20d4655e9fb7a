package main

import (
	"fmt"
	"os"

	"fifo-ipc/pkg/cmd"
)

func main() {
	rootCmd := cmd.NewFifoIPCCmd()
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "fifo-ipc: %v\n", err)
		os.Exit(1)
	}
}
