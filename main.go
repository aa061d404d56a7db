package main

import (
	"fmt"
	"os"

	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
