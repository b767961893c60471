package main

import (
	"fmt"
	"os"

	"github.com/packup/packup/cmd/packup"
	"github.com/packup/packup/pkg/display/styles"
)

func main() {
	rootCmd := packup.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
