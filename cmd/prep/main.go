// Package main provides the prep CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("prep %s\n", version)
		return
	}

	fmt.Println("prep - feature encoding for ML pipelines in Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("The library lives in the encode and tokenize packages;")
	fmt.Println("see examples/ for end-to-end usage.")
}
