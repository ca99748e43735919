// @title Capivaras API
// @version 1.0
// @description CRUD de capivaras persistido como documento JSON.
// @BasePath /
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
