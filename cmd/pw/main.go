// Package main is the entry point for the pw CLI client.
package main

import (
	"github.com/pricewatch-io/pricewatch/cmd/pw/cmd"
)

func main() {
	cmd.Execute()
}
