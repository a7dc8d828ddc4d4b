package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version and Commit are set at build time via ldflags.
var (
	Version = "dev"
	Commit  = ""
)

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			v := "pricewatch " + Version
			if Commit != "" {
				v += " (" + Commit + ")"
			}
			fmt.Printf("%s %s/%s\n", v, runtime.GOOS, runtime.GOARCH)
		},
	}
}
