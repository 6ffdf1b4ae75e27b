package cmd

import (
	"fmt"
	"os"

	sradb "github.com/gnames/sradb/pkg"
	"github.com/spf13/cobra"
)

type funcFlag func(cmd *cobra.Command)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", sradb.Version, sradb.Build)
		os.Exit(0)
	}
}
