package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tanq16/sdlfetch/internal/output"
	"github.com/tanq16/sdlfetch/internal/utils"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove archives left behind by failed runs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			removed, err := utils.CleanArchives(resolveBaseDir())
			for _, name := range removed {
				output.PrintDetail(fmt.Sprintf("%s removed %s", output.StyleSymbols["bullet"], name))
			}
			if err != nil {
				output.PrintError(fmt.Sprintf("Error cleaning up archives: %v", err))
				os.Exit(1)
			}
			if len(removed) == 0 {
				output.PrintWarning("No leftover archives found")
				return
			}
			output.PrintSuccess("Leftover archives cleaned up")
		},
	}
}
