package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tanq16/sdlfetch/internal/output"
	"github.com/tanq16/sdlfetch/internal/utils"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show configured archives and whether they are already extracted",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printJobStatus(loadJobs(), resolveBaseDir())
		},
	}
}

func printJobStatus(jobList []utils.Job, dir string) {
	output.PrintHeader(fmt.Sprintf("Archives in %s", dir))
	for _, job := range jobList {
		target := job.TargetFolder()
		line := fmt.Sprintf("%s %s %s %s", job.Label(), job.ArchiveName(), output.StyleSymbols["arrow"], target)
		if utils.PathExists(filepath.Join(dir, target)) {
			output.PrintSuccess(fmt.Sprintf("%s %s", output.StyleSymbols["pass"], line))
		} else {
			output.PrintPending(fmt.Sprintf("%s %s", output.StyleSymbols["pending"], line))
		}
	}
}
