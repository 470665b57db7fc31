package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/asteria-studio/pipeline-core/internal/pipeline"
)

var processCmd = &cobra.Command{
	Use:   "process [page-ids...]",
	Short: "Run the page processor over one or more pages",
	Long: `Process runs each page through the pipeline core and prints one status
line per page. Page IDs come from the command line, from a YAML pages file
via --pages-file, or both (command-line IDs run first).

Processing stages are not implemented yet, so every page yields a
placeholder status message.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pageIDs := args

		pagesFile, _ := cmd.Flags().GetString("pages-file")
		if pagesFile != "" {
			pf, err := pipeline.ReadPagesFile(pagesFile)
			if err != nil {
				return err
			}
			pageIDs = append(pageIDs, pf.Pages...)
		}

		if len(pageIDs) == 0 {
			return fmt.Errorf("no pages to process: pass page IDs or --pages-file")
		}

		results := pipeline.ProcessPages(pageIDs, cmd.OutOrStdout())

		outFile, _ := cmd.Flags().GetString("out")
		if outFile == "" {
			outFile = viper.GetString("process.out")
		}
		if outFile != "" {
			if err := pipeline.WriteResults(outFile, results); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Results written to %s\n", outFile)
		}
		return nil
	},
}

func init() {
	processCmd.Flags().String("pages-file", "", "YAML file listing page IDs to process")
	processCmd.Flags().String("out", "", "write per-page results to a YAML file (config key: process.out)")

	rootCmd.AddCommand(processCmd)
}
