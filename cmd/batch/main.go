package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AryanSingh257/ai-resume-analyzer/parsers"
	"github.com/AryanSingh257/ai-resume-analyzer/services"
)

var (
	outputPath   string
	outputFormat string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "batch [files...]",
		Short: "Analyze multiple resumes and export the results",
		Long: `Runs the resume parser and ATS scorer over every file given on the
command line, ranks the results by score and writes a report.

Supported input formats: .pdf, .docx, .txt
Supported output formats: csv, json, xlsx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runBatch,
	}

	root.Flags().StringVarP(&outputPath, "output", "o", "", "report file (defaults to stdout for csv and json)")
	root.Flags().StringVarP(&outputFormat, "format", "f", "csv", "report format: csv, json or xlsx")
	return root
}

func runBatch(cmd *cobra.Command, args []string) error {
	processor := services.NewBatchProcessor(parsers.NewResumeParser(), services.NewATSScorer())

	summary, err := processor.ProcessFiles(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("could not create %s: %w", outputPath, err)
		}
		defer f.Close()
		out = f
	} else if outputFormat == "xlsx" {
		return fmt.Errorf("xlsx output requires --output")
	}

	switch outputFormat {
	case "csv":
		err = processor.WriteCSV(out, summary)
	case "json":
		err = processor.WriteJSON(out, summary)
	case "xlsx":
		err = processor.WriteXLSX(out, summary)
	default:
		return fmt.Errorf("unknown format %q, expected csv, json or xlsx", outputFormat)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Processed %d resumes: %d succeeded, %d failed",
		summary.Total, summary.Successful, summary.Failed)
	if summary.Successful > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), ", average score %.1f", summary.AvgScore)
	}
	fmt.Fprintln(cmd.ErrOrStderr())
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
