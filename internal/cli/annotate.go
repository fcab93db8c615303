package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ppiankov/raadsel/internal/model"
	"github.com/ppiankov/raadsel/internal/record"
	"github.com/spf13/cobra"
)

var annotateOut string

// annotateCmd groups the annotation sheet commands
var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Export and import the annotation sheet",
	Long: `Annotators pick three clues per answer from the ranked aspects.

  raadsel annotate export   ranked pages -> TSV sheet
  raadsel annotate import   edited TSV sheet -> clue records`,
}

var annotateExportCmd = &cobra.Command{
	Use:   "export [ranked.jsonl]",
	Short: "Write ranked pages as a TSV sheet for annotators",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := argOr(args, filepath.Join("data", filtered2File))
		out := annotateOut
		if out == "" {
			out = filepath.Join("data", annotationsOutFile)
		}

		pages, err := record.ReadFile(in, record.DecodeRankedPage)
		if err != nil {
			return err
		}
		if err := exportAnnotations(out, pages); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "✓ Wrote %d pages to %s\n", len(pages), out)
		return nil
	},
}

var annotateImportCmd = &cobra.Command{
	Use:   "import [sheet.tsv]",
	Short: "Read an annotated TSV sheet back into clue records",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := argOr(args, filepath.Join("data", annotationsOutFile))
		out := annotateOut
		if out == "" {
			out = filepath.Join("data", annotationsInFile)
		}

		f, err := os.Open(in)
		if err != nil {
			return fmt.Errorf("open %s: %w", in, err)
		}
		defer func() { _ = f.Close() }()

		entries, err := record.ImportAnnotations(f)
		if err != nil {
			return fmt.Errorf("import %s: %w", in, err)
		}

		short := 0
		encoded := make([]map[string]string, len(entries))
		for i, e := range entries {
			encoded[i] = record.EncodeClueEntry(e)
			if len(e.Clues) < 3 {
				short++
			}
		}
		if err := record.WriteFile(out, encoded); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "✓ Wrote %d clue records to %s\n", len(entries), out)
		if short > 0 {
			fmt.Fprintf(os.Stderr, "⚠️  %d records have fewer than 3 clues and cannot become puzzles\n", short)
		}
		return nil
	},
}

func exportAnnotations(path string, pages []model.RankedPage) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	if err := record.ExportAnnotations(f, pages); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

// argOr returns the first positional argument or fallback
func argOr(args []string, fallback string) string {
	if len(args) > 0 {
		return args[0]
	}
	return fallback
}

func init() {
	rootCmd.AddCommand(annotateCmd)
	annotateCmd.AddCommand(annotateExportCmd)
	annotateCmd.AddCommand(annotateImportCmd)

	annotateCmd.PersistentFlags().StringVar(&annotateOut, "out", "", "output file (default: data directory file for the step)")
}
