package cmd

import (
	"fmt"
	"os"

	"github.com/corpeningc/jfix/internal/conflict"
	"github.com/corpeningc/jfix/internal/jsonfix"
	"github.com/corpeningc/jfix/internal/ui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use: "jfix",
	Short: "Repair JSON files damaged by merge conflict markers",
	Long: "Strips unresolved git conflict markers from JSON files, repairs and validates the result, and promotes fixed files with a backup",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(stripCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(inspectCmd)

	stripCmd.Flags().StringVar(&stripKeep, "keep", "ours", "conflict side to keep: ours, theirs, both or none")
	checkCmd.Flags().StringVar(&checkBackupSuffix, "backup-suffix", ".backup", "suffix appended to the target path for the backup copy")
	checkCmd.Flags().BoolVarP(&checkYes, "yes", "y", false, "promote without asking for confirmation")
	inspectCmd.Flags().BoolVar(&inspectPlain, "plain", false, "print a summary instead of opening the viewer")
}

var stripKeep string

var stripCmd = &cobra.Command{
	Use:   "strip <input> <output>",
	Short: "Remove conflict markers from a file without validating it",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		strategy, err := conflict.ParseStrategy(stripKeep)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		resolved, err := conflict.ResolveFile(args[0], args[1], strategy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error stripping conflicts: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Resolved %d conflict blocks (kept %s), wrote %s\n", resolved, strategy, args[1])
	},
}

var fixCmd = &cobra.Command{
	Use:   "fix <path>",
	Short: "Strip conflict markers in place and rewrite the file as valid JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result, err := jsonfix.FixFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fixing file: %v\n", err)
			os.Exit(1)
		}

		if !result.Fixed() {
			fmt.Fprintf(os.Stderr, "Could not repair %s: %v\n", result.Path, result.ParseErr)
			fmt.Fprintf(os.Stderr, "Cleaned text saved to %s for manual review; the original file was not modified.\n", result.Sidecar)
			os.Exit(1)
		}

		fmt.Printf("Resolved %d conflict blocks in %s\n", result.Conflicts, result.Path)
		if result.Normalized {
			fmt.Println("Applied textual repair rules before the file parsed.")
		}
		fmt.Printf("Wrote valid JSON to %s\n", result.Path)
	},
}

var checkBackupSuffix string
var checkYes bool

var checkCmd = &cobra.Command{
	Use:   "check <fixed> <target>",
	Short: "Validate a fixed JSON file and promote it over the target with a backup",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		fixed, target := args[0], args[1]

		count, err := jsonfix.Validate(fixed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s is valid JSON with %d top-level keys\n", fixed, count)

		if !checkYes {
			confirmed, err := ui.ConfirmPromotion(target)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if !confirmed {
				fmt.Println("Promotion cancelled.")
				return
			}
		}

		backup, err := jsonfix.Promote(fixed, target, checkBackupSuffix)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if backup != "" {
				fmt.Fprintf(os.Stderr, "A backup was already created at %s\n", backup)
			}
			os.Exit(1)
		}

		fmt.Printf("Backed up %s to %s\n", target, backup)
		fmt.Printf("Promoted %s to %s\n", fixed, target)
	},
}

var inspectPlain bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <path>",
	Short: "Show the conflict blocks in a file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}

		blocks := conflict.Scan(conflict.Split(string(data)))
		if len(blocks) == 0 {
			fmt.Printf("No conflict markers found in %s\n", args[0])
			return
		}

		if inspectPlain {
			fmt.Print(ui.Summary(args[0], blocks))
			return
		}

		if err := ui.ShowConflicts(args[0], blocks); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing conflicts: %v\n", err)
			os.Exit(1)
		}
	},
}
