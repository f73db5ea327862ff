package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive jfix shell",
	Long:  "Launch an interactive shell for running jfix commands without repeating the 'jfix' prefix",
	Run: func(cmd *cobra.Command, args []string) {
		runInteractiveShell()
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runInteractiveShell() {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	historyFile := historyFilePath()
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	// Tab completion over command names
	line.SetCompleter(func(line string) (c []string) {
		for _, cmd := range commandNames() {
			if strings.HasPrefix(cmd, strings.ToLower(line)) {
				c = append(c, cmd)
			}
		}
		return
	})

	fmt.Println("jfix interactive shell. Type 'exit' or press Ctrl+D to quit.")
	fmt.Println("Type 'help' to see available commands.")

	prompt := shellPrompt()
	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			// EOF (Ctrl+D)
			fmt.Println()
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)

		switch strings.ToLower(input) {
		case "exit", "quit":
			saveHistory(line, historyFile)
			fmt.Println("Goodbye!")
			return
		case "clear", "cls":
			fmt.Print("\033[H\033[2J")
			continue
		case "help":
			rootCmd.Help()
			continue
		}

		executeCommand(input)
	}

	saveHistory(line, historyFile)
}

func executeCommand(input string) {
	parts := parseCommandLine(input)
	if len(parts) == 0 {
		return
	}

	// Shell mode must not exit on a failed command
	rootCmd.SetArgs(parts)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	rootCmd.SetArgs([]string{})
}

// parseCommandLine splits on spaces but keeps quoted paths together.
func parseCommandLine(input string) []string {
	var parts []string
	var current strings.Builder
	inQuotes := false
	quoteChar := rune(0)

	for _, char := range input {
		switch {
		case (char == '"' || char == '\'') && !inQuotes:
			inQuotes = true
			quoteChar = char
		case char == quoteChar && inQuotes:
			inQuotes = false
			quoteChar = 0
		case char == ' ' && !inQuotes:
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(char)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

func commandNames() []string {
	var names []string
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "shell" {
			continue
		}
		names = append(names, cmd.Name())
	}
	return names
}

func shellPrompt() string {
	wd, err := os.Getwd()
	if err != nil {
		return "jfix> "
	}
	return fmt.Sprintf("[%s]> ", filepath.Base(wd))
}

func saveHistory(line *liner.State, historyFile string) {
	if f, err := os.Create(historyFile); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}

func historyFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".jfix_history"
	}
	return filepath.Join(homeDir, ".jfix_history")
}
