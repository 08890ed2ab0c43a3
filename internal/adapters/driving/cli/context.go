package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/folio-labs/folio-cli/internal/core/domain"
)

var (
	contextSize int
	contextJSON bool
)

var contextCmd = &cobra.Command{
	Use:   "context [line-id]",
	Short: "Show the lines surrounding a corpus line",
	Long: `Looks a line up by its corpus line ID and prints it together with
the surrounding lines of the same play, in reading order. The line
itself is marked with an arrow.`,
	Args: cobra.ExactArgs(1),
	RunE: runContext,
}

func init() {
	contextCmd.Flags().IntVarP(&contextSize, "size", "n", domain.DefaultContextSize, "lines of context either side")
	contextCmd.Flags().BoolVar(&contextJSON, "json", false, "output the lines as JSON")
	rootCmd.AddCommand(contextCmd)
}

func runContext(cmd *cobra.Command, args []string) error {
	if contextService == nil {
		return errors.New("context service not configured")
	}

	lineID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: line ID must be a number, got %q", domain.ErrInvalidInput, args[0])
	}

	lines, err := contextService.ContextForLine(cmd.Context(), lineID, contextSize)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("line %d not found", lineID)
		}
		return err
	}

	if contextJSON {
		data, err := json.MarshalIndent(lines, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal lines: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(lines) == 0 {
		cmd.Println("No context available.")
		return nil
	}

	cmd.Printf("%s\n\n", lines[0].PlayName)
	for i := range lines {
		marker := "  "
		if lines[i].IsCurrent {
			marker = "> "
		}
		cmd.Printf("%s[%d] %-20s %s\n", marker, lines[i].LineID, lines[i].SpeakerLabel(), lines[i].TextEntry)
	}

	return nil
}
