package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Search history commands",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent searches",
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded searches",
	RunE:  runHistoryClear,
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	entries, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		cmd.Println("No searches recorded.")
		return nil
	}

	for _, entry := range entries {
		query := entry.Query
		if query == "" {
			query = "(match all)"
		}

		cmd.Printf("%s  %-6s  %q  %d matches\n",
			entry.CreatedAt.Local().Format("2006-01-02 15:04"),
			entry.Mode,
			query,
			entry.Total,
		)
		if len(entry.SelectedPlays) > 0 {
			cmd.Printf("                          plays: %s\n", strings.Join(entry.SelectedPlays, ", "))
		}
	}

	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if err := historyService.Clear(cmd.Context()); err != nil {
		return err
	}

	cmd.Println("History cleared.")
	return nil
}
