package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/folio-labs/folio-cli/internal/adapters/driven/config/file"
	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

var (
	searchMode  string
	searchPlays []string
	searchSize  int
	searchJSON  bool
	searchDebug bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the Shakespeare corpus",
	Long: `Runs a semantic search against the corpus using the selected
retrieval mode: sparse vector (ELSER) or dense vector (E5).

An empty query matches every line, which is useful together with
--play to browse a single play.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchMode, "mode", "m", "sparse", "retrieval mode: sparse or dense")
	searchCmd.Flags().StringArrayVarP(&searchPlays, "play", "p", nil, "restrict results to a play (repeatable)")
	searchCmd.Flags().IntVarP(&searchSize, "size", "n", domain.DefaultPageSize, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output the raw response as JSON")
	searchCmd.Flags().BoolVar(&searchDebug, "debug", false, "print the backend query the service executed")
	rootCmd.AddCommand(searchCmd)
}

// panelFor maps a mode flag value to the matching panel session.
func panelFor(mode string) (driving.PanelService, error) {
	parsed, err := domain.ParseSearchMode(mode)
	if err != nil {
		return nil, err
	}

	switch parsed {
	case domain.ModeSparse:
		return sparsePanel, nil
	default:
		return densePanel, nil
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	mode := searchMode
	if !cmd.Flags().Changed("mode") && configStore != nil {
		if configured := configStore.GetString(file.KeyDefaultMode); configured != "" {
			mode = configured
		}
	}

	panel, err := panelFor(mode)
	if err != nil {
		return err
	}
	if panel == nil {
		return errors.New("search service not configured")
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	panel.SetQuery(query)
	panel.SetPageSize(searchSize)
	panel.ClearFacets()
	for _, play := range searchPlays {
		panel.ToggleFacet(play)
	}

	resp, err := panel.Submit(cmd.Context())
	if err != nil {
		return err
	}

	if searchJSON {
		return outputSearchJSON(cmd, resp)
	}

	outputSearchText(cmd, panel.Mode(), resp)

	if searchDebug {
		cmd.Println()
		cmd.Println("Backend query:")
		cmd.Println(resp.PrettyBackendQuery())
	}

	return nil
}

func outputSearchJSON(cmd *cobra.Command, resp *domain.SearchResponse) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchText(cmd *cobra.Command, mode domain.SearchMode, resp *domain.SearchResponse) {
	if resp.Empty() {
		cmd.Println("No matches found.")
		return
	}

	cmd.Printf("Found %d %s matches\n\n", resp.Total, mode.Description())

	for i := range resp.Hits {
		hit := &resp.Hits[i]
		cmd.Printf("  [%d] %s (%s)\n", hit.LineID, hit.PlayName, hit.SpeakerLabel())
		cmd.Printf("      %s\n\n", hit.Snippet())
	}

	if len(resp.Aggregations.Plays) > 0 {
		cmd.Println("Plays:")
		for _, facet := range resp.Aggregations.Plays {
			cmd.Printf("  %-30s %d\n", facet.Name, facet.Count)
		}
	}
}
