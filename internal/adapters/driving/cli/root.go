// Package cli provides the cobra command tree. Commands hold no
// business logic; they parse flags, call the driving ports, and format
// output.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/folio-labs/folio-cli/internal/core/ports/driven"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
	"github.com/folio-labs/folio-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by main before Execute.
var (
	sparsePanel    driving.PanelService
	densePanel     driving.PanelService
	contextService driving.ContextService
	historyService driving.HistoryService
	configStore    driven.ConfigStore
)

// Services bundles everything the command tree needs.
type Services struct {
	SparsePanel driving.PanelService
	DensePanel  driving.PanelService
	Context     driving.ContextService
	History     driving.HistoryService
	Config      driven.ConfigStore
}

// SetServices wires the driving ports into the command tree.
func SetServices(s Services) {
	sparsePanel = s.SparsePanel
	densePanel = s.DensePanel
	contextService = s.Context
	historyService = s.History
	configStore = s.Config
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Semantic search over the complete works of Shakespeare",
	Long: `Folio is a terminal client for the Shakespeare semantic search
service. It queries the corpus through two retrieval modes, sparse
vector (ELSER) and dense vector (E5), side by side, so the two result
sets can be compared for the same query.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
