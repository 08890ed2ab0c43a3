// Command folio is a terminal client for the Shakespeare semantic
// search service.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/folio-labs/folio-cli/internal/adapters/driven/config/file"
	"github.com/folio-labs/folio-cli/internal/adapters/driven/gateway/httpapi"
	"github.com/folio-labs/folio-cli/internal/adapters/driven/storage/sqlite"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/cli"
	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/services"
	"github.com/folio-labs/folio-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the adapters into the core services and hands control to
// the command tree.
func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	gateway := httpapi.NewClient(httpapi.Config{
		BaseURL: configStore.GetString(file.KeyBackendBaseURL),
		Token:   configStore.GetString(file.KeyBackendToken),
		Timeout: 30 * time.Second,
	})

	sparse := services.NewPanelSession(domain.ModeSparse, gateway)
	dense := services.NewPanelSession(domain.ModeDense, gateway)

	if size := configStore.GetInt(file.KeyPageSize); size > 0 {
		sparse.SetPageSize(size)
		dense.SetPageSize(size)
	}

	contextService := services.NewContextService(gateway)

	svcs := cli.Services{
		SparsePanel: sparse,
		DensePanel:  dense,
		Context:     contextService,
		Config:      configStore,
	}

	// History is best effort; the client works without persistence.
	store, err := sqlite.NewHistoryStore("")
	if err != nil {
		logger.Warn("History unavailable: %v", err)
	} else {
		defer store.Close()

		historyService := services.NewHistoryService(store)
		sparse.SetHistoryService(historyService)
		dense.SetHistoryService(historyService)
		svcs.History = historyService
	}

	cli.SetServices(svcs)

	return cli.Execute()
}
