package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/folio-labs/folio-cli/internal/adapters/driven/config/file"
	"github.com/folio-labs/folio-cli/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Reads and writes the configuration file.

Known keys:
  backend.base_url     search service base URL
  backend.token        bearer token sent with every request
  search.page_size     hits requested per search
  search.default_mode  retrieval mode the TUI starts in (sparse or dense)`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Sets a configuration value and persists it immediately.

Setting backend.token with no value prompts for the token without
echoing it to the terminal.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key := args[0]

	// Never print the token back.
	if key == file.KeyBackendToken {
		if configStore.GetString(key) == "" {
			cmd.Println("(not set)")
		} else {
			cmd.Println("(set)")
		}
		return nil
	}

	val, ok := configStore.Get(key)
	if !ok {
		cmd.Println("(not set)")
		return nil
	}

	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key := args[0]

	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		if key != file.KeyBackendToken {
			return fmt.Errorf("missing value for key %q", key)
		}

		token, err := promptForToken(cmd)
		if err != nil {
			return err
		}
		value = token
	}

	if err := validateConfigValue(key, value); err != nil {
		return err
	}

	if err := configStore.Set(key, coerceConfigValue(key, value)); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println(configStore.Path())
	return nil
}

// promptForToken reads the token from the terminal without echo.
func promptForToken(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("no terminal available; pass the token as an argument")
	}

	fmt.Fprint(cmd.OutOrStdout(), "Token: ")
	token, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}

	return string(token), nil
}

// validateConfigValue rejects values that would break later commands.
func validateConfigValue(key, value string) error {
	switch key {
	case file.KeyDefaultMode:
		if _, err := domain.ParseSearchMode(value); err != nil {
			return fmt.Errorf("%w: %q is not a retrieval mode", err, value)
		}
	case file.KeyPageSize:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: page size must be a positive number", domain.ErrInvalidInput)
		}
	}
	return nil
}

// coerceConfigValue converts string flag input to the type the key
// holds in TOML.
func coerceConfigValue(key, value string) any {
	if key == file.KeyPageSize {
		n, _ := strconv.Atoi(value)
		return n
	}
	return value
}
