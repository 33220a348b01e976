// Package cli defines the portal22 command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/0xjuang/portal22/internal/config"
	"github.com/0xjuang/portal22/internal/keygen"
	"github.com/0xjuang/portal22/internal/logger"
	"github.com/0xjuang/portal22/internal/provision"
	"github.com/0xjuang/portal22/internal/sshconf"
	"github.com/0xjuang/portal22/internal/ui"
	"github.com/spf13/cobra"
)

var dryRunFlag bool

// rootCmd runs the provisioning pipeline itself: load inventory, validate
// each record, generate missing keys, append config blocks.
var rootCmd = &cobra.Command{
	Use:   "portal22 [inventory]",
	Short: "Generate SSH keys and config blocks from a YAML inventory",
	Long: `Portal-22 reads machine definitions from a YAML inventory and, for each
complete record, ensures a dedicated ed25519 keypair exists and appends a
matching Host block to your SSH config.

Keys are generated with ssh-keygen and never overwritten: a machine whose
key file already exists is skipped. The SSH config is append-only; a
sentinel header marks the region this tool owns.

Examples:
  portal22                  # provision from ./data.yml
  portal22 machines.yml
  portal22 --dry-run        # preview without touching anything`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		inventory := config.DefaultInventoryFile
		if len(args) > 0 {
			inventory = args[0]
		}
		return provisionCommand(inventory, dryRunFlag)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false,
		"preview intended actions without mutating the filesystem")
}

// Execute runs the root command. Errors are printed (already formatted by
// the errors package) and the process exits nonzero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// provisionCommand implements the root command logic.
func provisionCommand(inventoryPath string, dryRun bool) error {
	ui.ConfigureColorProfile()
	ui.PrintHeader(ui.HeaderInfo{
		Version: formatVersion(version),
		Tagline: "SSH key & config generator",
	})

	log := logger.Default()
	machines := config.LoadInventory(inventoryPath, log)

	paths, err := config.DefaultPaths()
	if err != nil {
		return err
	}

	runner := provision.New(paths, keygen.SSHKeygen{}, log, os.Stdout)

	if dryRun {
		runner.Preview(machines)
		return nil
	}

	if err := paths.EnsureKeysDir(); err != nil {
		return err
	}

	sink, err := sshconf.OpenFileSink(paths.ConfigFile)
	if err != nil {
		return err
	}
	defer sink.Close()

	if err := runner.Apply(machines, sink); err != nil {
		return err
	}

	fmt.Printf("%s SSH config updated at %s\n", ui.SymbolSuccess, paths.ConfigFile)
	return nil
}
