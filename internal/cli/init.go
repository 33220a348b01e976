package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/0xjuang/portal22/internal/config"
	"github.com/0xjuang/portal22/internal/errors"
	"github.com/0xjuang/portal22/internal/ui"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initForce bool

// initCmd scaffolds a starter inventory file
var initCmd = &cobra.Command{
	Use:   "init [inventory]",
	Short: "Create a starter inventory file",
	Long: `Scaffold a new machine inventory with your first entry.

Prompts for the first machine's hostname, IP, scope, and user, then writes
a YAML inventory you can extend by hand.

Examples:
  portal22 init
  portal22 init machines.yml
  portal22 init --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultInventoryFile
		if len(args) > 0 {
			path = args[0]
		}
		return initCommand(path, initForce)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing inventory")
	rootCmd.AddCommand(initCmd)
}

// initCommand implements the init command logic.
func initCommand(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		var overwrite bool

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Inventory '%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	machine, err := promptMachine()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config.Inventory{Machines: []config.Machine{machine}})
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to render inventory YAML", "")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write %s", path),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n", ui.SymbolSuccess, path)
	fmt.Println("Add more machines by editing the file, then run: portal22", path)
	return nil
}

// promptMachine collects the first machine entry interactively.
func promptMachine() (config.Machine, error) {
	var m config.Machine

	required := func(field string) func(string) error {
		return func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s is required", field)
			}
			return nil
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Hostname").
				Description("Names the key file and the Host alias").
				Placeholder("web1").
				Value(&m.Hostname).
				Validate(required("hostname")),
			huh.NewInput().
				Title("IP address").
				Description("Written as HostName in the config block").
				Placeholder("10.0.0.5").
				Value(&m.IP).
				Validate(required("ip")),
			huh.NewInput().
				Title("Scope").
				Description("Namespace label, e.g. prod or homelab").
				Placeholder("prod").
				Value(&m.Scope).
				Validate(required("scope")),
			huh.NewInput().
				Title("User").
				Description("Login user on the machine").
				Placeholder("deploy").
				Value(&m.User).
				Validate(required("user")),
		),
	)

	if err := form.Run(); err != nil {
		return config.Machine{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Write the inventory by hand; see README for the format")
	}

	return m, nil
}
