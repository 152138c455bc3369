// Package cli は社員一覧を操作する emplist コマンドを提供します。
package cli

import (
	"fmt"
	"slices"

	"github.com/ogurasousui/codex-employee-list/internal/platform/config"
	"github.com/spf13/cobra"
)

// RootOptions は全コマンド共通のフラグです。
type RootOptions struct {
	ConfigPath string
	Driver     string
	Dir        string
	DBPath     string
	Key        string
	Format     string // "text" | "json"
	Verbose    bool
}

// ValidFormats は --format に指定できる値です。
var ValidFormats = []string{"text", "json"}

// ValidDrivers は --driver に指定できる値です。
var ValidDrivers = []string{config.DriverFile, config.DriverSQLite, config.DriverMemory}

// NewRootCommand は emplist のルートコマンドを生成します。
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "emplist",
		Short:         "Manage a persistent employee list",
		Long:          "Add, edit, remove, search and export employee records kept in a local storage slot.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Driver != "" && !slices.Contains(ValidDrivers, opts.Driver) {
				return fmt.Errorf("invalid driver %q: must be one of %v", opts.Driver, ValidDrivers)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "path to config file (defaults to built-in file storage)")
	flags.StringVar(&opts.Driver, "driver", "", "storage driver (file|sqlite|memory)")
	flags.StringVar(&opts.Dir, "dir", "", "directory for the file driver")
	flags.StringVar(&opts.DBPath, "db", "", "database path for the sqlite driver")
	flags.StringVar(&opts.Key, "key", "", "storage slot key")
	flags.StringVar(&opts.Format, "format", "text", "output format (text|json)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}
