package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rainchen/cita-common/cmd/utils"
	"github.com/rainchen/cita-common/common/constants"
	"github.com/rainchen/cita-common/log"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "creates the default config file",
	Long: `creates the default config file in the location specified by the --config-dir flag.
The default config file will contain all the default values for the flags.
Any flags passed in the command line here will also overwrite the default values in the config file.`,
	RunE:                       runConfig,
	SilenceUsage:               true,
	SuggestionsMinimumDistance: 2,
	Example:                    `cita-jsonrpc config --db.cache=256`,
}

func init() {
	rootCmd.AddCommand(configCmd)

	for _, flag := range utils.ChainFlags {
		utils.CreateAndBindFlag(flag, configCmd)
	}
}

func runConfig(cmd *cobra.Command, args []string) error {
	// Make sure configDir is a valid directory using path/filepath
	// filepath.Clean returns the shortest path name equivalent to path by purely lexical processing
	configDir := filepath.Clean(cmd.Flag(utils.ConfigDirFlag.Name).Value.String())

	_, err := os.Stat(configDir)
	if err != nil && os.IsNotExist(err) {
		// If the directory does not exist, create it
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create config directory %s", configDir)
		}
		log.Global.Debugf("Config directory created: %s", configDir)
	} else if err != nil {
		return errors.Wrapf(err, "error accessing config directory %s", configDir)
	}
	path := filepath.Join(configDir, constants.CONFIG_FILE_NAME)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.Errorf("cannot init config file %s: file already exists", path)
	}
	if err := utils.WriteDefaultConfigFile(configDir, constants.CONFIG_FILE_NAME, constants.CONFIG_FILE_TYPE); err != nil {
		return err
	}
	log.Global.WithField("path", path).Info("Initialized new config file.")
	return nil
}
