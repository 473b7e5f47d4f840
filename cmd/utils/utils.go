package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/rainchen/cita-common/common/constants"
	"github.com/rainchen/cita-common/log"
)

// InitConfig initializes the viper config instance ensuring that environment variables
// take precedence over config file parameters.
// Environment variables should be prefixed with the application name (e.g. CITA_JSONRPC_LOG_LEVEL).
// A missing config file is not an error; an unreadable one is.
func InitConfig() error {
	// read in config file and merge with defaults
	log.Global.Infof("Loading config from file: %s", viper.ConfigFileUsed())
	err := viper.ReadInConfig()
	if err != nil {
		// if error is type ConfigFileNotFoundError or fs.PathError, ignore error
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) || errors.As(err, &viper.ConfigFileNotFoundError{}) {
			log.Global.Warnf("Config file not found: %s", viper.ConfigFileUsed())
		} else {
			return errors.Wrap(err, "error reading config file")
		}
	}

	log.Global.Infof("Loading config from environment variables with prefix: '%s_'", constants.ENV_PREFIX)
	viper.SetEnvPrefix(constants.ENV_PREFIX)
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()
	return nil
}

// SaveConfig writes the current configuration to the config file in use.
// An existing file is kept as a backup copy ending with .bak.
func SaveConfig() error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return errors.New("no config file set")
	}
	log.Global.Debugf("saving/updating config file: %s", configFile)
	if _, err := os.Stat(configFile); err == nil {
		if err := os.Rename(configFile, configFile+".bak"); err != nil {
			return err
		}
	} else if os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
			return err
		}
	} else {
		return err
	}
	return viper.WriteConfigAs(configFile)
}

// WriteDefaultConfigFile writes the default value of every flag in Flags to
// configDir/fileName. Values already set through viper (flags, environment)
// replace the defaults.
func WriteDefaultConfigFile(configDir string, fileName string, fileType string) error {
	if fileType != constants.CONFIG_FILE_TYPE {
		return errors.Errorf("unsupported config file type %q", fileType)
	}
	settings := make(map[string]interface{})
	for _, flagGroup := range Flags {
		for _, flag := range flagGroup {
			if flag.Name == ConfigDirFlag.Name || flag.Name == SaveConfigFlag.Name {
				continue
			}
			value := flag.GetValue()
			if viper.IsSet(flag.Name) {
				value = viper.Get(flag.Name)
			}
			setNested(settings, strings.Split(flag.Name, "."), value)
		}
	}
	data, err := toml.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	path := filepath.Join(configDir, fileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}
	return nil
}

// setNested stores value under the dotted key path, so "db.cache" becomes a
// [db] table in the config file.
func setNested(settings map[string]interface{}, path []string, value interface{}) {
	for _, key := range path[:len(path)-1] {
		table, ok := settings[key].(map[string]interface{})
		if !ok {
			table = make(map[string]interface{})
			settings[key] = table
		}
		settings = table
	}
	settings[path[len(path)-1]] = value
}
