package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainchen/cita-common/common"
	"github.com/rainchen/cita-common/common/constants"
)

// testXDGConfigLoading tests the loading of the config file from the XDG config home
// and verifies values are correctly set in viper.
// This test is nested within the TestCobraFlagConfigLoading test.
func testXDGConfigLoading(t *testing.T) {
	// set configPath to a mock temporary XDG config folder
	mockConfigPath := t.TempDir()
	tempFile := createMockXDGConfigFile(t, mockConfigPath)
	defer tempFile.Close()

	// write 'log-level = debug' config to mock config.toml file
	_, err := tempFile.WriteString(LogLevelFlag.Name + " = " + "\"debug\"\n")
	require.NoError(t, err)

	// Set config path to the temporary config directory
	viper.SetConfigFile(tempFile.Name())

	require.NoError(t, InitConfig())

	// Assert log level is set to "debug" as per the mock config file
	assert.Equal(t, "debug", viper.GetString(LogLevelFlag.Name))
}

// TestCobraFlagConfigLoading tests the loading of the config file from the XDG config home,
// the loading of the environment variable and the loading of the cobra flag.
// It verifies the expected order of precedence of config loading.
func TestCobraFlagConfigLoading(t *testing.T) {
	// Clear viper instance to simulate a fresh start
	viper.Reset()
	defer viper.Reset()

	// Test loading config from XDG config home
	testXDGConfigLoading(t)
	assert.Equal(t, "debug", viper.GetString(LogLevelFlag.Name))

	// Test loading config from environment variable
	t.Setenv(constants.ENV_PREFIX+"_"+"LOG_LEVEL", "error")
	assert.Equal(t, "error", viper.GetString(LogLevelFlag.Name))

	// Dotted flag names map to underscores
	t.Setenv(constants.ENV_PREFIX+"_"+"DB_CACHE", "512")
	assert.Equal(t, 512, viper.GetInt(DBCacheFlag.Name))

	// Test loading config from cobra flag
	rootCmd := &cobra.Command{}
	rootCmd.PersistentFlags().StringP(LogLevelFlag.Name, "l", "warn", "log level (trace, debug, info, warn, error, fatal, panic")
	err := rootCmd.PersistentFlags().Set(LogLevelFlag.Name, "trace")
	require.NoError(t, err)
	viper.BindPFlags(rootCmd.PersistentFlags())
	assert.Equal(t, "trace", viper.GetString(LogLevelFlag.Name))
}

func TestMissingConfigFileIsIgnored(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.SetConfigFile(filepath.Join(t.TempDir(), constants.CONFIG_FILE_NAME))
	require.NoError(t, InitConfig())
}

func TestWriteDefaultConfigFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	dir := t.TempDir()
	viper.Set(BlockCacheFlag.Name, 7)
	require.NoError(t, WriteDefaultConfigFile(dir, constants.CONFIG_FILE_NAME, constants.CONFIG_FILE_TYPE))

	data, err := os.ReadFile(filepath.Join(dir, constants.CONFIG_FILE_NAME))
	require.NoError(t, err)

	var settings struct {
		LogLevel string `toml:"log-level"`
		DB       struct {
			Cache   int `toml:"cache"`
			Handles int `toml:"handles"`
		} `toml:"db"`
		RPC struct {
			BlockCache int `toml:"block-cache"`
		} `toml:"rpc"`
	}
	require.NoError(t, toml.Unmarshal(data, &settings))
	assert.Equal(t, "info", settings.LogLevel)
	assert.Equal(t, 64, settings.DB.Cache)
	assert.Equal(t, 64, settings.DB.Handles)
	assert.Equal(t, 7, settings.RPC.BlockCache)
	assert.NotContains(t, string(data), ConfigDirFlag.Name)

	// Read the file back through viper.
	viper.Reset()
	viper.SetConfigFile(filepath.Join(dir, constants.CONFIG_FILE_NAME))
	require.NoError(t, InitConfig())
	assert.Equal(t, 64, viper.GetInt(DBCacheFlag.Name))

	require.Error(t, WriteDefaultConfigFile(dir, "config.yaml", "yaml"))
}

func TestSaveConfigKeepsBackup(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	configFile := filepath.Join(t.TempDir(), "nested", constants.CONFIG_FILE_NAME)
	viper.SetConfigFile(configFile)
	viper.Set(LogLevelFlag.Name, "warn")
	require.NoError(t, SaveConfig())
	require.NoFileExists(t, configFile+".bak")

	viper.Set(LogLevelFlag.Name, "debug")
	require.NoError(t, SaveConfig())
	require.FileExists(t, configFile+".bak")

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug")
}

func TestHashFlag(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cmd := &cobra.Command{}
	flag := Flag{Name: HashFlag.Name, Value: new(common.Hash), Usage: HashFlag.Usage}
	CreateAndBindFlag(flag, cmd)

	hash := common.HexToHash("0xabcdef")
	require.NoError(t, cmd.PersistentFlags().Set(HashFlag.Name, hash.Hex()))
	assert.Equal(t, hash, *flag.Value.(*common.Hash))
	assert.Equal(t, hash.Hex(), viper.GetString(HashFlag.Name))

	require.Error(t, cmd.PersistentFlags().Set(HashFlag.Name, "0x01"))
}

func TestGenerateEnvDoc(t *testing.T) {
	assert.Equal(t, " [CITA_JSONRPC_RPC_BLOCK_CACHE]", generateEnvDoc("rpc.block-cache"))
}

// helper function to create a mock XDG directory and config file
func createMockXDGConfigFile(t *testing.T, dir string) *os.File {
	t.Helper()
	err := os.MkdirAll(dir, 0755)
	require.NoError(t, err)
	tmpFile, err := os.Create(filepath.Join(dir, constants.CONFIG_FILE_NAME))
	require.NoError(t, err)
	return tmpFile
}
