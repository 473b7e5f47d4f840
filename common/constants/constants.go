package constants

const (
	APP_NAME = "cita-jsonrpc"
	// prefix used to read config parameters from environment variables
	ENV_PREFIX = "CITA_JSONRPC"
	// config file name
	CONFIG_FILE_NAME = "config.toml"
	// config file type
	CONFIG_FILE_TYPE = "toml"
	// chain database directory name, relative to the data dir
	CHAIN_DB_DIR_NAME = "chaindata"
	// namespace of the prometheus metrics exported by the rpc layer
	METRICS_NAMESPACE = "cita_jsonrpc"
)
