package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rainchen/cita-common/common"
	"github.com/rainchen/cita-common/common/constants"
	"github.com/rainchen/cita-common/log"
)

var GlobalFlags = []Flag{
	ConfigDirFlag,
	DataDirFlag,
	LogLevelFlag,
	SaveConfigFlag,
	MetricsTextfileFlag,
}

var ChainFlags = []Flag{
	DBCacheFlag,
	DBHandlesFlag,
	BlockCacheFlag,
}

var BlockFlags = []Flag{
	IncludeTxsFlag,
	HashFlag,
	NumberFlag,
}

var FileFlags = []Flag{
	FileFlag,
}

// Flags groups every flag written to the default config file.
var Flags = [][]Flag{
	GlobalFlags,
	ChainFlags,
}

var (
	// ****************************************
	// **                                    **
	// **         GLOBAL FLAGS               **
	// **                                    **
	// ****************************************
	ConfigDirFlag = Flag{
		Name:         "config-dir",
		Abbreviation: "c",
		Value:        xdg.ConfigHome + "/" + constants.APP_NAME + "/",
		Usage:        "config directory" + generateEnvDoc("config-dir"),
	}

	DataDirFlag = Flag{
		Name:         "data-dir",
		Abbreviation: "d",
		Value:        xdg.DataHome + "/" + constants.APP_NAME + "/",
		Usage:        "data directory" + generateEnvDoc("data-dir"),
	}

	LogLevelFlag = Flag{
		Name:         "log-level",
		Abbreviation: "l",
		Value:        "info",
		Usage:        "log level (trace, debug, info, warn, error, fatal, panic)" + generateEnvDoc("log-level"),
	}

	SaveConfigFlag = Flag{
		Name:         "save-config",
		Abbreviation: "S",
		Value:        false,
		Usage:        "save/update config file with current config parameters" + generateEnvDoc("save-config"),
	}

	MetricsTextfileFlag = Flag{
		Name:  "metrics.textfile",
		Value: "",
		Usage: "write prometheus metrics to this file when the command finishes" + generateEnvDoc("metrics.textfile"),
	}

	// ****************************************
	// **                                    **
	// **         CHAIN FLAGS                **
	// **                                    **
	// ****************************************
	DBCacheFlag = Flag{
		Name:  "db.cache",
		Value: 64,
		Usage: "megabytes of memory allocated to the chain database" + generateEnvDoc("db.cache"),
	}

	DBHandlesFlag = Flag{
		Name:  "db.handles",
		Value: 64,
		Usage: "number of open files the chain database may keep" + generateEnvDoc("db.handles"),
	}

	BlockCacheFlag = Flag{
		Name:  "rpc.block-cache",
		Value: 128,
		Usage: "number of converted blocks kept in memory (0 disables the cache)" + generateEnvDoc("rpc.block-cache"),
	}

	// ****************************************
	// **                                    **
	// **         BLOCK FLAGS                **
	// **                                    **
	// ****************************************
	IncludeTxsFlag = Flag{
		Name:         "include-txs",
		Abbreviation: "t",
		Value:        false,
		Usage:        "return full transactions instead of their hashes" + generateEnvDoc("include-txs"),
	}

	HashFlag = Flag{
		Name:  "hash",
		Value: new(common.Hash),
		Usage: "block hash" + generateEnvDoc("hash"),
	}

	NumberFlag = Flag{
		Name:         "number",
		Abbreviation: "n",
		Value:        int64(-1),
		Usage:        "block number, -1 for the chain head" + generateEnvDoc("number"),
	}

	FileFlag = Flag{
		Name:         "file",
		Abbreviation: "f",
		Value:        "",
		Usage:        "input file, standard input if empty" + generateEnvDoc("file"),
	}
)

func CreateAndBindFlag(flag Flag, cmd *cobra.Command) {
	switch val := flag.Value.(type) {
	case string:
		cmd.PersistentFlags().StringP(flag.GetName(), flag.GetAbbreviation(), val, flag.GetUsage())
	case bool:
		cmd.PersistentFlags().BoolP(flag.GetName(), flag.GetAbbreviation(), val, flag.GetUsage())
	case []string:
		cmd.PersistentFlags().StringSliceP(flag.GetName(), flag.GetAbbreviation(), val, flag.GetUsage())
	case time.Duration:
		cmd.PersistentFlags().DurationP(flag.GetName(), flag.GetAbbreviation(), val, flag.GetUsage())
	case int:
		cmd.PersistentFlags().IntP(flag.GetName(), flag.GetAbbreviation(), val, flag.GetUsage())
	case int64:
		cmd.PersistentFlags().Int64P(flag.GetName(), flag.GetAbbreviation(), val, flag.GetUsage())
	case uint64:
		cmd.PersistentFlags().Uint64P(flag.GetName(), flag.GetAbbreviation(), val, flag.GetUsage())
	case TextMarshaler:
		cmd.PersistentFlags().VarP(NewTextMarshalerValue(val), flag.GetName(), flag.GetAbbreviation(), flag.GetUsage())
	default:
		log.Global.Error("Flag type not supported: " + flag.GetName() + ", " + fmt.Sprintf("%T", val))
	}
	viper.BindPFlag(flag.GetName(), cmd.PersistentFlags().Lookup(flag.GetName()))
}

// helper function that given a cobra flag name, returns the corresponding
// help legend for the equivalent environment variable
func generateEnvDoc(flag string) string {
	envVar := constants.ENV_PREFIX + "_" + envKeyReplacer.Replace(strings.ToUpper(flag))
	return fmt.Sprintf(" [%s]", envVar)
}

// envKeyReplacer maps flag names to environment variable suffixes.
var envKeyReplacer = strings.NewReplacer("-", "_", ".", "_")
