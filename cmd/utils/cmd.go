package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"

	"github.com/rainchen/cita-common/common/constants"
	"github.com/rainchen/cita-common/core"
	"github.com/rainchen/cita-common/core/rawdb"
	"github.com/rainchen/cita-common/internal/citaapi"
	"github.com/rainchen/cita-common/log"
	"github.com/rainchen/cita-common/metrics_config"
)

// OpenChain opens the chain database under the configured data dir.
func OpenChain(readonly bool, logger log.Logger) (rawdb.Database, *core.ChainReader, error) {
	dataDir := viper.GetString(DataDirFlag.Name)
	if !readonly {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, nil, err
		}
	}
	db, err := rawdb.NewLevelDBDatabase(
		filepath.Join(dataDir, constants.CHAIN_DB_DIR_NAME),
		viper.GetInt(DBCacheFlag.Name),
		viper.GetInt(DBHandlesFlag.Name),
		readonly,
		logger,
	)
	if err != nil {
		return nil, nil, err
	}
	chain, err := core.NewChainReader(db, logger)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, chain, nil
}

// NewBlockAPI builds the block API served on top of backend.
func NewBlockAPI(backend citaapi.Backend, logger log.Logger) (*citaapi.PublicBlockChainAPI, error) {
	converter := citaapi.NewBlockConverter(citaapi.ConsensusProofConverter{}, logger)
	return citaapi.NewPublicBlockChainAPI(backend, converter, viper.GetInt(BlockCacheFlag.Name), logger)
}

// WriteMetrics dumps the collected metrics if a textfile was configured.
func WriteMetrics() {
	file := viper.GetString(MetricsTextfileFlag.Name)
	if file == "" {
		return
	}
	if err := metrics_config.WriteTextfile(file); err != nil {
		log.Global.WithField("err", err).Error("Failed to write metrics")
	}
}

// Fatalf formats a message to standard error and exits the program.
// The message is also printed to standard output if standard error
// is redirected to a different file.
func Fatalf(format string, args ...interface{}) {
	w := io.MultiWriter(os.Stdout, os.Stderr)
	if runtime.GOOS == "windows" {
		// The SameFile check below doesn't work on Windows.
		// stdout is unlikely to get redirected though, so just print there.
		w = os.Stdout
	} else {
		outf, _ := os.Stdout.Stat()
		errf, _ := os.Stderr.Stat()
		if outf != nil && errf != nil && os.SameFile(outf, errf) {
			w = os.Stderr
		}
	}
	fmt.Fprintf(w, "Fatal: "+format+"\n", args...)
	os.Exit(1)
}
