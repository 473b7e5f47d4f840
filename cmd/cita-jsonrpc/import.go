package main

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rainchen/cita-common/cmd/utils"
	"github.com/rainchen/cita-common/core"
	"github.com/rainchen/cita-common/log"
	"github.com/rainchen/cita-common/rpc"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "stores raw blocks in the chain database",
	Long: `reads a JSON array of rpc block requests and stores each block under its hash.
The block height is taken from the encoded header. Blocks already stored are skipped.`,
	RunE:         runImport,
	SilenceUsage: true,
	Example:      `cita-jsonrpc import --file blocks.json`,
}

func init() {
	rootCmd.AddCommand(importCmd)

	utils.CreateAndBindFlag(utils.FileFlag, importCmd)
	for _, flag := range utils.ChainFlags {
		utils.CreateAndBindFlag(flag, importCmd)
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	defer utils.WriteMetrics()

	input, err := readInput(cmd, viper.GetString(utils.FileFlag.Name))
	if err != nil {
		return err
	}
	var requests []*rpc.RPCBlock
	if err := json.Unmarshal(input, &requests); err != nil {
		return errors.Wrap(err, "invalid import file")
	}

	db, chain, err := utils.OpenChain(false, log.Global)
	if err != nil {
		return err
	}
	defer db.Close()

	var imported, skipped int
	for i, req := range requests {
		if req == nil {
			return errors.Errorf("block %d: empty request", i)
		}
		number, err := chain.InsertBlock(req.Hash, req.Block)
		if errors.Is(err, core.ErrKnownBlock) {
			skipped++
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "block %d (%v)", i, req.Hash)
		}
		log.Global.WithFields(log.Fields{
			"number": number,
			"hash":   req.Hash,
		}).Debug("Imported block")
		imported++
	}
	log.Global.WithFields(log.Fields{
		"imported": imported,
		"skipped":  skipped,
	}).Info("Import done")
	return nil
}
