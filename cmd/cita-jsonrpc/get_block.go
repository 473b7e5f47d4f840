package main

import (
	"context"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rainchen/cita-common/cmd/utils"
	"github.com/rainchen/cita-common/common"
	"github.com/rainchen/cita-common/log"
)

var getBlockCmd = &cobra.Command{
	Use:   "get-block",
	Short: "prints a stored block in its JSON-RPC form",
	Long: `looks the block up by --hash, or by --number when no hash is given,
and prints it as the block API returns it. --number=-1 selects the head block.`,
	RunE:         runGetBlock,
	SilenceUsage: true,
	Example:      `cita-jsonrpc get-block --number 12 --include-txs`,
}

func init() {
	rootCmd.AddCommand(getBlockCmd)

	for _, flag := range utils.BlockFlags {
		utils.CreateAndBindFlag(flag, getBlockCmd)
	}
	for _, flag := range utils.ChainFlags {
		utils.CreateAndBindFlag(flag, getBlockCmd)
	}
}

func runGetBlock(cmd *cobra.Command, args []string) error {
	defer utils.WriteMetrics()

	db, chain, err := utils.OpenChain(true, log.Global)
	if err != nil {
		return err
	}
	defer db.Close()

	api, err := utils.NewBlockAPI(chain, log.Global)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	fullTx := viper.GetBool(utils.IncludeTxsFlag.Name)

	var hash common.Hash
	if input := viper.GetString(utils.HashFlag.Name); input != "" {
		if err := hash.UnmarshalText([]byte(input)); err != nil {
			return err
		}
	}
	if hash != (common.Hash{}) {
		block, err := api.GetBlockByHash(ctx, hash, fullTx)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), block)
	}

	number := viper.GetInt64(utils.NumberFlag.Name)
	if number < -1 {
		return errors.Errorf("invalid block number %d", number)
	}
	if number == -1 {
		head, err := api.BlockNumber(ctx)
		if err != nil {
			return err
		}
		number = int64(head)
	}
	block, err := api.GetBlockByNumber(ctx, hexutil.Uint64(number), fullTx)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), block)
}
