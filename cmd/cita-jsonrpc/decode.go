package main

import (
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rainchen/cita-common/cmd/utils"
	"github.com/rainchen/cita-common/internal/citaapi"
	"github.com/rainchen/cita-common/log"
	"github.com/rainchen/cita-common/rpc"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "converts an rpc block request to its JSON-RPC block",
	Long: `reads a request of the form {"block":"0x..","hash":"0x..","include_txs":false}
and prints the converted block. The hash is echoed as given.`,
	RunE:         runDecode,
	SilenceUsage: true,
	Example:      `cita-jsonrpc decode --file request.json --include-txs`,
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	utils.CreateAndBindFlag(utils.FileFlag, decodeCmd)
	utils.CreateAndBindFlag(utils.IncludeTxsFlag, decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	defer utils.WriteMetrics()

	input, err := readInput(cmd, viper.GetString(utils.FileFlag.Name))
	if err != nil {
		return err
	}
	req, err := rpc.ParseRPCBlock(input)
	if err != nil {
		return err
	}
	if viper.GetBool(utils.IncludeTxsFlag.Name) {
		req.IncludeTxs = true
	}
	converter := citaapi.NewBlockConverter(citaapi.ConsensusProofConverter{}, log.Global)
	block, err := converter.BlockFromRPCBlock(req)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), block)
}

// readInput returns the content of file, or of the command's input if file
// is empty.
func readInput(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", file)
	}
	return data, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
