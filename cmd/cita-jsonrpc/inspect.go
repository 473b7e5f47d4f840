package main

import (
	"github.com/spf13/cobra"

	"github.com/rainchen/cita-common/cmd/utils"
	"github.com/rainchen/cita-common/core/rawdb"
	"github.com/rainchen/cita-common/log"
)

var inspectCmd = &cobra.Command{
	Use:          "inspect",
	Short:        "prints the size of each category of data in the chain database",
	RunE:         runInspect,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	for _, flag := range utils.ChainFlags {
		utils.CreateAndBindFlag(flag, inspectCmd)
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	db, _, err := utils.OpenChain(true, log.Global)
	if err != nil {
		return err
	}
	defer db.Close()

	return rawdb.InspectDatabase(db, cmd.OutOrStdout(), log.Global)
}
