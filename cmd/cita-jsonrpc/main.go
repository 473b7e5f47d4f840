// cita-jsonrpc converts and serves the blocks stored by a chain node in their
// JSON-RPC representation.
package main

import (
	"github.com/rainchen/cita-common/cmd/utils"
)

func main() {
	if err := Execute(); err != nil {
		utils.Fatalf("%v", err)
	}
}
