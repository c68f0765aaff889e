// Command bcdecode is a small exerciser for the wire package: it reads a
// hex-encoded block or transaction from a file, decodes it while logging
// structural events, and optionally serves the resulting Prometheus
// counters over HTTP. It is test tooling, not part of the decoder itself;
// the wire package knows nothing of files, flags, or the network.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bcdecode",
		Short: "Decode Bitcoin consensus wire data and report what was found",
		Long: `bcdecode reads hex-encoded consensus wire data from a file and
decodes it using the bitwire/wire package, logging the block header and
each transaction as they are visited and counting inputs, outputs and
witness elements into Prometheus counters.`,
		SilenceUsage: true,
	}
	root.AddCommand(newDecodeCmd())
	return root
}
