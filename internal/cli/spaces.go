package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatches/pkg/swatches"
)

func newSpacesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "spaces",
		Short: "List supported colour spaces",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, s := range a.codec.Spaces() {
				if s == swatches.NativeSpace {
					fmt.Fprintf(cmd.OutOrStdout(), "%s (native)\n", s)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
		},
	}
}
