package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yuchanns.xyz/dynlib"
)

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Show the running platform and its runtime identifiers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := dynlib.Current()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "platform:   %s\n", p)
		if rid, ok := p.RID(); ok {
			fmt.Fprintf(out, "rid:        %s\n", rid)
		}
		if rid, ok := dynlib.RuntimeIdentifier(); ok {
			fmt.Fprintf(out, "exact rid:  %s\n", rid)
		}
		fmt.Fprintf(out, "arches:     %v\n", dynlib.SupportedArchitectures(p.Family))
		return nil
	},
}
