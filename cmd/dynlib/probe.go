package main

import (
	"errors"
	"fmt"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"
	"go.yuchanns.xyz/dynlib"
)

var probeCmd = &cobra.Command{
	Use:   "probe NAME [SYMBOL...]",
	Short: "Load a library for the running platform and look up symbols",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		opts, err := resolverOptions()
		if err != nil {
			return err
		}
		lib, err := dynlib.NewLibrary(nil, opts...)
		if err != nil {
			return err
		}
		if err := lib.Add(args[0], lib.Platform()); err != nil {
			return err
		}
		if err := lib.Load(); err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, lib.Close())
		}()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "loaded %s\n", lib.Path())

		var missing int
		for _, name := range args[1:] {
			addr, err := lib.Symbol(name)
			if err != nil {
				log.Warn().Msgf("%v", err)
				missing++
				continue
			}
			fmt.Fprintf(out, "%-32s %#x\n", name, addr)
		}
		if missing > 0 {
			return fmt.Errorf("%d of %d symbols not found", missing, len(args)-1)
		}
		return nil
	},
}
