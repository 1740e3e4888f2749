package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yuchanns.xyz/dynlib"
)

var (
	resolveOS      string
	resolveArch    string
	resolveRID     string
	resolveLenient bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve NAME",
	Short: "Resolve a library name for a platform",
	Long: `Resolve NAME for the running platform, for a runtime identifier (--rid),
for one platform (--os and --arch) or for every architecture of an
operating system (--os alone).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolverOptions()
		if err != nil {
			return err
		}
		r, err := dynlib.NewResolver(opts...)
		if err != nil {
			return err
		}

		name := args[0]
		switch {
		case resolveRID != "":
			p, err := dynlib.ParseRID(resolveRID)
			if err != nil {
				return err
			}
			err = addOne(r, name, p)
			if err != nil {
				return err
			}
		case resolveOS != "" && resolveArch == "":
			f, err := dynlib.ParseFamily(resolveOS)
			if err != nil {
				return err
			}
			if resolveLenient {
				_, err = r.TryAddFamily(name, f)
			} else {
				err = r.AddFamily(name, f)
			}
			if err != nil {
				return err
			}
		default:
			p := r.Platform()
			if resolveOS != "" {
				if p.Family, err = dynlib.ParseFamily(resolveOS); err != nil {
					return err
				}
			}
			if resolveArch != "" {
				if p.Arch, err = dynlib.ParseArch(resolveArch); err != nil {
					return err
				}
			}
			if err := addOne(r, name, p); err != nil {
				return err
			}
		}

		for _, c := range r.Candidates() {
			mark := " "
			if c.Platform.IsCurrent() {
				mark = "*"
			}
			rid, _ := c.Platform.RID()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %-12s %s\n", mark, rid, c.Path)
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveOS, "os", "", "target operating system (windows, macos, linux)")
	resolveCmd.Flags().StringVar(&resolveArch, "arch", "", "target architecture (x86, x64, arm, arm64)")
	resolveCmd.Flags().StringVar(&resolveRID, "rid", "", "target runtime identifier, e.g. win-x64")
	resolveCmd.Flags().BoolVar(&resolveLenient, "lenient", false, "print nothing instead of failing when not found")
	resolveCmd.MarkFlagsMutuallyExclusive("rid", "os")
	resolveCmd.MarkFlagsMutuallyExclusive("rid", "arch")
}

func addOne(r *dynlib.Resolver, name string, p dynlib.Platform) error {
	if resolveLenient {
		_, err := r.TryAdd(name, p)
		return err
	}
	return r.Add(name, p)
}
