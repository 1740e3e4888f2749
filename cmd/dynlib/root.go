package main

import (
	"fmt"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"
	"go.yuchanns.xyz/dynlib"
)

var (
	// verbose enables debug logging of every strategy
	verbose bool
	// manifestPath overrides the manifest found next to the executable
	manifestPath string
	// noBruteForce disables the executable directory search
	noBruteForce bool

	rootCmd = &cobra.Command{
		Use:   "dynlib",
		Short: "Locate and load platform specific native libraries",
		Long: `dynlib resolves logical library names to files on disk the same way
the dynlib package does at runtime: the name as given, runtimes/<rid>/
directories, Windows system folders, declared dependency assets and a
search of the executable directory.

Examples:
  dynlib platform                     Show the running platform
  dynlib resolve glfw3.dll --os windows
  dynlib probe liblua54.so lua_newstate lua_close`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.DefaultLogger.SetLevel(log.DebugLevel)
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every resolution step")
	rootCmd.PersistentFlags().StringVar(&manifestPath, "manifest", "", "dependency manifest (.deps.json or .toml)")
	rootCmd.PersistentFlags().BoolVar(&noBruteForce, "no-brute-force", false, "do not search the executable directory")

	rootCmd.AddCommand(platformCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(probeCmd)
}

func resolverOptions() ([]dynlib.Option, error) {
	opts := []dynlib.Option{dynlib.WithBruteForce(!noBruteForce)}
	if manifestPath != "" {
		m, err := dynlib.LoadManifest(manifestPath)
		if err != nil {
			return nil, fmt.Errorf("load manifest: %w", err)
		}
		opts = append(opts, dynlib.WithManifest(m))
	}
	return opts, nil
}
