package main

import (
	"os"

	"github.com/phuslu/log"
)

func main() {
	log.DefaultLogger = log.Logger{
		Level:  log.InfoLevel,
		Writer: &log.ConsoleWriter{ColorOutput: true, Writer: os.Stderr},
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
