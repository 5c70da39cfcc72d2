package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"

	"github.com/ddenet/chain/chainlog"
)

const defaultLogFilename = "chainctl.log"

// config defines the top-level options shared by every subcommand.
type config struct {
	DataDir  string `short:"d" long:"datadir" description:"Directory holding the transaction/block store" default:"chaindata"`
	LogDir   string `long:"logdir" description:"Directory to write logs to" default:"."`
	Debug    string `long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}" default:"info"`
}

var cfg = config{}

// loadConfig parses command-line flags into cfg and wires up logging.
// Subcommands are registered by the caller before this runs.
func loadConfig(parser *flags.Parser) error {
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return err
	}

	logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
	if err := chainlog.InitLogRotator(logFile); err != nil {
		return fmt.Errorf("failed to init log rotator: %w", err)
	}
	chainlog.SetLogLevels(cfg.Debug)

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}
