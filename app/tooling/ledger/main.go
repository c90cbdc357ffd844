// This program provides an interactive shell for mining and appending
// blocks to an in memory ledger.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/ardanlabs/ledger/app/tooling/ledger/commands"
	"github.com/ardanlabs/ledger/foundation/blockchain/chain"
	"github.com/ardanlabs/ledger/foundation/blockchain/pow"
	"github.com/ardanlabs/ledger/foundation/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {

	// The logger writes to stderr by default so the log lines don't mix
	// with the shell output. LEDGER_LOG_PATH changes the destination.
	logPath := "stderr"
	if v := os.Getenv("LEDGER_LOG_PATH"); v != "" {
		logPath = v
	}

	// Construct the application logger.
	log, err := logger.New("LEDGER", logPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Ledger struct {
			Difficulty  int           `conf:"default:2,help:number of leading zero bytes a block hash needs"`
			MineTimeout time.Duration `conf:"default:0s,help:stop mining after this long or never when zero"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "copyright information here",
		},
	}

	// Parse will set the defaults and then look for any overriding values
	// in environment variables and command line flags.
	const prefix = "LEDGER"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Ledger.Difficulty < 0 {
		return fmt.Errorf("difficulty must not be negative, got %d", cfg.Ledger.Difficulty)
	}

	// =========================================================================
	// App Starting

	traceID := uuid.NewString()

	log.Infow("starting service", "version", build, "traceid", traceID)
	defer log.Infow("shutdown complete", "traceid", traceID)

	// Display the current configuration to the logs.
	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	// =========================================================================
	// Blockchain Support

	// The blockchain packages accept a function of this signature to allow
	// the application to log.
	ev := func(v string, args ...any) {
		log.Infow(fmt.Sprintf(v, args...), "traceid", traceID)
	}

	// An interrupt stops any mining in progress and ends the shell.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infow("startup", "status", "mining genesis block", "difficulty", cfg.Ledger.Difficulty)

	ch, err := chain.New(ctx, chain.Config{
		Validator: pow.ZeroBytes(cfg.Ledger.Difficulty),
		EvHandler: ev,
	})
	if err != nil {
		return err
	}

	// =========================================================================
	// Start Shell

	return commands.Run(ctx, commands.Config{
		Log:         log,
		Chain:       ch,
		MineTimeout: cfg.Ledger.MineTimeout,
	}, os.Stdin, os.Stdout)
}
