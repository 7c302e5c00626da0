package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/studiopipe/go-premiere/bridge/cep"
	"github.com/studiopipe/go-premiere/internal/config"
	"github.com/studiopipe/go-premiere/internal/logger"
	"github.com/studiopipe/go-premiere/internal/workers"
	"github.com/studiopipe/go-premiere/models"
	"github.com/studiopipe/go-premiere/premiere"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// premiere-info dumps a JSON snapshot of the host session to stdout.
// With -snapshot-interval set it keeps running and emits a snapshot on
// every tick until interrupted.
func main() {
	printBuildInfo()

	log := logger.NewLogger("premiere-info")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	client, err := cep.Dial(cfg.Bridge, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create host bridge")
	}

	session := premiere.NewSession(client.App(), log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	emit := func(info models.SessionInfo) {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(info); err != nil {
			log.Error().Err(err).Msg("encode session snapshot")
		}
	}

	if cfg.Workers.SnapshotInterval > 0 {
		worker := workers.NewSnapshotWorker(session, cfg.Workers.SnapshotInterval, emit, log)
		workers.New(worker).Run(ctx)
		return
	}

	info, err := session.GetInfo(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("collect session snapshot")
	}
	emit(info)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
