package main

import (
	"log/slog"

	sloglogrus "github.com/samber/slog-logrus/v2"
	slogmulti "github.com/samber/slog-multi"
	"github.com/sirupsen/logrus"
)

// setupLogging routes slog through logrus, the same handler chain the rest
// of our tooling uses.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
		logrus.StandardLogger().SetLevel(logrus.DebugLevel)
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(
		sloglogrus.Option{Level: level, Logger: logrus.StandardLogger()}.NewLogrusHandler(),
	)))
}
