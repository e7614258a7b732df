package main

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter/config"
	"io"
)

// newLogger builds the process logger from configuration. cfg is assumed valid.
func newLogger(w io.Writer, cfg *config.Config) log.Logger {
	w = log.NewSyncWriter(w)

	var logger log.Logger
	if cfg.LogFormat == "json" {
		logger = log.NewJSONLogger(w)
	} else {
		logger = log.NewLogfmtLogger(w)
	}
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return level.NewFilter(logger, levelOption(cfg.LogLevel))
}

func levelOption(name string) level.Option {
	switch name {
	case "debug":
		return level.AllowDebug()
	case "info":
		return level.AllowInfo()
	case "error":
		return level.AllowError()
	default:
		return level.AllowWarn()
	}
}
