package main

import (
	"context"
	"fmt"
	"github.com/go-kit/log"
	"go-currency-converter/coinbase"
	"go-currency-converter/config"
	"go-currency-converter/convert"
	"go-currency-converter/exchange"
	"go-currency-converter/export"
	"go-currency-converter/symbols"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, config.Usage())
		os.Exit(exitUnexpected)
	}

	logger := newLogger(os.Stderr, cfg)

	locale, err := symbols.ParseLocale(cfg.SymbolLocale)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUnexpected)
	}

	coinbaseService := coinbase.NewService(cfg.RatesURL, cfg.HTTPTimeout)
	coinbaseService = coinbase.NewLoggingService(log.With(logger, "component", "coinbase_rest"), coinbaseService)

	exchangeService := exchange.NewService(coinbaseService)
	exchangeService = exchange.NewLoggingService(log.With(logger, "component", "exchange"), exchangeService)

	convertService := convert.NewService(exchangeService)
	convertService = convert.NewLoggingService(log.With(logger, "component", "convert"), convertService)

	p := &program{
		rates:     exchangeService,
		converter: convertService,
		symbolFor: symbols.CLDR(locale),
		path:      export.DefaultPath,
		stdout:    os.Stdout,
		logger:    log.With(logger, "component", "program"),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := p.run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
