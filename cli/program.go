package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter/convert"
	"go-currency-converter/domain"
	"go-currency-converter/exchange"
	"go-currency-converter/export"
	"go-currency-converter/input"
	"go-currency-converter/symbols"
	"io"
)

// Exit codes
const (
	exitOK         = 0
	exitReported   = 1
	exitUnexpected = 2
)

// program runs a single conversion: resolve input, build the symbol table,
// convert and export.
type program struct {
	rates     exchange.Service
	converter convert.Service
	symbolFor symbols.SymbolFunc

	// path the result is exported to
	path string

	// stdout receives the messages of reported failures
	stdout io.Writer

	logger log.Logger
}

// run executes the program and returns the process exit code
func (p *program) run(ctx context.Context, args []string) int {
	return p.report(p.execute(ctx, args))
}

func (p *program) execute(ctx context.Context, args []string) error {
	request, err := input.Resolve(args, p.stdout)
	if err != nil {
		return err
	}

	table, err := symbols.Build(ctx, p.rates, p.symbolFor)
	if err != nil {
		return err
	}
	level.Debug(p.logger).Log("msg", "symbol table built", "symbols", len(table))

	result, err := p.converter.Convert(ctx, request, table)
	if err != nil {
		return err
	}

	if err := export.JSON(p.path, result); err != nil {
		return err
	}
	level.Info(p.logger).Log("msg", "exported", "path", p.path, "outputs", len(result.Output))
	return nil
}

// report maps the outcome of a run onto an exit code. Parameter and rate
// failures are printed for the operator; anything else is logged as unexpected.
func (p *program) report(err error) int {
	switch {
	case err == nil, errors.Is(err, input.ErrHelp):
		return exitOK
	case domain.Reportable(err):
		fmt.Fprintln(p.stdout, message(err))
		return exitReported
	default:
		level.Error(p.logger).Log("msg", "conversion failed", "err", err)
		return exitUnexpected
	}
}

// message the operator facing text of a reported error
func message(err error) string {
	var userErr *domain.UserError
	if errors.As(err, &userErr) {
		return userErr.Message
	}
	return "Error: " + err.Error()
}
