package main

import (
	"errors"
	"log"
	"os"

	"github.com/boardkit/trello/internal/config"
	"github.com/boardkit/trello/pkg/trello"
)

// getClient creates a client from the resolved credentials
func getClient() (*trello.Client, error) {
	var (
		creds *config.Credentials
		err   error
	)
	if configPath != "" {
		creds, err = config.ResolveFile(configPath)
	} else {
		creds, err = config.Resolve()
	}
	if err != nil {
		return nil, err
	}

	opts := creds.ClientOptions()
	if verbose {
		opts = append(opts, trello.WithLogger(log.New(os.Stderr, "trello: ", log.LstdFlags)))
	}
	return trello.NewClient(opts...)
}

// currentFormat returns the selected output format. --json wins over
// --output.
func currentFormat() (string, error) {
	if jsonOutput {
		return formatJSON, nil
	}
	return parseFormat(outputFormat)
}

// mapErrorToExitCode maps an error to the appropriate exit code
func mapErrorToExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, config.ErrNotConfigured) {
		return ExitNotConfigured
	}
	if trello.IsResourceUnavailable(err) {
		return ExitUnavailable
	}
	if trello.IsMappingError(err) {
		return ExitBadResponse
	}

	return ExitGeneralError
}

// handleError handles an error by printing it and exiting with the appropriate code
func handleError(err error) {
	if err == nil {
		return
	}

	format, ferr := currentFormat()
	if ferr != nil {
		format = formatText
	}
	printError(os.Stderr, err, format)
	os.Exit(mapErrorToExitCode(err))
}
