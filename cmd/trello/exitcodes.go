package main

// Exit codes for the CLI
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitNotConfigured = 2
	ExitUnavailable   = 3
	ExitBadResponse   = 4
)
