package vm

import "github.com/ethereum/go-ethereum/log"

// logger is the package-scoped structured logger, following the
// teacher's own wiring of github.com/ethereum/go-ethereum/log in
// cmd/eth2030-geth/main.go (log.New(ctx...), Logger.Debug/Warn). A
// library logs at Debug for step traces and Warn immediately before a
// fatal dispatch error is returned — never at Info or Error, since this
// package has no business deciding what's noteworthy for an operator.
var logger = log.New("module", "vm")
