// Package logger provides structured logging for the Late SDK and its
// command-line tool using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields. The SDK logs nothing
// unless it is handed a logger; NewNop is its default.
//
// # Configuration
//
//	log:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(&cfg, "late").WithComponent("httpclient")
//	log.Debug("request completed", logger.Fields("status", 200))
package logger
