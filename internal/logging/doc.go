// Package logging provides structured diagnostic logging for idnls.
//
// The inventory the tool prints on stdout is its primary output, so zap
// logging goes to stderr and is silent unless IDNLS_LOG_LEVEL (or a config
// file log level) turns it on. Debug level traces provider parsing,
// including unit identifier hex dumps.
package logging
