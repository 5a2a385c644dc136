// Package logger wraps zap to provide:
//   - a global sugared logger with a console encoder,
//   - context helpers (ToContext, FromContext, WithKV),
//   - level parsing and file-backed loggers for use while the TUI owns
//     the terminal.
package logger
