// Package diag defines the diagnostic model shared by the lexer, parser, driver
// and configuration layers.
//
// Diagnostic is the central record: Severity, a stable numeric Code (LEXnnnn,
// SYNnnnn, IOnnnn, PRJnnnn), a short Message, a primary source.Span and
// optional Notes/Fixes. Producers emit through a Reporter so that storage (Bag)
// and rendering (internal/diagfmt) stay decoupled from the phases.
//
// The package performs no IO and no formatting beyond FormatShort, which is
// used by tests and the CLI short output.
package diag
