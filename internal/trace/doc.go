// Package trace records what the zinc driver is doing: which files it is
// working on and how long every pass (lex, parse, write, cache) takes.
//
// Enable it from the command line:
//
//	zinc fmt --trace=- --trace-level=detail models/
//
// Tracers:
//
//   - Nop: disabled tracing, zero overhead
//   - StreamTracer: writes every event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events for a dump after a failure
//   - MultiTracer: fans out to several tracers
//
// Scopes go from coarse to fine: driver, file, pass, item. A level lets through
// every scope up to its own: phase shows driver and file spans, detail adds
// passes, debug adds per-item points.
//
// Tracers travel in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.Start(ctx, trace.ScopeFile, path)
//	defer span.End("")
package trace
