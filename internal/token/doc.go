// Package token defines lexical token kinds, tokens and trivia for the zinc front end.
// Invariants:
//   - Token.Text is the exact source lexeme (quotes and escapes included).
//   - Token.Span matches Text exactly (Start..End); Line/Col are 1-based and
//     describe Span.Start.
//   - Literal payloads live in Int/Float/Str; Text is never re-parsed downstream.
//   - Comments are never part of the token stream: when kept, they ride on the
//     next token as Leading trivia.
//   - Keyword and spelling tables are immutable after the first call to Tables().
package token
