package lexer

import (
	"zinc/internal/diag"
	"zinc/internal/source"
)

type Options struct {
	// Reporter может быть nil, тогда ошибки видны только как token.Invalid.
	Reporter diag.Reporter
	// KeepComments attaches comments to the following token as Leading trivia.
	KeepComments bool
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
