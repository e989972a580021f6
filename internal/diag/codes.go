package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexBadEscape                Code = 1005
	LexBadQuotedIdent           Code = 1006
	LexBadInfixIdent            Code = 1007
	LexBadPolyIdent             Code = 1008
	LexUnbalancedInterp         Code = 1009

	// Синтаксические
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnexpectedEOF      Code = 2002
	SynExpectSemicolon    Code = 2003
	SynExpectExpression   Code = 2004
	SynExpectType         Code = 2005
	SynExpectIdentifier   Code = 2006
	SynUnclosedParen      Code = 2007
	SynUnclosedBracket    Code = 2008
	SynUnclosedBrace      Code = 2009
	SynNonAssocChain      Code = 2010
	SynBadArrayShape      Code = 2011
	SynMixedTupleRecord   Code = 2012
	SynBadGenerator       Code = 2013
	SynNotDataExpression  Code = 2014
	SynDuplicateDataKey   Code = 2015
	SynTrailingInput      Code = 2016
	SynBadSolveGoal       Code = 2017
	SynExpectEndif        Code = 2018
	SynDataItemNotAllowed Code = 2019

	// Форматирование
	FmtInfo           Code = 3000
	FmtDroppedComment Code = 3001

	// I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002
	IOCacheError     Code = 4003

	// Конфигурация
	ProjInfo          Code = 5000
	ProjBadManifest   Code = 5001
	ProjInvalidOption Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed numeric literal",
	LexBadEscape:                "Invalid escape sequence",
	LexBadQuotedIdent:           "Malformed quoted identifier",
	LexBadInfixIdent:            "Malformed backtick identifier",
	LexBadPolyIdent:             "Malformed type-inst variable",
	LexUnbalancedInterp:         "Unbalanced string interpolation",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnexpectedEOF:            "Unexpected end of input",
	SynExpectSemicolon:          "Missing semicolon",
	SynExpectExpression:         "Expected expression",
	SynExpectType:               "Expected type",
	SynExpectIdentifier:         "Expected identifier",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBracket:          "Unclosed bracket",
	SynUnclosedBrace:            "Unclosed brace",
	SynNonAssocChain:            "Non-associative operators cannot be chained",
	SynBadArrayShape:            "Inconsistent array literal shape",
	SynMixedTupleRecord:         "Mixed tuple and record fields",
	SynBadGenerator:             "Malformed generator",
	SynNotDataExpression:        "Expression not allowed in data",
	SynDuplicateDataKey:         "Duplicate data assignment",
	SynTrailingInput:            "Unexpected input after end",
	SynBadSolveGoal:             "Expected satisfy, minimize or maximize",
	SynExpectEndif:              "Missing endif",
	SynDataItemNotAllowed:       "Only assignments are allowed in data",
	FmtInfo:                     "Formatting information",
	FmtDroppedComment:           "Formatting would drop a comment",
	IOLoadFileError:             "Failed to load file",
	IOWriteFileError:            "Failed to write file",
	IOCacheError:                "Cache failure",
	ProjInfo:                    "Configuration information",
	ProjBadManifest:             "Malformed zinc.toml",
	ProjInvalidOption:           "Invalid configuration value",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("FMT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// IsLexical reports whether the code belongs to the lexer range.
func (c Code) IsLexical() bool { return c >= 1000 && c < 2000 }
