// Package fuzztests holds Go fuzz harnesses for the front end
// (source -> lexer -> parser -> writer). They guard against panics and hangs
// on arbitrary bytes and check that formatting never changes a parsed program.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
