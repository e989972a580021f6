// Package format renders the AST back into source text.
//
// Назначение: структурная инверсия парсера. Вывод любого режима разбирается
// обратно в равное (ast.Equal) дерево.
// Режимы: minify (без лишних пробелов, пробел только там, где соседние лексемы
// слиплись бы) и pretty (элемент на строку, пробелы вокруг операторов,
// двумерные массивы построчно, комментарии элементов сохраняются).
// Не делает: IO, разрешения include, семантических проверок.
// Зависимости: internal/ast, internal/lexer (имена), internal/parser (CheckRoundTrip).
package format
