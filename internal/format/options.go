package format

type Options struct {
	// Minify: минимальный вывод в одну строку; без него pretty.
	Minify bool
	// Prettify упорядочивает элементы модели: include, объявления и
	// присваивания, constraint, solve, output (стабильно внутри групп).
	Prettify bool
	// Indent: ширина отступа в pretty-режиме (по умолчанию 2).
	Indent int
}

func (o Options) withDefaults() Options {
	if o.Indent <= 0 {
		o.Indent = 2
	}
	return o
}
