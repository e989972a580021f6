package format

// Writer accumulates formatted output. Every lexeme goes through Token, which
// inserts a separating space only when the previous lexeme would otherwise
// fuse with the next one.
type Writer struct {
	opt         Options
	buf         []byte
	indentLevel int
	atLineStart bool
}

// NewWriter creates a new formatting writer.
func NewWriter(opt Options) *Writer {
	return &Writer{opt: opt.withDefaults(), buf: make([]byte, 0, 256)}
}

// Bytes returns the accumulated formatted output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) String() string {
	return string(w.buf)
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	for range w.indentLevel * w.opt.Indent {
		w.buf = append(w.buf, ' ')
	}
	w.atLineStart = false
}

// Token writes one lexeme, separated from the previous one if they would fuse.
func (w *Writer) Token(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	if n := len(w.buf); n > 0 && fuses(w.buf[n-1], s[0]) {
		w.buf = append(w.buf, ' ')
	}
	w.buf = append(w.buf, s...)
}

// WriteString writes s verbatim (comments, pre-rendered text).
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
	w.atLineStart = s[len(s)-1] == '\n'
}

// Space writes a single space if the output doesn't already end with whitespace.
func (w *Writer) Space() {
	if len(w.buf) == 0 || w.atLineStart {
		return
	}
	last := w.buf[len(w.buf)-1]
	if last == ' ' || last == '\n' {
		return
	}
	w.buf = append(w.buf, ' ')
}

// Newline writes a newline if the output doesn't already end with one.
func (w *Writer) Newline() {
	if len(w.buf) > 0 && w.buf[len(w.buf)-1] != '\n' {
		w.buf = append(w.buf, '\n')
	}
	w.atLineStart = len(w.buf) > 0
}

// Column is the byte offset of the write position within the current line.
func (w *Writer) Column() int {
	for i := len(w.buf) - 1; i >= 0; i-- {
		if w.buf[i] == '\n' {
			return len(w.buf) - 1 - i
		}
	}
	return len(w.buf)
}

// AlignTo starts a new line and pads it to column col.
func (w *Writer) AlignTo(col int) {
	w.Newline()
	w.atLineStart = false
	for range col {
		w.buf = append(w.buf, ' ')
	}
}

// IndentPush increases the indentation level.
func (w *Writer) IndentPush() {
	w.indentLevel++
}

// IndentPop decreases the indentation level.
func (w *Writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}

// fusePairs are character pairs that scan as (the start of) a longer token.
var fusePairs = map[[2]byte]bool{
	{'<', '-'}: true, {'-', '>'}: true, {'<', '>'}: true, {'<', '='}: true,
	{'>', '='}: true, {'=', '='}: true, {'!', '='}: true, {'+', '+'}: true,
	{'-', '-'}: true, {'/', '\\'}: true, {'\\', '/'}: true, {'/', '*'}: true,
	{'*', '/'}: true, {'.', '.'}: true, {':', ':'}: true,
}

func fuses(a, b byte) bool {
	if isWordByte(a) && isWordByte(b) {
		return true
	}
	return fusePairs[[2]byte{a, b}]
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}
