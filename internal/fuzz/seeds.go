package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

var builtinSeeds = []string{
	"",
	"int: n = 8;\narray[1..n] of var 1..n: q;\nconstraint alldifferent(q);\nsolve satisfy;\n",
	"include \"globals.mzn\";\nvar 0..10: x :: add_to_output;\nsolve maximize x;\n",
	"constraint forall(i, j in 1..n where i < j)(q[i] != q[j] + j - i);\n",
	"predicate p(var int: x) = x > 0;\nfunction int: sq(int: x) = x * x;\n",
	"output [\"x = \\(x)\\n\"];\n",
	"enum Color = {Red, Green, Blue};\nset of int: S = {1, 3, 5} union 7..9;\n",
	"var int: y = let { int: a = 2; var int: b; } in a + b;\n",
	"constraint if x < 0 then y = -x elseif x = 0 then y = 0 else y = x endif;\n",
	"array[1..2, 1..3] of int: m = [| 1, 2, 3 | 4, 5, 6 |];\n",
	"tuple(int, bool): t = (1, true);\nrecord(int: a): r = (a: 1);\n",
	"n = 3;\nxs = [1, 2, 3];\nname = \"q\";\ns = {};\n",
	"% comment\n/* block */ solve :: int_search(q, input_order, indomain_min) satisfy;\n",
	"constraint x < y < z;",
	"var int x;",
	"\"unterminated",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все .mzn и .dzn
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".mzn" && ext != ".dzn" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
