package parser

import "testing"

// FuzzParse exercises the parser with the corpus below and whatever the
// fuzzer mutates from it. Parse recovers from internal panics into an E299
// error, so the only real invariant here is "never panics to the caller".
func FuzzParse(f *testing.F) {
	seeds := []string{
		`(defn add [a b] (+ a b))`,
		`(let [x 5] x)`,
		`(if (> x 0) 1 0)`,
		`(match xs [[h | t] h] [[] 0])`,
		`(deftype Color [Red] [Green] [Blue] deriving [Eq Show])`,
		`(process P (init 0) (handlers [:inc (n) (+ n 1)]))`,
		`(`,
		`)`,
		`(defn`,
		`[1 2 3]`,
		`"unterminated`,
		``,
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		p := NewFromSource("fuzz://unit", []byte(input))
		_ = p.Parse()
	})
}
