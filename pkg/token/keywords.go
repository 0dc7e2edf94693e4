package token

// ReservedWords is the language's keyword catalogue, in declaration order.
// This is the canonical list the identifier table (semantic.IDT) preloads
// at init — see spec §3.4 and §6.1.
//
// spec §3.4 calls this "the 28 language keywords"; §6.1's lexeme list, once
// "dan", "atau", "bagi", "mod" and "tidak" are pulled out as operator-kind
// tokens (they appear in the grammar as LOGICAL_OPERATOR / MULTIPLICATIVE_
// OPERATOR / ADDITIVE_OPERATOR terminals, not KEYWORD terminals — see
// original_source/src/parser2.py's MultiplicativeOperatorNode /
// AdditiveOperatorNode / FactorNode) and "dari" is deduplicated, yields 29
// distinct names. The off-by-one against the spec's prose is an inherent
// ambiguity (DESIGN.md records the decision); nothing downstream depends on
// the literal value 28, only on len(ReservedWords), so the discrepancy is
// harmless.
var ReservedWords = []string{
	"program",
	"konstanta",
	"tipe",
	"variabel",
	"prosedur",
	"fungsi",
	"mulai",
	"selesai",
	"jika",
	"maka",
	"selain-itu",
	"selama",
	"lakukan",
	"untuk",
	"ke",
	"turun-ke",
	"ulangi",
	"sampai",
	"kasus",
	"dari",
	"larik",
	"rekaman",
	"integer",
	"real",
	"boolean",
	"char",
	"string",
	"benar",
	"salah",
}

// PrimitiveTypeNames maps a primitive type keyword to its IDT/ART primitive
// code (spec §3.4): 1 INT, 2 REAL, 3 BOOL, 4 CHAR, 5 STRING.
var PrimitiveTypeNames = map[string]int{
	"integer": 1,
	"real":    2,
	"boolean": 3,
	"char":    4,
	"string":  5,
}

// IsBooleanLiteral reports whether a KEYWORD lexeme spells a boolean
// literal ("benar"/"salah").
func IsBooleanLiteral(lexeme string) bool {
	return lexeme == "benar" || lexeme == "salah"
}

// Word operator lexemes. dan/atau/tidak carry LOGICAL_OPERATOR kind despite
// being used at additive/multiplicative precedence (spec §4.1 grammar
// highlights); bagi/mod carry MULTIPLICATIVE_OPERATOR kind.
const (
	LexDan    = "dan"    // multiplicative-level boolean AND
	LexAtau   = "atau"   // additive-level boolean OR
	LexTidak  = "tidak"  // unary prefix NOT
	LexBagi   = "bagi"   // multiplicative-level integer division
	LexModulo = "mod"    // multiplicative-level remainder
)
