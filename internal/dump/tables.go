package dump

// Tables bundles the three symbol tables into one value for `dump
// --target tables`: a single JSON/YAML document with top-level "idt",
// "blt", "art" keys, matching the gjson query paths SPEC_FULL.md's domain
// stack section names ("idt.3.name", "art.1.size").
type Tables struct {
	IDT any `json:"idt" yaml:"idt"`
	BLT any `json:"blt" yaml:"blt"`
	ART any `json:"art" yaml:"art"`
}
