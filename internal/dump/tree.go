// Package dump renders the CST, the AST, and the IDT/BLT/ART symbol
// tables for human and machine consumption: a box-drawing connector tree
// in text mode (grounded on original_source/src/ast_nodes.py's AST.cetak
// and parser2.py's ParserRoot.cetak, both of which walk a node's fields
// generically rather than special-casing each node type), plus JSON and
// YAML encodings for the `dump` CLI subcommand's --format flag.
package dump

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Tree renders v as a box-drawing connector tree, the text-mode dump
// format. v is typically a *cst.Node, an ast.Node, or a symbol-table
// slice/struct — Tree walks any value generically via reflection, the
// same way ast_nodes.py's cetak walks a node's __dict__ without a
// per-class method.
func Tree(v any) string {
	var sb strings.Builder
	sb.WriteString(label(reflect.ValueOf(v)))
	writeChildren(&sb, reflect.ValueOf(v), "")
	return sb.String()
}

// label names the value the way cetak prints "ClassName" for a node and
// a quoted/raw literal for a scalar.
func label(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "nil"
		}
		v = v.Elem()
	}
	if v.CanInterface() {
		if s, ok := v.Interface().(fmt.Stringer); ok {
			if v.Kind() != reflect.Struct {
				return s.String()
			}
		}
	}
	switch v.Kind() {
	case reflect.Struct:
		return v.Type().Name()
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("[%d]", v.Len())
	case reflect.String:
		return fmt.Sprintf("%q", v.String())
	default:
		if v.CanInterface() {
			return fmt.Sprintf("%v", v.Interface())
		}
		return fmt.Sprintf("%v", v)
	}
}

// dumpField is one labeled child of a struct, slice, or map value.
type dumpField struct {
	name string
	val  reflect.Value
}

// structFields lists a struct's exported fields, flattening anonymous
// embedded fields (e.g. ast's exprBase) the way Go itself promotes them —
// the embedding type's own name may be unexported, but its exported
// fields (Type, the annotation) still belong at the outer node's level.
func structFields(v reflect.Value) []dumpField {
	var out []dumpField
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		if f.Anonymous {
			inner := fv
			for inner.Kind() == reflect.Ptr {
				if inner.IsNil() {
					continue
				}
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				out = append(out, structFields(inner)...)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		out = append(out, dumpField{f.Name, fv})
	}
	return out
}

// writeChildren appends one connector line per field/element of v under
// prefix, recursing into struct fields, slice elements, and map entries
// (map entries sorted by key for deterministic output).
func writeChildren(sb *strings.Builder, v reflect.Value, prefix string) {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return
	}

	var children []dumpField

	switch v.Kind() {
	case reflect.Struct:
		children = structFields(v)
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			children = append(children, dumpField{fmt.Sprintf("[%d]", i), v.Index(i)})
		}
	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprintf("%v", keys[i].Interface()) < fmt.Sprintf("%v", keys[j].Interface())
		})
		for _, k := range keys {
			children = append(children, dumpField{fmt.Sprintf("%v", k.Interface()), v.MapIndex(k)})
		}
	default:
		return
	}

	for i, c := range children {
		last := i == len(children)-1
		connector := "├── "
		nextPrefix := prefix + "│   "
		if last {
			connector = "└── "
			nextPrefix = prefix + "    "
		}
		fmt.Fprintf(sb, "\n%s%s%s: %s", prefix, connector, c.name, label(c.val))
		writeChildren(sb, c.val, nextPrefix)
	}
}
