package semantic

import (
	"github.com/rangkaian/kompilator/internal/ast"
	"github.com/rangkaian/kompilator/internal/typesys"
)

// analyzeDecls walks one DeclBlock in source order: constants, types,
// variables, subprograms (spec §4.3, mirroring NTDeclarationPart's fixed
// section order).
func (a *Analyzer) analyzeDecls(decls *ast.DeclBlock) error {
	for _, c := range decls.Consts {
		if err := a.analyzeConstItem(c); err != nil {
			return err
		}
	}
	for _, t := range decls.Types {
		if err := a.analyzeTypeItem(t); err != nil {
			return err
		}
	}
	for _, v := range decls.Vars {
		if err := a.analyzeVarItem(v); err != nil {
			return err
		}
	}
	for _, s := range decls.Subprograms {
		if err := a.analyzeSubprogram(s); err != nil {
			return err
		}
	}
	return nil
}

// analyzeConstItem types the literal value and enters a CONST (spec §4.3:
// constants are "normal = 0" per spec §3.4's Normal-flag definition).
func (a *Analyzer) analyzeConstItem(c *ast.ConstItem) error {
	typ, err := a.typeExpr(c.Value)
	if err != nil {
		return err
	}
	c.InferredType = typ.Code

	addr, _ := a.evalStatic(c.Value) // best-effort; non-numeric constants keep addr 0
	_, err = a.enter(c.Name, typesys.CONST, typ, false, addr)
	return err
}

// analyzeTypeItem resolves the type-definition and enters a TYPE entry
// carrying its normalized representation (spec §4.3 "Type resolution",
// §3.6 invariant on TYPE.addr).
func (a *Analyzer) analyzeTypeItem(t *ast.TypeItem) error {
	ref, err := a.resolveAndChase(t.Def)
	if err != nil {
		return err
	}
	_, err = a.enter(t.Name, typesys.TYPE, ref, true, a.addrOf(ref))
	return err
}

// analyzeVarItem enters one VAR per identifier, advancing the current
// block's vsze by the type's footprint for each (spec §4.3 "Variable
// declaration").
func (a *Analyzer) analyzeVarItem(v *ast.VarItem) error {
	ref, err := a.resolveAndChase(v.Type)
	if err != nil {
		return err
	}
	size := a.sizeOf(ref)
	for _, name := range v.Names {
		block := a.currentBlock()
		if _, err := a.enter(name, typesys.VAR, ref, true, block.Vsze); err != nil {
			return err
		}
		block = a.currentBlock()
		block.Vsze += size
	}
	return nil
}

// constructArray implements spec §4.3 "Array construction".
func (a *Analyzer) constructArray(t *ast.ArrayType) (int, error) {
	var inxTyp typesys.Code
	var low, high, charBase int

	if isCharLiteral(t.Lo) || isCharLiteral(t.Hi) {
		inxTyp = typesys.CHAR
		loVal, err := a.evalStatic(t.Lo)
		if err != nil {
			return 0, err
		}
		hiVal, err := a.evalStatic(t.Hi)
		if err != nil {
			return 0, err
		}
		charBase = loVal
		low = 1
		high = hiVal - loVal + 1
	} else {
		inxTyp = typesys.INT
		var err error
		low, err = a.evalStatic(t.Lo)
		if err != nil {
			return 0, err
		}
		high, err = a.evalStatic(t.Hi)
		if err != nil {
			return 0, err
		}
	}

	var elTyp typesys.Code
	var elRef, elSize int
	if innerArray, ok := t.Elem.(*ast.ArrayType); ok {
		innerIdx, err := a.constructArray(innerArray)
		if err != nil {
			return 0, err
		}
		elTyp = typesys.ARRAY
		elRef = innerIdx
		elSize = a.ART[innerIdx].Size
	} else {
		ref, err := a.resolveAndChase(t.Elem)
		if err != nil {
			return 0, err
		}
		elTyp = ref.Code
		elRef = ref.Ref
		elSize = a.sizeOf(ref)
	}

	size := (high - low + 1) * elSize
	a.ART = append(a.ART, ARTEntry{
		InxTyp:   inxTyp,
		ElTyp:    elTyp,
		ElRef:    elRef,
		Low:      low,
		High:     high,
		ElSize:   elSize,
		Size:     size,
		CharBase: charBase,
	})
	return len(a.ART) - 1, nil
}

// constructRecord implements spec §4.3 "Record construction": push a
// block, enter each field as VAR at a running offset, pop, return the
// block index and total size.
func (a *Analyzer) constructRecord(t *ast.RecordType) (int, int, error) {
	a.level++
	a.BLT = append(a.BLT, BLTEntry{Last: 0, Lpar: 0, Psze: 0, Vsze: 0, paramFloor: 0})
	idx := len(a.BLT) - 1
	a.display[a.level] = idx

	for _, group := range t.Fields {
		ref, err := a.resolveAndChase(group.Type)
		if err != nil {
			a.level--
			return 0, 0, err
		}
		size := a.sizeOf(ref)
		for _, name := range group.Names {
			block := a.currentBlock()
			if _, err := a.enter(name, typesys.VAR, ref, true, block.Vsze); err != nil {
				a.level--
				return 0, 0, err
			}
			block = a.currentBlock()
			block.Vsze += size
		}
	}

	total := a.BLT[idx].Vsze
	a.level--
	return idx, total, nil
}

// analyzeSubprogram implements spec §4.3 "Subprogram": enter the PROC/FUNC
// entry at the outer level, push a new block inheriting the outer chain,
// analyze parameters and the nested block, then pop.
func (a *Analyzer) analyzeSubprogram(s ast.Subprogram) error {
	switch sub := s.(type) {
	case *ast.Procedure:
		return a.analyzeSubprogramCommon(sub.Name, typesys.PROC, typesys.Ref{}, sub.Params, sub.Body)
	case *ast.Function:
		retRef, err := a.resolveAndChase(sub.ReturnType)
		if err != nil {
			return err
		}
		return a.analyzeSubprogramCommon(sub.Name, typesys.FUNC, retRef, sub.Params, sub.Body)
	}
	panic("semantic: unknown Subprogram variant")
}

func (a *Analyzer) analyzeSubprogramCommon(name string, kind typesys.EntryKind, retRef typesys.Ref, params []*ast.ParamGroup, body *ast.Block) error {
	subIdx, err := a.enter(name, kind, retRef, true, 0)
	if err != nil {
		return err
	}

	outer := a.currentBlock()
	a.level++
	a.BLT = append(a.BLT, BLTEntry{Last: outer.Last, Lpar: 0, Psze: 0, Vsze: 0, paramFloor: outer.Last})
	a.display[a.level] = len(a.BLT) - 1

	paramIdx := 0
	for _, group := range params {
		ref, err := a.resolveAndChase(group.Type)
		if err != nil {
			a.level--
			return err
		}
		for _, pname := range group.Names {
			if _, err := a.enter(pname, typesys.PARAM, ref, !group.IsVar, paramIdx); err != nil {
				a.level--
				return err
			}
			paramIdx++
			a.IDT[subIdx].ParamTypes = append(a.IDT[subIdx].ParamTypes, ref.Code)
			a.IDT[subIdx].ParamIsVar = append(a.IDT[subIdx].ParamIsVar, group.IsVar)
		}
	}

	block := a.currentBlock()
	block.Lpar = block.Last
	block.Psze = paramIdx

	if err := a.analyzeDecls(body.Decls); err != nil {
		a.level--
		return err
	}
	if err := a.analyzeCompound(body.Body); err != nil {
		a.level--
		return err
	}
	a.level--
	return nil
}
