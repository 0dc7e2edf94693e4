package ast

// Procedure is a "prosedur" declaration (spec §3.3).
type Procedure struct {
	Name   string
	Params []*ParamGroup
	Body   *Block
}

func (*Procedure) astNode()          {}
func (*Procedure) subprogramNode()   {}
func (p *Procedure) SubName() string { return p.Name }

// Function is a "fungsi" declaration (spec §3.3).
type Function struct {
	Name       string
	Params     []*ParamGroup
	ReturnType TypeDef
	Body       *Block
}

func (*Function) astNode()          {}
func (*Function) subprogramNode()   {}
func (f *Function) SubName() string { return f.Name }
