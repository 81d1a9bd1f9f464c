package contcompile

import "github.com/bdwalton/ccanim/contast"

func (st *state) compileSet(p *contast.Procedure) {
	st.vars[p.Var] = contVar{val: st.Eval(p.Expr), set: true}
}
