package contparse

import (
	"regexp"
	"strconv"

	"github.com/bdwalton/ccanim/contast"
	"github.com/bdwalton/ccanim/geom"
)

var refPointRE = regexp.MustCompile(`^R([0-9]+)$`)

var procKeywords = map[string]contast.ProcKind{
	"BLAM":     contast.ProcBlam,
	"CM":       contast.ProcCM,
	"DMCM":     contast.ProcDMCM,
	"DMHS":     contast.ProcDMHS,
	"EVEN":     contast.ProcEven,
	"EWNS":     contast.ProcEWNS,
	"FOUNTAIN": contast.ProcFountain,
	"FM":       contast.ProcFM,
	"FMTO":     contast.ProcFMTO,
	"GRID":     contast.ProcGrid,
	"HSCM":     contast.ProcHSCM,
	"HSDM":     contast.ProcHSDM,
	"MAGIC":    contast.ProcMagic,
	"MARCH":    contast.ProcMarch,
	"MT":       contast.ProcMT,
	"MTRM":     contast.ProcMTRM,
	"NSEW":     contast.ProcNSEW,
	"ROTATE":   contast.ProcRotate,
}

var variableNames = map[string]contast.Variable{
	"A": contast.VarA, "B": contast.VarB, "C": contast.VarC, "D": contast.VarD,
	"X": contast.VarX, "Y": contast.VarY, "Z": contast.VarZ,
	"DOF": contast.VarDOF, "DOH": contast.VarDOH,
}

var funcNames = map[string]contast.FuncKind{
	"DIR": contast.FuncDir, "DIRFROM": contast.FuncDirFrom,
	"DIST": contast.FuncDist, "DISTFROM": contast.FuncDistFrom,
	"EITHER": contast.FuncEither, "OPP": contast.FuncOpp, "STEP": contast.FuncStep,
}

// parser parses one continuity text. It is stateless across calls —
// a fresh parser is built for every Parse, unlike the teacher
// language's global yyinputbuffer/ParsedContinuity.
type parser struct {
	toks []token
	pos  int
}

// Parse tokenises and parses src into an ordered sequence of
// procedures. Fails with a *SyntaxError on any unrecognisable
// construct (§4.1).
func Parse(src string) ([]contast.Procedure, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}

	var procs []contast.Procedure
	for p.peek().kind != tokEOF {
		proc, err := p.parseProcedure()
		if err != nil {
			return nil, err
		}
		procs = append(procs, *proc)
	}
	return procs, nil
}

func (p *parser) peek() token       { return p.toks[p.pos] }
func (p *parser) peekAt(k int) token {
	if p.pos+k >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+k]
}
func (p *parser) next() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k tokenKind) (token, error) {
	t := p.peek()
	if t.kind != k {
		return t, &SyntaxError{Span: t.span(), Msg: "unexpected token " + t.text}
	}
	return p.next(), nil
}

func syntaxErr(t token, msg string) error {
	return &SyntaxError{Span: t.span(), Msg: msg}
}

func isPointToken(t token) bool {
	if t.kind != tokIdent {
		return false
	}
	switch t.text {
	case "P", "SP", "NP":
		return true
	}
	return refPointRE.MatchString(t.text)
}

func (p *parser) looksLikeNewProcedure() bool {
	t := p.peek()
	if t.kind == tokEOF {
		return true
	}
	if t.kind != tokIdent {
		return false
	}
	if _, ok := procKeywords[t.text]; ok {
		return true
	}
	if _, ok := variableNames[t.text]; ok {
		if p.peekAt(1).kind == tokEquals {
			return true
		}
	}
	return false
}

func (p *parser) parseProcedure() (*contast.Procedure, error) {
	t := p.peek()
	if t.kind == tokIdent {
		if _, ok := variableNames[t.text]; ok && p.peekAt(1).kind == tokEquals {
			return p.parseSet()
		}
	}

	tok, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	kind, ok := procKeywords[tok.text]
	if !ok {
		return nil, syntaxErr(tok, "unknown procedure keyword "+tok.text)
	}

	switch kind {
	case contast.ProcBlam:
		return &contast.Procedure{Kind: contast.ProcBlam, Span: tok.span()}, nil
	case contast.ProcCM:
		return p.parseCM(tok)
	case contast.ProcDMCM:
		return p.parseLegCountermarch(tok, contast.ProcDMCM)
	case contast.ProcHSCM:
		return p.parseLegCountermarch(tok, contast.ProcHSCM)
	case contast.ProcDMHS, contast.ProcHSDM, contast.ProcEWNS, contast.ProcNSEW,
		contast.ProcFMTO, contast.ProcMagic:
		return p.parseSinglePoint(tok, kind)
	case contast.ProcEven:
		return p.parseEven(tok)
	case contast.ProcFountain:
		return p.parseFountain(tok)
	case contast.ProcFM:
		return p.parseTwoValues(tok, contast.ProcFM)
	case contast.ProcGrid:
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		return &contast.Procedure{Kind: contast.ProcGrid, N: v, Span: tok.span()}, nil
	case contast.ProcMarch:
		return p.parseMarch(tok)
	case contast.ProcMT:
		return p.parseTwoValues(tok, contast.ProcMT)
	case contast.ProcMTRM:
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		return &contast.Procedure{Kind: contast.ProcMTRM, Dir: v, Span: tok.span()}, nil
	case contast.ProcRotate:
		return p.parseRotate(tok)
	}
	return nil, syntaxErr(tok, "unhandled procedure keyword "+tok.text)
}

func (p *parser) parseSet() (*contast.Procedure, error) {
	varTok := p.next()
	v := variableNames[varTok.text]
	if _, err := p.expect(tokEquals); err != nil {
		return nil, err
	}
	expr, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return &contast.Procedure{Kind: contast.ProcSet, Var: v, Expr: expr, Span: varTok.span()}, nil
}

func (p *parser) parseSinglePoint(tok token, kind contast.ProcKind) (*contast.Procedure, error) {
	pt, err := p.parsePoint()
	if err != nil {
		return nil, err
	}
	return &contast.Procedure{Kind: kind, P: pt, Span: tok.span()}, nil
}

func (p *parser) parseTwoValues(tok token, kind contast.ProcKind) (*contast.Procedure, error) {
	n, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	d, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return &contast.Procedure{Kind: kind, N: n, Dir: d, Span: tok.span()}, nil
}

func (p *parser) parseEven(tok token) (*contast.Procedure, error) {
	n, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	pt, err := p.parsePoint()
	if err != nil {
		return nil, err
	}
	return &contast.Procedure{Kind: contast.ProcEven, N: n, P: pt, Span: tok.span()}, nil
}

// parseLegCountermarch parses DMCM/HSCM: p1 p2 n.
func (p *parser) parseLegCountermarch(tok token, kind contast.ProcKind) (*contast.Procedure, error) {
	p1, err := p.parsePoint()
	if err != nil {
		return nil, err
	}
	p2, err := p.parsePoint()
	if err != nil {
		return nil, err
	}
	n, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return &contast.Procedure{Kind: kind, P1: p1, P2: p2, N: n, Span: tok.span()}, nil
}

// parseCM parses CM: p1 p2 steps d1 d2 n.
func (p *parser) parseCM(tok token) (*contast.Procedure, error) {
	p1, err := p.parsePoint()
	if err != nil {
		return nil, err
	}
	p2, err := p.parsePoint()
	if err != nil {
		return nil, err
	}
	steps, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	d1, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	d2, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	n, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return &contast.Procedure{Kind: contast.ProcCM, P1: p1, P2: p2, Size: steps, Dir1: d1, Dir2: d2, N: n, Span: tok.span()}, nil
}

// parseFountain parses FOUNTAIN d1 d2 [s1 s2] p.
func (p *parser) parseFountain(tok token) (*contast.Procedure, error) {
	d1, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	d2, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	proc := &contast.Procedure{Kind: contast.ProcFountain, Dir1: d1, Dir2: d2, Span: tok.span()}

	if isPointToken(p.peek()) {
		pt, err := p.parsePoint()
		if err != nil {
			return nil, err
		}
		proc.P = pt
		return proc, nil
	}

	s1, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	s2, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	pt, err := p.parsePoint()
	if err != nil {
		return nil, err
	}
	proc.Steps1, proc.Steps2, proc.P = s1, s2, pt
	return proc, nil
}

// parseMarch parses MARCH stepsize steps dir [face].
func (p *parser) parseMarch(tok token) (*contast.Procedure, error) {
	size, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	n, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	dir, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	proc := &contast.Procedure{Kind: contast.ProcMarch, Size: size, N: n, Dir: dir, Span: tok.span()}
	if !p.looksLikeNewProcedure() {
		face, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		proc.Face = face
	}
	return proc, nil
}

func (p *parser) parseRotate(tok token) (*contast.Procedure, error) {
	angle, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	n, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	pt, err := p.parsePoint()
	if err != nil {
		return nil, err
	}
	return &contast.Procedure{Kind: contast.ProcRotate, Angle: angle, N: n, P: pt, Span: tok.span()}, nil
}

func (p *parser) parsePoint() (*contast.Point, error) {
	tok, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	switch tok.text {
	case "P":
		return &contast.Point{Kind: contast.CurrentPoint, Span: tok.span()}, nil
	case "SP":
		return &contast.Point{Kind: contast.StartPoint, Span: tok.span()}, nil
	case "NP":
		return &contast.Point{Kind: contast.NextPoint, Span: tok.span()}, nil
	}
	if m := refPointRE.FindStringSubmatch(tok.text); m != nil {
		num, _ := strconv.Atoi(m[1])
		return &contast.Point{Kind: contast.RefPoint, Num: num, Span: tok.span()}, nil
	}
	return nil, syntaxErr(tok, "expected a point, got "+tok.text)
}

// --- expression grammar: + - < * / < unary - < primary ---

func (p *parser) parseValue() (*contast.Value, error) {
	return p.parseAdditive()
}

func (p *parser) parseAdditive() (*contast.Value, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		var kind contast.ValueKind
		switch t.kind {
		case tokPlus:
			kind = contast.ValAdd
		case tokMinus:
			kind = contast.ValSub
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &contast.Value{Kind: kind, Left: left, Right: right, Span: t.span()}
	}
}

func (p *parser) parseMultiplicative() (*contast.Value, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		var kind contast.ValueKind
		switch t.kind {
		case tokStar:
			kind = contast.ValMult
		case tokSlash:
			kind = contast.ValDiv
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &contast.Value{Kind: kind, Left: left, Right: right, Span: t.span()}
	}
}

func (p *parser) parseUnary() (*contast.Value, error) {
	if p.peek().kind == tokMinus {
		t := p.next()
		v, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &contast.Value{Kind: contast.ValNeg, Left: v, Span: t.span()}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (*contast.Value, error) {
	t := p.peek()
	switch t.kind {
	case tokNumber:
		p.next()
		return &contast.Value{Kind: contast.ValLiteral, Num: t.num, Span: t.span()}, nil
	case tokLParen:
		p.next()
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return v, nil
	case tokIdent:
		p.next()
		name := t.text
		if name == "REM" {
			return &contast.Value{Kind: contast.ValREM, Span: t.span()}, nil
		}
		if deg, ok := geom.DirectionConstants[name]; ok {
			return &contast.Value{Kind: contast.ValNamedConst, Num: deg, Name: name, Span: t.span()}, nil
		}
		if ratio, ok := geom.StepConstants[name]; ok {
			return &contast.Value{Kind: contast.ValNamedConst, Num: ratio, Name: name, Span: t.span()}, nil
		}
		if v, ok := variableNames[name]; ok {
			return &contast.Value{Kind: contast.ValVariable, Var: v, Span: t.span()}, nil
		}
		if fk, ok := funcNames[name]; ok {
			return p.parseFunctionCall(fk, t)
		}
		return nil, syntaxErr(t, "unknown identifier "+name)
	default:
		return nil, syntaxErr(t, "expected a value")
	}
}

func (p *parser) parseFunctionCall(fk contast.FuncKind, tok token) (*contast.Value, error) {
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	fn := &contast.Function{Kind: fk, Span: tok.span()}

	switch fk {
	case contast.FuncDir, contast.FuncDist:
		pt, err := p.parsePoint()
		if err != nil {
			return nil, err
		}
		fn.P1 = pt
	case contast.FuncDirFrom, contast.FuncDistFrom:
		p1, err := p.parsePoint()
		if err != nil {
			return nil, err
		}
		p2, err := p.parsePoint()
		if err != nil {
			return nil, err
		}
		fn.P1, fn.P2 = p1, p2
	case contast.FuncEither:
		v1, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		v2, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		pt, err := p.parsePoint()
		if err != nil {
			return nil, err
		}
		fn.V1, fn.V2, fn.P1 = v1, v2, pt
	case contast.FuncOpp:
		v1, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		fn.V1 = v1
	case contast.FuncStep:
		v1, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		v2, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		pt, err := p.parsePoint()
		if err != nil {
			return nil, err
		}
		fn.V1, fn.V2, fn.P1 = v1, v2, pt
	}

	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return &contast.Value{Kind: contast.ValFunction, Func: fn, Span: tok.span()}, nil
}
