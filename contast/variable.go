package contast

// Variable identifies one of the nine per-marcher, per-sheet
// continuity scalars.
type Variable int

const (
	VarA Variable = iota
	VarB
	VarC
	VarD
	VarX
	VarY
	VarZ
	VarDOF
	VarDOH
	NumVariables
)

func (v Variable) String() string {
	switch v {
	case VarA:
		return "A"
	case VarB:
		return "B"
	case VarC:
		return "C"
	case VarD:
		return "D"
	case VarX:
		return "X"
	case VarY:
		return "Y"
	case VarZ:
		return "Z"
	case VarDOF:
		return "DOF"
	case VarDOH:
		return "DOH"
	default:
		return "?"
	}
}
