package geom

// Named direction constants (degrees, per §3). N is "up" on the
// field; the sequence matches AnimGetDirFromAngle's 8-way fold.
const (
	DirN  = 0.0
	DirNW = 45.0
	DirW  = 90.0
	DirSW = 135.0
	DirS  = 180.0
	DirSE = 225.0
	DirE  = 270.0
	DirNE = 315.0
)

// Named step-size ratio constants (§3): how many steps one "count"
// of the named unit covers.
const (
	StepHS = 1.0       // high step
	StepMM = 1.0       // mini military
	StepSH = 0.5       // show high
	StepJS = 0.5       // jerky step
	StepGV = 1.0       // gate/visual step
	StepM  = 4.0 / 3.0 // military
	StepDM = 1.4142136 // diagonal military, sqrt(2)
)

// DirectionConstants maps the DSL's direction keyword to its degree
// value, for the parser/compiler's named-constant resolution.
var DirectionConstants = map[string]float64{
	"N": DirN, "NW": DirNW, "W": DirW, "SW": DirSW,
	"S": DirS, "SE": DirSE, "E": DirE, "NE": DirNE,
}

// StepConstants maps the DSL's step-size keyword to its ratio.
var StepConstants = map[string]float64{
	"HS": StepHS, "MM": StepMM, "SH": StepSH, "JS": StepJS,
	"GV": StepGV, "M": StepM, "DM": StepDM,
}
