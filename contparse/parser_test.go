package contparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/bdwalton/ccanim/contast"
	"github.com/bdwalton/ccanim/contparse"
)

// GrammarSuite is a corpus of acceptance tests over the continuity
// DSL grammar, one case per procedure kind plus the expression/point
// sublanguages they embed.
type GrammarSuite struct {
	suite.Suite
}

func (s *GrammarSuite) parse(src string) []contast.Procedure {
	procs, err := contparse.Parse(src)
	require.NoError(s.T(), err, "source: %q", src)
	return procs
}

func (s *GrammarSuite) TestSet() {
	procs := s.parse("A = 3 + 4 * 2\n")
	require.Len(s.T(), procs, 1)
	require.Equal(s.T(), contast.ProcSet, procs[0].Kind)
	require.Equal(s.T(), contast.VarA, procs[0].Var)
}

func (s *GrammarSuite) TestSinglePointProcedures() {
	for _, kw := range []string{"DMHS", "HSDM", "EWNS", "NSEW", "FMTO", "MAGIC"} {
		procs := s.parse(kw + " NP\n")
		require.Len(s.T(), procs, 1, kw)
		require.NotNil(s.T(), procs[0].P, kw)
		require.Equal(s.T(), contast.NextPoint, procs[0].P.Kind, kw)
	}
}

func (s *GrammarSuite) TestFMAndMT() {
	procs := s.parse("MT 4 90\nFM 2 180\n")
	require.Len(s.T(), procs, 2)
	require.Equal(s.T(), contast.ProcMT, procs[0].Kind)
	require.Equal(s.T(), contast.ProcFM, procs[1].Kind)
}

func (s *GrammarSuite) TestEven() {
	procs := s.parse("EVEN 8 R2\n")
	require.Len(s.T(), procs, 1)
	require.Equal(s.T(), contast.ProcEven, procs[0].Kind)
	require.Equal(s.T(), contast.RefPoint, procs[0].P.Kind)
	require.Equal(s.T(), 2, procs[0].P.Num)
}

func (s *GrammarSuite) TestCountermarchLegForm() {
	procs := s.parse("DMCM SP NP 8\n")
	require.Len(s.T(), procs, 1)
	require.Equal(s.T(), contast.ProcDMCM, procs[0].Kind)
	require.Nil(s.T(), procs[0].Dir1)
}

func (s *GrammarSuite) TestFullCM() {
	procs := s.parse("CM SP NP 4 90 180 16\n")
	require.Len(s.T(), procs, 1)
	require.Equal(s.T(), contast.ProcCM, procs[0].Kind)
	require.NotNil(s.T(), procs[0].Dir1)
	require.NotNil(s.T(), procs[0].Dir2)
}

func (s *GrammarSuite) TestFountainShortForm() {
	procs := s.parse("FOUNTAIN 0 90 NP\n")
	require.Len(s.T(), procs, 1)
	require.Nil(s.T(), procs[0].Steps1)
	require.Nil(s.T(), procs[0].Steps2)
}

func (s *GrammarSuite) TestFountainLongForm() {
	procs := s.parse("FOUNTAIN 0 90 2 1 NP\n")
	require.Len(s.T(), procs, 1)
	require.NotNil(s.T(), procs[0].Steps1)
	require.NotNil(s.T(), procs[0].Steps2)
}

func (s *GrammarSuite) TestMarchWithAndWithoutFace() {
	procs := s.parse("MARCH 1 4 90\nMARCH 1 4 90 180\n")
	require.Len(s.T(), procs, 2)
	require.Nil(s.T(), procs[0].Face)
	require.NotNil(s.T(), procs[1].Face)
}

func (s *GrammarSuite) TestRotate() {
	procs := s.parse("ROTATE 90 4 SP\n")
	require.Len(s.T(), procs, 1)
	require.Equal(s.T(), contast.ProcRotate, procs[0].Kind)
}

func (s *GrammarSuite) TestFunctionCalls() {
	procs := s.parse("A = DIR(NP)\nB = DIRFROM(SP NP)\nC = DIST(NP)\nD = DISTFROM(SP NP)\nX = EITHER(0 180 NP)\nY = OPP(A)\nZ = STEP(2 2 SP)\n")
	require.Len(s.T(), procs, 7)
	for _, p := range procs {
		require.Equal(s.T(), contast.ProcSet, p.Kind)
		require.Equal(s.T(), contast.ValFunction, p.Expr.Kind)
	}
}

func (s *GrammarSuite) TestRefPointAndRegularPoint() {
	procs := s.parse("FMTO R12\n")
	require.Equal(s.T(), contast.RefPoint, procs[0].P.Kind)
	require.Equal(s.T(), 12, procs[0].P.Num)
}

func (s *GrammarSuite) TestWhitespaceAndCaseInsensitivity() {
	procs := s.parse("   mt   4   90  \n")
	require.Len(s.T(), procs, 1)
	require.Equal(s.T(), contast.ProcMT, procs[0].Kind)
}

func (s *GrammarSuite) TestMultipleProceduresOneLine() {
	procs := s.parse("MT 4 90 FM 2 180\n")
	require.Len(s.T(), procs, 2)
}

func (s *GrammarSuite) TestSyntaxErrorReportsSpan() {
	_, err := contparse.Parse("MT 4\n")
	require.Error(s.T(), err)
	var se *contparse.SyntaxError
	require.ErrorAs(s.T(), err, &se)
	// The missing direction is reported at the end of input.
	require.Equal(s.T(), 2, se.Span.Line)
	require.Equal(s.T(), 1, se.Span.Col)
}

func TestGrammarSuite(t *testing.T) {
	suite.Run(t, new(GrammarSuite))
}
