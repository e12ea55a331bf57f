// Program implements the program model (§3 Program line, Flattened
// instruction vector, Data pool; §8 invariant 1).
//
// Grounded on original_source/src/eval/context.rs's GwProgram: an
// ordered Vec<ProgramLine> with insert-or-replace-by-label, and a run()
// that flattens lines into a single instruction vector plus a label ->
// real-line jump table before executing.
package core

import (
	"sort"
	"strings"

	"github.com/rgwbasic/gwbasic/internal/ast"
)

// ProgramLine is one numbered line: a label, a primary instruction, and
// any colon-chained trailing instructions (§3).
type ProgramLine struct {
	Label    int
	Primary  ast.Stmt
	Trailing []ast.Stmt
}

// String reproduces the line's BASIC source text, used by LIST.
func (l ProgramLine) String() string {
	var sb strings.Builder
	sb.WriteString(itoa(l.Label))
	sb.WriteString(" ")
	sb.WriteString(l.Primary.String())
	for _, t := range l.Trailing {
		sb.WriteString(" : ")
		sb.WriteString(t.String())
	}
	return sb.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	if neg {
		return "-" + string(b)
	}
	return string(b)
}

// Program is an ordered collection of numbered lines, plus the
// flattened instruction vector and data pool produced by Flatten.
type Program struct {
	Lines []ProgramLine

	RealLines []ast.Stmt
	JumpTable map[int]int // label -> first real line of that label
	DataPool  []string
}

// NewProgram creates an empty program.
func NewProgram() *Program {
	return &Program{}
}

// AddLine inserts line in ascending label order, replacing any
// existing line with the same label (§3 invariant 1, §8 property 1).
func (p *Program) AddLine(line ProgramLine) {
	idx := sort.Search(len(p.Lines), func(i int) bool {
		return p.Lines[i].Label >= line.Label
	})
	if idx < len(p.Lines) && p.Lines[idx].Label == line.Label {
		p.Lines[idx] = line
		return
	}
	p.Lines = append(p.Lines, ProgramLine{})
	copy(p.Lines[idx+1:], p.Lines[idx:])
	p.Lines[idx] = line
}

// List renders every line in ascending label order, one per returned
// string (§4.3 LIST).
func (p *Program) List() []string {
	out := make([]string, len(p.Lines))
	for i, l := range p.Lines {
		out[i] = l.String()
	}
	return out
}

// Flatten rebuilds RealLines, JumpTable and DataPool from Lines. It must
// be called before RUN, and whenever execution starts fresh (§3
// Flattened instruction vector: "rebuilt whenever execution starts").
func (p *Program) Flatten() {
	p.RealLines = nil
	p.JumpTable = make(map[int]int)
	p.DataPool = nil

	for _, line := range p.Lines {
		p.JumpTable[line.Label] = len(p.RealLines)
		p.RealLines = append(p.RealLines, line.Primary)
		collectData(line.Primary, &p.DataPool)
		for _, t := range line.Trailing {
			p.RealLines = append(p.RealLines, t)
			collectData(t, &p.DataPool)
		}
	}
}

func collectData(s ast.Stmt, pool *[]string) {
	if d, ok := s.(ast.DataStmt); ok {
		*pool = append(*pool, d.Items...)
	}
}

// ResolveLabel looks up the real-line index for a label.
func (p *Program) ResolveLabel(label int) (int, bool) {
	idx, ok := p.JumpTable[label]
	return idx, ok
}
