// Context implements the evaluation context (§3 Variable/Array/Pair
// table/Subroutine stack/Data pool, §4.1 type-fixed-at-creation rule).
//
// Grounded on original_source/rgwbasic/src/eval/context.rs's
// EvaluationContext (variables, array_variables, pair_instruction_table,
// console, data_position, subroutine_stack, current_real_line), adapted
// to reference the owning Program directly instead of duplicating its
// jump table (Go has no borrow-checker reason to copy it).
package core

import (
	"github.com/rgwbasic/gwbasic/internal/arrays"
	"github.com/rgwbasic/gwbasic/internal/ident"
	"github.com/rgwbasic/gwbasic/internal/values"
)

// Context holds all mutable evaluation state for one running program.
type Context struct {
	Program *Program

	Variables map[string]values.Value
	Arrays    *arrays.Store

	// DefaultTypes is the 26-entry letter -> default-variable-type
	// table populated by DEFtype statements (§4.3 DEFxxx, §9 design
	// note: "store as a 26-entry array on the context").
	DefaultTypes [26]defaultType

	PairTable      map[int]int // real-line -> matched partner real-line (§3 Pair table)
	SubStack       []int       // GOSUB return addresses (§3 Subroutine stack)
	DataCursor     int         // -1 before first READ (§3 Data cursor)
	CurrentLine    int

	Console Console

	// Parser is consulted by LOAD to turn file text back into program
	// lines (§6 Parser collaborator). It may be nil if the embedder
	// never intends to run LOAD.
	Parser Parser
}

type defaultType struct {
	set  bool
	kind values.Kind
}

// NewContext creates a fresh evaluation context bound to program,
// talking through console.
func NewContext(program *Program, console Console) *Context {
	return &Context{
		Program:    program,
		Variables:  make(map[string]values.Value),
		Arrays:     arrays.NewStore(),
		PairTable:  make(map[int]int),
		DataCursor: -1,
		Console:    console,
	}
}

// SetDefaultType records that identifiers starting with letter should be
// created (on first assignment) with kind, per a DEFtype range.
func (c *Context) SetDefaultType(letter byte, kind values.Kind) {
	if letter < 'A' || letter > 'Z' {
		return
	}
	c.DefaultTypes[letter-'A'] = defaultType{set: true, kind: kind}
}

// creationKind decides the type a brand-new scalar variable should take:
// a trailing `$` sigil always means string; otherwise a DEFtype range
// for the name's first letter applies; otherwise the default is single
// (§4.3 Assignment).
func (c *Context) creationKind(name string) values.Kind {
	if ident.HasSigil(name) {
		return values.String
	}
	letter := ident.BaseLetter(name)
	if letter != 0 {
		if dt := c.DefaultTypes[letter-'A']; dt.set {
			return dt.kind
		}
	}
	return values.Single
}

// VariableKind reports the type a scalar variable already has, or the
// type it would be given on first assignment if it does not yet exist
// (§4.1 "type of a variable is fixed at creation"). Used by READ/INPUT
// to decide how to parse incoming text before the variable necessarily
// exists.
func (c *Context) VariableKind(name string) values.Kind {
	if v, ok := c.Variables[ident.Normalize(name)]; ok {
		return v.Kind()
	}
	return c.creationKind(name)
}

// LookupVariable returns the current value of a scalar variable, or the
// default integer 0 if undefined (§4.2 Variable read: "does not create
// the variable").
func (c *Context) LookupVariable(name string) values.Value {
	if v, ok := c.Variables[ident.Normalize(name)]; ok {
		return v
	}
	return values.NewInteger(0)
}

// AssignVariable implements §4.3 Assignment: create the variable with
// its creation-time type on first use, then coerce subsequent values to
// the variable's fixed type (§4.1).
func (c *Context) AssignVariable(name string, newValue values.Value) error {
	key := ident.Normalize(name)
	existing, ok := c.Variables[key]
	if !ok {
		kind := c.creationKind(name)
		coerced, err := values.CoerceAssign(values.DefaultForKind(kind), newValue)
		if err != nil {
			return err
		}
		c.Variables[key] = coerced
		return nil
	}
	coerced, err := values.CoerceAssign(existing, newValue)
	if err != nil {
		return err
	}
	c.Variables[key] = coerced
	return nil
}

// PushReturn pushes a GOSUB return address.
func (c *Context) PushReturn(line int) {
	c.SubStack = append(c.SubStack, line)
}

// PopReturn pops a GOSUB return address, per RETURN (§4.3).
func (c *Context) PopReturn() (int, bool) {
	if len(c.SubStack) == 0 {
		return 0, false
	}
	n := len(c.SubStack) - 1
	line := c.SubStack[n]
	c.SubStack = c.SubStack[:n]
	return line, true
}

// NextData advances the data cursor and returns the next data-pool item
// (§3 invariant 4, §4.3 READ).
func (c *Context) NextData() (string, bool) {
	next := c.DataCursor + 1
	if next >= len(c.Program.DataPool) {
		return "", false
	}
	c.DataCursor = next
	return c.Program.DataPool[next], true
}

// Reset clears all mutable state, keeping the console, for RUN
// restarting a program from scratch.
func (c *Context) Reset() {
	c.Variables = make(map[string]values.Value)
	c.Arrays = arrays.NewStore()
	c.DefaultTypes = [26]defaultType{}
	c.PairTable = make(map[int]int)
	c.SubStack = nil
	c.DataCursor = -1
	c.CurrentLine = 0
}
