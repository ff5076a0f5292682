package clarice

import "strconv"

// Value is the runtime representation of an evaluated expression. The set of
// kinds is closed; stringify switches over all of them.
type Value interface {
	value()
}

type IntegerValue struct {
	Value int64
}

type DoubleValue struct {
	Value float64
}

type StringValue struct {
	Value string
}

type BooleanValue struct {
	Value bool
}

// ListValue holds its member expressions unevaluated. An element is only
// reduced to a value when something iterates the list.
type ListValue struct {
	Elements []Expr
}

// ClosureValue is inert data: the language parses calls but never dispatches
// them, so a call evaluates to its own name and unevaluated arguments.
type ClosureValue struct {
	Name string
	Args []Expr
}

type VoidValue struct{}

func (IntegerValue) value() {}
func (DoubleValue) value()  {}
func (StringValue) value()  {}
func (BooleanValue) value() {}
func (ListValue) value()    {}
func (ClosureValue) value() {}
func (VoidValue) value()    {}

// stringify renders a value the way `print` writes it: literals in their
// natural text form, lists and closures as their unevaluated structure, void
// as an empty string.
func stringify(v Value) string {
	switch v := v.(type) {
	case IntegerValue:
		return strconv.FormatInt(v.Value, 10)
	case DoubleValue:
		return strconv.FormatFloat(v.Value, 'f', -1, 64)
	case StringValue:
		return v.Value
	case BooleanValue:
		return strconv.FormatBool(v.Value)
	case ListValue:
		printer := new(astPrinter)
		return "[" + printer.printAll(v.Elements) + "]"
	case ClosureValue:
		printer := new(astPrinter)
		return v.Name + "(" + printer.printAll(v.Args) + ")"
	case VoidValue:
		return ""
	}
	panic("Unreachable")
}
