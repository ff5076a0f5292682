package clarice

const (
	TypeInteger Type = iota
	TypeDouble
	TypeString
	TypeBoolean
	TypeClosure
	TypeList
	TypeVoid
)

// Type enumerates the kinds the checker can assign to an expression.
type Type uint

func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "Integer"
	case TypeDouble:
		return "Double"
	case TypeString:
		return "String"
	case TypeBoolean:
		return "Boolean"
	case TypeClosure:
		return "Closure"
	case TypeList:
		return "List"
	case TypeVoid:
		return "Void"
	}
	return ""
}

// Symbol pairs a name with the type it was last bound to.
type Symbol struct {
	Name string
	Type Type
}

// SymbolTable is the checker's flat name-to-type mapping. There is no scope
// nesting: a later binding for a name overwrites the earlier one
// unconditionally. The table lives for the duration of one checking pass and
// its findings are not retained for execution.
type SymbolTable struct {
	symbols map[string]*Symbol
}

// NewSymbolTable creates an empty symbol table
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{make(map[string]*Symbol)}
}

// Insert records the type a name is bound to, replacing any earlier record.
func (table *SymbolTable) Insert(name string, typ Type) {
	table.symbols[name] = &Symbol{name, typ}
}

// Lookup returns the symbol recorded for a name, if there is one.
func (table *SymbolTable) Lookup(name string) (*Symbol, bool) {
	symbol, ok := table.symbols[name]
	return symbol, ok
}
