package clarice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func checkSource(t *testing.T, src string) (*Checker, error) {
	stmts, report := parseStatements(src)
	assert.False(t, report.HadError(), src)
	checker := NewChecker()
	return checker, checker.Check(stmts)
}

func TestCheckAcceptsBoundNames(t *testing.T) {
	sources := []string{
		"",
		"print 1",
		`print "hello"`,
		"print true",
		"with x as 1 print x",
		"set x to 1 then print x",
		"as x 1 then print x",
		"to x 1 then print x",
		"do print 1",
		"where true print 1 otherwise print 2",
		"set b to false then where b print 1",
		"loop do print 1",
		`iter c in "abc" do print c`,
		"iter i in 3 print i",
		"set xs to 1 then iter x in xs do print x",
	}

	assert := assert.New(t)
	for _, src := range sources {
		_, err := checkSource(t, src)
		assert.NoError(err, src)
	}
}

func TestCheckRejects(t *testing.T) {
	testCases := []struct {
		src string
		msg string
	}{
		{"print x", "Check error: Undefined variable 'x'."},
		{"with x as y", "Check error: Undefined variable 'y'."},
		{"set x to 1 then print y", "Check error: Undefined variable 'y'."},
		{"where cond print 1", "Check error: Undefined variable 'cond'."},
		{"where true print x", "Check error: Undefined variable 'x'."},
		{"where false print 1 otherwise print x", "Check error: Undefined variable 'x'."},
		{"loop print x", "Check error: Undefined variable 'x'."},
		{"iter x in xs print x", "Check error: Undefined variable 'xs'."},
		{"print [1, 2]", "Check error: Invalid expression '[1, 2]'."},
		{"print []", "Check error: Invalid expression '[]'."},
		{"print f(1)", "Check error: Invalid expression 'f(1)'."},
		{"with x as f()", "Check error: Invalid expression 'f()'."},
		{`set xs to [1, "two"]`, `Check error: Invalid expression '[1, "two"]'.`},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		_, err := checkSource(t, tc.src)
		assert.EqualError(err, tc.msg, tc.src)
	}
}

func TestCheckStopsAtFirstError(t *testing.T) {
	// both statements are bad; only the first one is reported
	_, err := checkSource(t, "print x then print [1]")
	assert.EqualError(t, err, "Check error: Undefined variable 'x'.")
}

func TestCheckRecordsBindings(t *testing.T) {
	testCases := []struct {
		src  string
		name string
		typ  Type
	}{
		{"with x as 1", "x", TypeInteger},
		{`set s to "hi"`, "s", TypeString},
		{"set b to true", "b", TypeBoolean},
		// last write wins, there is no scope nesting in the table
		{`set x to 1 then set x to "two"`, "x", TypeString},
		{`with x as "one" set x to 1`, "x", TypeInteger},
		// the binding's type follows through a later binding that reads it
		{"set x to 1 then set y to x", "y", TypeInteger},
		// iterating a string binds one-character strings
		{`iter c in "abc" print c`, "c", TypeString},
		{"iter i in 3 print i", "i", TypeInteger},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		checker, err := checkSource(t, tc.src)
		assert.NoError(err, tc.src)

		symbol, ok := checker.table.Lookup(tc.name)
		assert.True(ok, tc.src)
		assert.Equal(tc.name, symbol.Name, tc.src)
		assert.Equal(tc.typ, symbol.Type, tc.src)
	}
}

func TestSymbolTable(t *testing.T) {
	assert := assert.New(t)
	table := NewSymbolTable()

	_, ok := table.Lookup("x")
	assert.False(ok)

	table.Insert("x", TypeInteger)
	symbol, ok := table.Lookup("x")
	assert.True(ok)
	assert.Equal(&Symbol{"x", TypeInteger}, symbol)

	table.Insert("x", TypeString)
	symbol, _ = table.Lookup("x")
	assert.Equal(TypeString, symbol.Type)
}
