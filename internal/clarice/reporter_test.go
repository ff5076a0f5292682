package clarice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleReporterInit(t *testing.T) {
	assert := assert.New(t)
	var out strings.Builder
	reporter := NewSimpleReporter(&out)

	assert.False(reporter.HadError())
	assert.False(reporter.HadRuntimeError())
	assert.Empty(out.String())
}

func TestSimpleReporterReport(t *testing.T) {
	assert := assert.New(t)
	var out strings.Builder
	reporter := NewSimpleReporter(&out)

	reporter.Report(NewCheckError("Undefined variable 'x'."))
	assert.True(reporter.HadError())
	assert.False(reporter.HadRuntimeError())
	assert.Equal("Check error: Undefined variable 'x'.\n", out.String())
}

func TestSimpleReporterReportRuntime(t *testing.T) {
	assert := assert.New(t)
	var out strings.Builder
	reporter := NewSimpleReporter(&out)

	reporter.Report(NewRuntimeError("A 'where' condition must be a boolean."))
	assert.False(reporter.HadError())
	assert.True(reporter.HadRuntimeError())
	assert.Equal("Runtime error: A 'where' condition must be a boolean.\n", out.String())
}

func TestSimpleReporterReportMultiple(t *testing.T) {
	assert := assert.New(t)
	var out strings.Builder
	reporter := NewSimpleReporter(&out)

	reporter.Report(NewParseError(tokEOF(), "Expected an expression."))
	reporter.Report(NewRuntimeError("Cannot iterate over true."))

	assert.True(reporter.HadError())
	assert.True(reporter.HadRuntimeError())
	assert.Equal(
		"Parse error at end: Expected an expression.\n"+
			"Runtime error: Cannot iterate over true.\n",
		out.String(),
	)
}

func TestSimpleReporterReset(t *testing.T) {
	assert := assert.New(t)
	var out strings.Builder
	reporter := NewSimpleReporter(&out)

	reporter.Report(NewCheckError("Undefined variable 'x'."))
	reporter.Report(NewRuntimeError("Cannot iterate over true."))
	reporter.Reset()

	assert.False(reporter.HadError())
	assert.False(reporter.HadRuntimeError())
}
