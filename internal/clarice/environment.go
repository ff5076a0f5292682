package clarice

import "fmt"

// Environment maps names to runtime values. Environments chain: a lookup that
// misses the innermost frame continues in the enclosing one. The evaluator
// pushes a frame for the single statement governed by a `with` binding and
// pops it when that statement ends; everything else lives in the root frame.
type Environment struct {
	enclosing *Environment
	values    map[string]Value
}

func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing, make(map[string]Value)}
}

// Define binds a name in this frame, replacing any previous binding here.
func (env *Environment) Define(name string, value Value) {
	env.values[name] = value
}

// DefineGlobal binds a name for the remainder of the run. The value lands in
// the root frame, and any with-frame that currently shadows the name is
// overwritten as well so the new value is visible immediately.
func (env *Environment) DefineGlobal(name string, value Value) {
	for e := env; e != nil; e = e.enclosing {
		if _, ok := e.values[name]; ok {
			e.values[name] = value
		}
		if e.enclosing == nil {
			e.values[name] = value
		}
	}
}

// Get resolves a name against this frame and its enclosing chain.
func (env *Environment) Get(name string) (Value, error) {
	if value, ok := env.values[name]; ok {
		return value, nil
	}
	if env.enclosing != nil {
		return env.enclosing.Get(name)
	}
	msg := fmt.Sprintf("No variable '%s' - use 'with' or 'set' to define it.", name)
	return VoidValue{}, NewRuntimeError(msg)
}
