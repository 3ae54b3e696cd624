package types

import "fmt"

type Env struct {
	data  map[string]Data
	outer *Env
}

// NewEnv creates a scope under outer with binds[i] set to exprs[i]. If binds
// contains "&", the symbol after it receives a list of the remaining exprs.
func NewEnv(outer *Env, binds []string, exprs []Data) (*Env, error) {
	env := &Env{map[string]Data{}, outer}

	rest := -1
	for i, b := range binds {
		if b == "&" {
			rest = i
			break
		}
	}

	if rest < 0 {
		if len(binds) != len(exprs) {
			return nil, fmt.Errorf("%w: %d binds %d exprs", ErrBindLength, len(binds), len(exprs))
		}
		for i, expr := range exprs {
			env.Set(binds[i], expr)
		}
		return env, nil
	}

	if rest != len(binds)-2 || len(exprs) < rest {
		return nil, fmt.Errorf("%w: %d binds %d exprs", ErrBindLength, len(binds), len(exprs))
	}
	for i := 0; i < rest; i++ {
		env.Set(binds[i], exprs[i])
	}
	tail := make([]Data, len(exprs)-rest)
	copy(tail, exprs[rest:])
	env.Set(binds[rest+1], NewList(tail...))

	return env, nil
}

func (e *Env) Set(key string, value Data) {
	e.data[key] = value
}

func (e *Env) Find(key string) (Data, bool) {
	for env := e; env != nil; env = env.outer {
		if value, ok := env.data[key]; ok {
			return value, true
		}
	}
	return nil, false
}

func (e *Env) Get(key string) (Data, error) {
	value, ok := e.Find(key)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrSymbolNotFound, key)
	}
	return value, nil
}

// Contains only looks at this scope, not its parents.
func (e *Env) Contains(key string) bool {
	_, ok := e.data[key]
	return ok
}

func (e *Env) Outer() *Env {
	return e.outer
}
