package evaluator

import (
	"fmt"
	"log"
	"os"

	"github.com/LostInTheLogs/mal/printer"
	"github.com/LostInTheLogs/mal/types"
)

// Tracer receives a line per loop iteration while DEBUG-EVAL is truthy.
var Tracer = log.New(os.Stdout, "EVAL: ", 0)

const debugEval = "DEBUG-EVAL"

type specialForm func(list []types.Data, env *types.Env) (types.Data, error)

// Special forms that never continue the loop. let*, do and if live in Eval
// itself since they rewrite ast and env for TCO.
var specialForms = map[string]specialForm{}

func init() {
	specialForms["def!"] = sfDef
	specialForms["fn*"] = sfFn
	specialForms["quote"] = sfQuote
}

func Eval(ast types.Data, env *types.Env) (types.Data, error) {
	for {
		if env.Contains(debugEval) {
			if flag, _ := env.Get(debugEval); types.Truthy(flag) {
				Tracer.Print(printer.PrintStr(ast, true))
			}
		}

		switch form := ast.(type) {
		case *types.DSymbol:
			return env.Get(form.Name)

		case *types.DVector:
			evald, err := evalList(form.Members, env)
			if err != nil {
				return nil, err
			}
			return types.NewVector(evald...), nil

		case *types.DHashMap:
			evald, err := evalList(form.Members, env)
			if err != nil {
				return nil, err
			}
			return types.NewHashMap(evald...), nil

		case *types.DList:
			list := form.Members
			if len(list) == 0 {
				return ast, nil
			}

			// Some special forms are implemented in place, since they support TCO.
			if head, ok := list[0].(*types.DSymbol); ok {
				switch head.Name {
				case "let*":
					body, letEnv, err := letBindings(list, env)
					if err != nil {
						return nil, err
					}
					ast, env = body, letEnv
					continue

				case "do":
					if len(list) == 1 {
						return types.Nil, nil
					}
					// Strip off the "do" and last value.
					if _, err := evalList(list[1:len(list)-1], env); err != nil {
						return nil, err
					}
					ast = list[len(list)-1]
					continue

				case "if":
					if len(list) != 3 && len(list) != 4 {
						return nil, malformed("if", "expected (if cond then [else]), got %d args", len(list)-1)
					}
					cond, err := Eval(list[1], env)
					if err != nil {
						return nil, err
					}
					if types.Truthy(cond) {
						ast = list[2]
						continue
					}
					if len(list) == 3 {
						return types.Nil, nil
					}
					ast = list[3]
					continue
				}

				// If we're still here, try the special forms map.
				if sf, ok := specialForms[head.Name]; ok {
					return sf(list, env)
				}
			}

			elist, err := evalList(list, env)
			if err != nil {
				return nil, err
			}

			switch f := elist[0].(type) {
			case *types.DNative:
				return f.Call(elist[1:])

			case *types.DClosure:
				newEnv, err := types.NewEnv(f.Env, f.Binds, elist[1:])
				if err != nil {
					return nil, err
				}
				ast, env = f.Body, newEnv
				continue // TCO

			default:
				return nil, fmt.Errorf("%w: %s", types.ErrNotCallable, printer.PrintStr(elist[0], true))
			}

		default:
			return ast, nil
		}
	}
}

func evalList(list []types.Data, env *types.Env) ([]types.Data, error) {
	ret := make([]types.Data, 0, len(list))
	for _, expr := range list {
		evald, err := Eval(expr, env)
		if err != nil {
			return nil, err
		}

		ret = append(ret, evald)
	}
	return ret, nil
}

func malformed(form, msg string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", types.ErrMalformed, form, fmt.Sprintf(msg, args...))
}

// letBindings evaluates the bindings of a let* form into a new child env, in
// order, and returns the body to continue with.
func letBindings(list []types.Data, env *types.Env) (types.Data, *types.Env, error) {
	if len(list) != 3 {
		return nil, nil, malformed("let*", "expected (let* bindings body), got %d args", len(list)-1)
	}

	// Second parameter should be a list of odd/even pairs.
	bindings, ok := types.Seq(list[1])
	if !ok {
		return nil, nil, malformed("let*", "bindings must be a list or vector")
	}
	if len(bindings)%2 != 0 {
		return nil, nil, malformed("let*", "bindings must come in pairs; found %d", len(bindings))
	}

	letEnv, _ := types.NewEnv(env, nil, nil)
	for i := 0; i < len(bindings); i += 2 {
		sym, ok := bindings[i].(*types.DSymbol)
		if !ok {
			return nil, nil, malformed("let*", "left-hand binding must be a symbol")
		}

		evald, err := Eval(bindings[i+1], letEnv)
		if err != nil {
			return nil, nil, err
		}

		letEnv.Set(sym.Name, evald)
	}

	return list[2], letEnv, nil
}

// Implementations of the special forms.
func sfDef(list []types.Data, env *types.Env) (types.Data, error) {
	if len(list) != 3 {
		return nil, malformed("def!", "expected (def! name value), got %d args", len(list)-1)
	}
	sym, ok := list[1].(*types.DSymbol)
	if !ok {
		return nil, malformed("def!", "first parameter must be a symbol")
	}

	evald, err := Eval(list[2], env)
	if err != nil {
		return nil, err
	}

	env.Set(sym.Name, evald)
	return evald, nil
}

func sfFn(list []types.Data, env *types.Env) (types.Data, error) {
	if len(list) != 3 {
		return nil, malformed("fn*", "expected (fn* params body), got %d args", len(list)-1)
	}

	// Builds a new function closure.
	params, ok := types.Seq(list[1])
	if !ok {
		return nil, malformed("fn*", "function parameters must be a list")
	}

	c := &types.DClosure{Binds: make([]string, 0, len(params)), Body: list[2], Env: env}
	for i, p := range params {
		sym, ok := p.(*types.DSymbol)
		if !ok {
			return nil, malformed("fn*", "function parameter must be a symbol")
		}

		if sym.Name == "&" && i != len(params)-2 {
			return nil, malformed("fn*", "exactly 1 symbol must follow & in arg list; found %d", len(params)-i-1)
		}

		c.Binds = append(c.Binds, sym.Name)
	}
	return c, nil
}

func sfQuote(list []types.Data, env *types.Env) (types.Data, error) {
	if len(list) != 2 {
		return nil, malformed("quote", "expected exactly 1 arg, got %d", len(list)-1)
	}
	return list[1], nil
}
