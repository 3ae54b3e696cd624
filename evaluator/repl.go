package evaluator

import (
	"fmt"
	"io"

	"github.com/LostInTheLogs/mal/core"
	"github.com/LostInTheLogs/mal/printer"
	"github.com/LostInTheLogs/mal/reader"
	"github.com/LostInTheLogs/mal/types"
)

// Functions defined in mal itself, evaluated once into every root env.
var nsMal = []string{
	"(def! not (fn* (a) (if a false true)))",
	"(def! load-file (fn* (f) (eval (read-string (str \"(do \" (slurp f) \"\nnil)\")))))",
}

func Read(raw string) (types.Data, error) {
	return reader.ReadStr(raw)
}

func Print(form types.Data) string {
	return printer.PrintStr(form, true)
}

// Rep reads one form from input, evaluates it in env and prints the result
// readably. Input without a form gives types.ErrNoForm.
func Rep(input string, env *types.Env) (string, error) {
	form, err := Read(input)
	if err != nil {
		return "", err
	}

	evald, err := Eval(form, env)
	if err != nil {
		return "", err
	}

	return Print(evald), nil
}

// NewRootEnv builds the top-level environment: the core namespace, eval
// bound to this env, the bootstrap functions and *ARGV* holding argv.
func NewRootEnv(opts core.Options, out io.Writer, argv []string) (*types.Env, error) {
	replEnv, _ := types.NewEnv(nil, nil, nil)

	for key, val := range core.Namespace(opts, out) {
		replEnv.Set(key, val)
	}

	replEnv.Set("eval", &types.DNative{
		Name:  "eval",
		Arity: 1,
		Fn: func(args []types.Data) (types.Data, error) {
			return Eval(args[0], replEnv)
		},
	})

	// Execute functions defined in mal itself.
	for _, val := range nsMal {
		if _, err := Rep(val, replEnv); err != nil {
			return nil, fmt.Errorf("bootstrap %s: %w", val, err)
		}
	}

	args := make([]types.Data, 0, len(argv))
	for _, a := range argv {
		args = append(args, types.NewString(a))
	}
	replEnv.Set("*ARGV*", types.NewList(args...))

	return replEnv, nil
}
