package core

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/LostInTheLogs/mal/printer"
	"github.com/LostInTheLogs/mal/reader"
	"github.com/LostInTheLogs/mal/types"
)

// Options toggles behaviours that differ between mal implementations.
type Options struct {
	// CrossTypeEquality makes a list and a vector with equal members =.
	CrossTypeEquality bool
	// ExtendedCount lets count and empty? measure hash-maps and strings.
	ExtendedCount bool
}

func DefaultOptions() Options {
	return Options{CrossTypeEquality: true}
}

type nsBuilder struct {
	opts Options
	out  io.Writer
	ns   map[string]*types.DNative
}

func (b *nsBuilder) add(name string, arity int, fn func(args []types.Data) (types.Data, error)) {
	b.ns[name] = &types.DNative{Name: name, Arity: arity, Fn: fn}
}

// Namespace returns the native functions for the root environment. prn and
// println write to out.
func Namespace(opts Options, out io.Writer) map[string]*types.DNative {
	b := &nsBuilder{opts: opts, out: out, ns: map[string]*types.DNative{}}

	b.add("+", 2, arith("+", func(x, y int64) int64 { return x + y }))
	b.add("-", 2, arith("-", func(x, y int64) int64 { return x - y }))
	b.add("*", 2, arith("*", func(x, y int64) int64 { return x * y }))
	b.add("/", 2, div)

	// Comparisons
	b.add("=", 2, b.equal)
	b.add("<", 2, compare("<", func(x, y int64) bool { return x < y }))
	b.add("<=", 2, compare("<=", func(x, y int64) bool { return x <= y }))
	b.add(">", 2, compare(">", func(x, y int64) bool { return x > y }))
	b.add(">=", 2, compare(">=", func(x, y int64) bool { return x >= y }))

	// Output
	b.add("pr-str", types.Variadic, prStr)
	b.add("str", types.Variadic, fStr)
	b.add("prn", types.Variadic, b.prn)
	b.add("println", types.Variadic, b.println)

	// Input
	b.add("read-string", 1, readString)
	b.add("slurp", 1, slurp)

	// Lists
	b.add("list", types.Variadic, mkList)
	b.add("list?", 1, listQ)
	b.add("vector", types.Variadic, mkVector)
	b.add("vector?", 1, vectorQ)
	b.add("empty?", 1, b.emptyQ)
	b.add("count", 1, b.count)
	b.add("cons", 2, cons)
	b.add("concat", types.Variadic, concat)
	b.add("nth", 2, nth)
	b.add("first", 1, first)
	b.add("rest", 1, rest)

	// Predicates
	b.add("nil?", 1, is(func(d types.Data) bool { return d == types.Nil }))
	b.add("true?", 1, is(func(d types.Data) bool { return d == types.True }))
	b.add("false?", 1, is(func(d types.Data) bool { return d == types.False }))
	b.add("symbol?", 1, is(func(d types.Data) bool { _, ok := d.(*types.DSymbol); return ok }))
	b.add("keyword?", 1, is(func(d types.Data) bool { _, ok := d.(*types.DKeyword); return ok }))
	b.add("string?", 1, is(func(d types.Data) bool { _, ok := d.(*types.DString); return ok }))
	b.add("number?", 1, is(func(d types.Data) bool { _, ok := d.(*types.DNumber); return ok }))
	b.add("fn?", 1, is(isFunction))

	return b.ns
}

func typeError(fun, want string, got types.Data) error {
	return fmt.Errorf("%w: %s expects %s, got %s", types.ErrType, fun, want, printer.PrintStr(got, true))
}

// Expects two Number arguments; fails otherwise.
func prepNumbers(args []types.Data, op string) (int64, int64, error) {
	x, ok := args[0].(*types.DNumber)
	if !ok {
		return 0, 0, typeError(op, "numbers", args[0])
	}
	y, ok := args[1].(*types.DNumber)
	if !ok {
		return 0, 0, typeError(op, "numbers", args[1])
	}
	return x.Num, y.Num, nil
}

func arith(op string, f func(x, y int64) int64) func([]types.Data) (types.Data, error) {
	return func(args []types.Data) (types.Data, error) {
		x, y, err := prepNumbers(args, op)
		if err != nil {
			return nil, err
		}
		return types.NewNumber(f(x, y)), nil
	}
}

func div(args []types.Data) (types.Data, error) {
	x, y, err := prepNumbers(args, "/")
	if err != nil {
		return nil, err
	}
	if y == 0 {
		return nil, types.ErrDivideByZero
	}
	return types.NewNumber(x / y), nil
}

func compare(op string, f func(x, y int64) bool) func([]types.Data) (types.Data, error) {
	return func(args []types.Data) (types.Data, error) {
		x, y, err := prepNumbers(args, op)
		if err != nil {
			return nil, err
		}
		return types.Bool(f(x, y)), nil
	}
}

func (b *nsBuilder) equal(args []types.Data) (types.Data, error) {
	return types.Bool(Equal(args[0], args[1], b.opts.CrossTypeEquality)), nil
}

// Output
func prStr(args []types.Data) (types.Data, error) {
	return types.NewString(printer.PrintList(args, true, " ")), nil
}

func fStr(args []types.Data) (types.Data, error) {
	return types.NewString(printer.PrintList(args, false, "")), nil
}

func (b *nsBuilder) prn(args []types.Data) (types.Data, error) {
	fmt.Fprintln(b.out, printer.PrintList(args, true, " "))
	return types.Nil, nil
}

func (b *nsBuilder) println(args []types.Data) (types.Data, error) {
	fmt.Fprintln(b.out, printer.PrintList(args, false, " "))
	return types.Nil, nil
}

// Input
func readString(args []types.Data) (types.Data, error) {
	s, ok := args[0].(*types.DString)
	if !ok {
		return nil, typeError("read-string", "a string", args[0])
	}
	form, err := reader.ReadStr(s.Str)
	if errors.Is(err, types.ErrNoForm) {
		return types.Nil, nil
	}
	return form, err
}

func slurp(args []types.Data) (types.Data, error) {
	s, ok := args[0].(*types.DString)
	if !ok {
		return nil, typeError("slurp", "a filename", args[0])
	}

	contents, err := os.ReadFile(s.Str)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrFileRead, err)
	}
	return types.NewString(string(contents)), nil
}

// Lists
func mkList(args []types.Data) (types.Data, error) {
	return types.NewList(append([]types.Data(nil), args...)...), nil
}

func mkVector(args []types.Data) (types.Data, error) {
	return types.NewVector(append([]types.Data(nil), args...)...), nil
}

func listQ(args []types.Data) (types.Data, error) {
	_, ok := args[0].(*types.DList)
	return types.Bool(ok), nil
}

func vectorQ(args []types.Data) (types.Data, error) {
	_, ok := args[0].(*types.DVector)
	return types.Bool(ok), nil
}

// size is the element count used by count and empty?. Values that are not
// collections measure 0.
func (b *nsBuilder) size(d types.Data) int {
	if members, ok := types.Seq(d); ok {
		return len(members)
	}
	if b.opts.ExtendedCount {
		switch v := d.(type) {
		case *types.DHashMap:
			return len(v.Members)
		case *types.DString:
			return len(v.Str)
		}
	}
	return 0
}

func (b *nsBuilder) emptyQ(args []types.Data) (types.Data, error) {
	return types.Bool(b.size(args[0]) == 0), nil
}

func (b *nsBuilder) count(args []types.Data) (types.Data, error) {
	return types.NewNumber(int64(b.size(args[0]))), nil
}

func cons(args []types.Data) (types.Data, error) {
	tail, ok := types.Seq(args[1])
	if !ok && args[1] != types.Nil {
		return nil, typeError("cons", "a list", args[1])
	}

	list := make([]types.Data, 0, len(tail)+1)
	list = append(list, args[0])
	list = append(list, tail...)
	return types.NewList(list...), nil
}

func concat(args []types.Data) (types.Data, error) {
	out := []types.Data{}
	for _, a := range args {
		members, ok := types.Seq(a)
		if !ok && a != types.Nil {
			return nil, typeError("concat", "lists", a)
		}
		out = append(out, members...)
	}
	return types.NewList(out...), nil
}

func nth(args []types.Data) (types.Data, error) {
	list, ok := types.Seq(args[0])
	if !ok {
		return nil, typeError("nth", "a list", args[0])
	}
	idx, ok := args[1].(*types.DNumber)
	if !ok {
		return nil, typeError("nth", "a number", args[1])
	}
	if idx.Num < 0 || idx.Num >= int64(len(list)) {
		return nil, fmt.Errorf("%w: nth %d of %d", types.ErrIndex, idx.Num, len(list))
	}
	return list[idx.Num], nil
}

func first(args []types.Data) (types.Data, error) {
	if args[0] == types.Nil {
		return types.Nil, nil
	}
	list, ok := types.Seq(args[0])
	if !ok {
		return nil, typeError("first", "a list", args[0])
	}
	if len(list) == 0 {
		return types.Nil, nil
	}
	return list[0], nil
}

func rest(args []types.Data) (types.Data, error) {
	if args[0] == types.Nil {
		return types.NewList(), nil
	}
	list, ok := types.Seq(args[0])
	if !ok {
		return nil, typeError("rest", "a list", args[0])
	}
	if len(list) == 0 {
		return types.NewList(), nil
	}
	return types.NewList(list[1:]...), nil
}

// Predicates
func is(pred func(types.Data) bool) func([]types.Data) (types.Data, error) {
	return func(args []types.Data) (types.Data, error) {
		return types.Bool(pred(args[0])), nil
	}
}

func isFunction(d types.Data) bool {
	switch d.(type) {
	case *types.DNative, *types.DClosure:
		return true
	}
	return false
}
