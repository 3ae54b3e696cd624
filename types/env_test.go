package types

import (
	"errors"
	"testing"
)

func TestEnvGetChainsToOuter(t *testing.T) {
	root, _ := NewEnv(nil, nil, nil)
	root.Set("a", NewNumber(1))
	child, _ := NewEnv(root, []string{"b"}, []Data{NewNumber(2)})

	for _, name := range []string{"a", "b"} {
		if _, err := child.Get(name); err != nil {
			t.Errorf("Get(%q): %v", name, err)
		}
	}

	if _, err := root.Get("b"); !errors.Is(err, ErrSymbolNotFound) {
		t.Errorf("root.Get(b) = %v, want ErrSymbolNotFound", err)
	}
}

func TestEnvContainsIsLocal(t *testing.T) {
	root, _ := NewEnv(nil, nil, nil)
	root.Set("DEBUG-EVAL", True)
	child, _ := NewEnv(root, nil, nil)

	if !root.Contains("DEBUG-EVAL") {
		t.Error("root should contain DEBUG-EVAL")
	}
	if child.Contains("DEBUG-EVAL") {
		t.Error("Contains must not consult the outer env")
	}
	if _, ok := child.Find("DEBUG-EVAL"); !ok {
		t.Error("Find should consult the outer env")
	}
}

func TestEnvShadowing(t *testing.T) {
	root, _ := NewEnv(nil, nil, nil)
	root.Set("x", NewNumber(1))
	child, _ := NewEnv(root, nil, nil)
	child.Set("x", NewNumber(2))
	child.Set("y", NewNumber(3))

	got, _ := root.Get("x")
	if got.(*DNumber).Num != 1 {
		t.Errorf("root x = %d, want 1", got.(*DNumber).Num)
	}
	if root.Contains("y") {
		t.Error("child binding leaked into root")
	}
	if child.Outer() != root {
		t.Error("Outer() should return the parent")
	}
}

func TestNewEnvBinds(t *testing.T) {
	one, two, three := NewNumber(1), NewNumber(2), NewNumber(3)

	tests := []struct {
		name    string
		binds   []string
		exprs   []Data
		want    map[string]Data
		restLen map[string]int
		wantErr error
	}{
		{
			name:  "positional",
			binds: []string{"a", "b"},
			exprs: []Data{one, two},
			want:  map[string]Data{"a": one, "b": two},
		},
		{
			name:    "variadic",
			binds:   []string{"a", "&", "rest"},
			exprs:   []Data{one, two, three},
			want:    map[string]Data{"a": one},
			restLen: map[string]int{"rest": 2},
		},
		{
			name:    "variadic with no extra args",
			binds:   []string{"a", "&", "rest"},
			exprs:   []Data{one},
			want:    map[string]Data{"a": one},
			restLen: map[string]int{"rest": 0},
		},
		{
			name:    "only rest",
			binds:   []string{"&", "xs"},
			exprs:   nil,
			restLen: map[string]int{"xs": 0},
		},
		{
			name:    "too many args",
			binds:   []string{"a"},
			exprs:   []Data{one, two},
			wantErr: ErrBindLength,
		},
		{
			name:    "too few args",
			binds:   []string{"a", "b"},
			exprs:   []Data{one},
			wantErr: ErrBindLength,
		},
		{
			name:    "too few args before &",
			binds:   []string{"a", "b", "&", "rest"},
			exprs:   []Data{one},
			wantErr: ErrBindLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := NewEnv(nil, tt.binds, tt.exprs)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewEnv: %v", err)
			}
			for k, v := range tt.want {
				got, err := env.Get(k)
				if err != nil || got != v {
					t.Errorf("%s = %v (%v), want %v", k, got, err, v)
				}
			}
			for k, n := range tt.restLen {
				got, err := env.Get(k)
				if err != nil {
					t.Fatalf("Get(%s): %v", k, err)
				}
				list, ok := got.(*DList)
				if !ok {
					t.Fatalf("%s is %T, want *DList", k, got)
				}
				if len(list.Members) != n {
					t.Errorf("len(%s) = %d, want %d", k, len(list.Members), n)
				}
			}
		})
	}
}

func TestVariadicRestHoldsTrailingArgs(t *testing.T) {
	env, err := NewEnv(nil, []string{"a", "&", "rest"}, []Data{NewNumber(1), NewNumber(2), NewNumber(3)})
	if err != nil {
		t.Fatal(err)
	}
	rest, _ := env.Get("rest")
	members := rest.(*DList).Members
	if members[0].(*DNumber).Num != 2 || members[1].(*DNumber).Num != 3 {
		t.Errorf("rest = %v, want (2 3)", members)
	}
}

func TestNativeCallChecksArity(t *testing.T) {
	called := false
	n := &DNative{Name: "f", Arity: 2, Fn: func(args []Data) (Data, error) {
		called = true
		return Nil, nil
	}}

	if _, err := n.Call([]Data{Nil}); !errors.Is(err, ErrArity) {
		t.Errorf("err = %v, want ErrArity", err)
	}
	if called {
		t.Error("Fn ran despite wrong arity")
	}

	v := &DNative{Name: "v", Arity: Variadic, Fn: func(args []Data) (Data, error) { return NewNumber(int64(len(args))), nil }}
	got, err := v.Call([]Data{Nil, Nil, Nil})
	if err != nil || got.(*DNumber).Num != 3 {
		t.Errorf("variadic Call = %v, %v", got, err)
	}
}

func TestTruthy(t *testing.T) {
	for _, d := range []Data{Nil, False} {
		if Truthy(d) {
			t.Errorf("Truthy(%T) = true", d)
		}
	}
	for _, d := range []Data{True, NewNumber(0), NewString(""), NewList()} {
		if !Truthy(d) {
			t.Errorf("Truthy(%T) = false", d)
		}
	}
}
