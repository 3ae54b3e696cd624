package types

import "fmt"

// Data is the closed set of mal runtime values. Only the types in this
// package implement it.
type Data interface {
	data()
}

type DNil struct{}
type DTrue struct{}
type DFalse struct{}

var (
	Nil   Data = DNil{}
	True  Data = DTrue{}
	False Data = DFalse{}
)

type DNumber struct {
	Num int64
}

type DSymbol struct {
	Name string
}

// DKeyword keeps its leading ':' in Name.
type DKeyword struct {
	Name string
}

type DString struct {
	Str string
}

type DList struct {
	Members []Data
}

type DVector struct {
	Members []Data
}

// DHashMap holds flattened key/value pairs in insertion order. Keys are not
// checked for uniqueness.
type DHashMap struct {
	Members []Data
}

// Variadic is the Arity of a native that accepts any number of arguments.
const Variadic = -1

type DNative struct {
	Name  string
	Arity int
	Fn    func(args []Data) (Data, error)
}

// DClosure is a user function. Binds may contain "&" followed by the rest
// parameter; Env is the environment the fn* form was evaluated in.
type DClosure struct {
	Binds []string
	Body  Data
	Env   *Env
}

func (DNil) data() {}
func (DTrue) data() {}
func (DFalse) data() {}
func (*DNumber) data() {}
func (*DSymbol) data() {}
func (*DKeyword) data() {}
func (*DString) data() {}
func (*DList) data() {}
func (*DVector) data() {}
func (*DHashMap) data() {}
func (*DNative) data() {}
func (*DClosure) data() {}

// Call validates the argument count against Arity before running Fn.
func (n *DNative) Call(args []Data) (Data, error) {
	if n.Arity != Variadic && len(args) != n.Arity {
		return nil, fmt.Errorf("%w: %s requires %d args, %d provided", ErrArity, n.Name, n.Arity, len(args))
	}
	return n.Fn(args)
}

func NewList(members ...Data) *DList {
	if members == nil {
		members = []Data{}
	}
	return &DList{Members: members}
}

func NewVector(members ...Data) *DVector {
	if members == nil {
		members = []Data{}
	}
	return &DVector{Members: members}
}

func NewHashMap(members ...Data) *DHashMap {
	if members == nil {
		members = []Data{}
	}
	return &DHashMap{Members: members}
}

func NewNumber(n int64) *DNumber { return &DNumber{Num: n} }
func NewSymbol(name string) *DSymbol { return &DSymbol{Name: name} }
func NewKeyword(name string) *DKeyword { return &DKeyword{Name: name} }
func NewString(s string) *DString { return &DString{Str: s} }

func Bool(b bool) Data {
	if b {
		return True
	}
	return False
}

// Truthy reports whether d counts as true in a condition: everything except
// nil and false.
func Truthy(d Data) bool {
	return d != Nil && d != False
}

// Seq returns the members of a list or vector.
func Seq(d Data) ([]Data, bool) {
	switch s := d.(type) {
	case *DList:
		return s.Members, true
	case *DVector:
		return s.Members, true
	}
	return nil, false
}
