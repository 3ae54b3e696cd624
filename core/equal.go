package core

import "github.com/LostInTheLogs/mal/types"

// Equal compares x and y structurally. Sequences compare member by member;
// a list and a vector are only equal when crossType is set. Functions are
// equal only to themselves.
func Equal(x, y types.Data, crossType bool) bool {
	switch a := x.(type) {
	case *types.DNumber:
		b, ok := y.(*types.DNumber)
		return ok && a.Num == b.Num

	case *types.DSymbol:
		b, ok := y.(*types.DSymbol)
		return ok && a.Name == b.Name

	case *types.DKeyword:
		b, ok := y.(*types.DKeyword)
		return ok && a.Name == b.Name

	case *types.DString:
		b, ok := y.(*types.DString)
		return ok && a.Str == b.Str

	case types.DNil, types.DTrue, types.DFalse:
		return x == y

	case *types.DNative:
		b, ok := y.(*types.DNative)
		return ok && a == b

	case *types.DClosure:
		b, ok := y.(*types.DClosure)
		return ok && a == b

	case *types.DHashMap:
		b, ok := y.(*types.DHashMap)
		return ok && equalMembers(a.Members, b.Members, crossType)

	case *types.DList, *types.DVector:
		if !crossType && !sameKind(x, y) {
			return false
		}
		xs, _ := types.Seq(x)
		ys, ok := types.Seq(y)
		return ok && equalMembers(xs, ys, crossType)
	}

	return false // Type mismatch
}

func sameKind(x, y types.Data) bool {
	switch x.(type) {
	case *types.DList:
		_, ok := y.(*types.DList)
		return ok
	case *types.DVector:
		_, ok := y.(*types.DVector)
		return ok
	}
	return false
}

func equalMembers(xs, ys []types.Data, crossType bool) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !Equal(xs[i], ys[i], crossType) {
			return false
		}
	}
	return true
}
