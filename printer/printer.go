package printer

import (
	"strconv"
	"strings"

	"github.com/LostInTheLogs/mal/types"
)

const functionToken = "#<function>"

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// PrintStr renders di as text. readable only changes how strings come out:
// quoted and escaped when true, raw otherwise.
func PrintStr(di types.Data, readable bool) string {
	switch d := di.(type) {
	case *types.DList:
		return printSeq(d.Members, readable, "(", ")")

	case *types.DVector:
		return printSeq(d.Members, readable, "[", "]")

	case *types.DHashMap:
		return printSeq(d.Members, readable, "{", "}")

	case *types.DString:
		if readable {
			return "\"" + escaper.Replace(d.Str) + "\""
		}
		return d.Str

	case *types.DNumber:
		return strconv.FormatInt(d.Num, 10)

	case *types.DSymbol:
		return d.Name

	case *types.DKeyword:
		return d.Name

	case types.DNil:
		return "nil"

	case types.DTrue:
		return "true"

	case types.DFalse:
		return "false"

	case *types.DNative, *types.DClosure:
		return functionToken

	default:
		panic("Unknown Data type")
	}
}

// PrintList prints each value and joins them with sep.
func PrintList(args []types.Data, readable bool, sep string) string {
	strs := make([]string, 0, len(args))
	for _, expr := range args {
		strs = append(strs, PrintStr(expr, readable))
	}

	return strings.Join(strs, sep)
}

func printSeq(members []types.Data, readable bool, start, end string) string {
	return start + PrintList(members, readable, " ") + end
}
