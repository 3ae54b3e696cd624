package reader

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	. "github.com/LostInTheLogs/mal/types"
)

var tokenRe = regexp.MustCompile(`[\s,]*(~@|[\[\]{}()'` + "`" + `~^@]|"(?:\\.|[^\\"])*"?|;.*|[^\s\[\]{}('"` + "`" + `,;)]*)`)

type MalReader struct {
	tokens []string
	index  int
}

// NewReader builds a cursor over tokens, leaving out comments.
func NewReader(tokens []string) *MalReader {
	t := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok != "" && !strings.HasPrefix(tok, ";") {
			t = append(t, tok)
		}
	}
	return &MalReader{t, 0}
}

func (r *MalReader) Next() (string, error) {
	t, err := r.Peek()
	if err != nil {
		return t, err
	}

	r.index++
	return t, nil
}

func (r *MalReader) Peek() (string, error) {
	if r.index >= len(r.tokens) {
		return "", ErrOutOfRange
	}
	return r.tokens[r.index], nil
}

// Tokenize splits input into raw tokens. It never fails; an unterminated
// string comes through as a token and is rejected by the reader.
func Tokenize(input string) []string {
	t := make([]string, 0, 16)
	for _, m := range tokenRe.FindAllStringSubmatch(input, -1) {
		if m[1] != "" {
			t = append(t, m[1])
		}
	}
	return t
}

// ReadStr reads the first form in input. ErrNoForm is returned when input
// holds nothing but whitespace and comments.
func ReadStr(input string) (Data, error) {
	r := NewReader(Tokenize(input))
	if _, err := r.Peek(); err != nil {
		return nil, ErrNoForm
	}
	return ReadForm(r)
}

func ReadForm(r *MalReader) (Data, error) {
	t, err := r.Peek()
	if err != nil {
		return nil, fmt.Errorf("%w: expected form, got EOF", ErrOutOfRange)
	}

	switch t[0] {
	case '(':
		return readSequence(r, ")", func(m []Data) Data { return NewList(m...) })
	case '[':
		return readSequence(r, "]", func(m []Data) Data { return NewVector(m...) })
	case '{':
		return readSequence(r, "}", func(m []Data) Data { return NewHashMap(m...) })
	case ')', ']', '}':
		return nil, fmt.Errorf("%w: '%s'", ErrUnexpected, t)
	case '"':
		return readString(r)
	case '\'':
		return nextWrapped(r, "quote")
	case '`':
		return nextWrapped(r, "quasiquote")
	case '@':
		return nextWrapped(r, "deref")
	case '~':
		if t == "~@" {
			return nextWrapped(r, "splice-unquote")
		}
		return nextWrapped(r, "unquote")
	case '^':
		return readMeta(r)
	default:
		return readAtom(r)
	}
}

func nextWrapped(r *MalReader, wrapper string) (Data, error) {
	r.Next()
	next, err := ReadForm(r) // Read the next form.
	if err != nil {
		return nil, err
	}

	return NewList(NewSymbol(wrapper), next), nil
}

// ^meta target reads as (with-meta target meta).
func readMeta(r *MalReader) (Data, error) {
	r.Next()
	meta, err := ReadForm(r)
	if err != nil {
		return nil, err
	}
	target, err := ReadForm(r)
	if err != nil {
		return nil, err
	}

	return NewList(NewSymbol("with-meta"), target, meta), nil
}

func readSequence(r *MalReader, end string, build func([]Data) Data) (Data, error) {
	r.Next() // Skip the opening delimiter.
	ret := []Data{}
	for {
		t, err := r.Peek()
		if errors.Is(err, ErrOutOfRange) {
			return nil, fmt.Errorf("%w: expected '%s', got EOF", ErrUnbalancedParens, end)
		}
		if t == end {
			break
		}

		f, err := ReadForm(r)
		if err != nil {
			return nil, err
		}
		ret = append(ret, f)
	}

	r.Next() // Skip the closing delimiter.
	return build(ret), nil
}

func readString(r *MalReader) (Data, error) {
	t, _ := r.Next()
	if len(t) < 2 || t[0] != '"' || t[len(t)-1] != '"' {
		return nil, fmt.Errorf("%w: expected '\"', got EOF", ErrUnbalancedQuotes)
	}

	var out strings.Builder
	wasSlash := false
	for i := 1; i < len(t)-1; i++ {
		c := t[i]
		if wasSlash {
			switch c {
			case 'n':
				out.WriteByte('\n')
			case '"':
				out.WriteByte('"')
			case '\\':
				out.WriteByte('\\')
			default:
				return nil, fmt.Errorf("%w: '\\%c'", ErrUnknownEscape, c)
			}
			wasSlash = false
			continue
		}

		if c == '\\' {
			wasSlash = true
		} else {
			out.WriteByte(c)
		}
	}

	// The closing quote was escaped, e.g. "abc\".
	if wasSlash {
		return nil, fmt.Errorf("%w: %s", ErrIncompleteEscape, ErrUnbalancedQuotes)
	}

	return NewString(out.String()), nil
}

func readAtom(r *MalReader) (Data, error) {
	t, _ := r.Next()

	switch t {
	case "nil":
		return Nil, nil
	case "true":
		return True, nil
	case "false":
		return False, nil
	}

	if t[0] == ':' {
		return NewKeyword(t), nil
	}

	n, err := strconv.ParseInt(t, 10, 64)
	if err == nil {
		return NewNumber(n), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%w: %s", ErrBadNumber, t)
	}

	return NewSymbol(t), nil
}
