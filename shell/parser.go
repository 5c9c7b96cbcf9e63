package shell

import (
	"io"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// ErrUnclosedQuote is returned if a quoted span is not terminated before the end of the line.
var ErrUnclosedQuote = errors.New("unclosed quote")

// Parser splits a raw input line into tokens.
type Parser interface {
	Parse(line string) ([]string, error)
}

// DefaultParser splits on whitespace and keeps single and double quoted spans together.
type DefaultParser struct{}

func NewDefaultParser() *DefaultParser {
	return &DefaultParser{}
}

type parseState int

const (
	stateOutside parseState = iota
	stateSingleQuote
	stateDoubleQuote
)

// Parse tokenizes the line. Quotes are removed, an empty quoted span produces an empty token.
func (p *DefaultParser) Parse(line string) ([]string, error) {
	r := strings.NewReader(line)

	var (
		args    []string
		buf     strings.Builder
		pending bool
	)

	flush := func() {
		if pending {
			args = append(args, buf.String())
			buf.Reset()
			pending = false
		}
	}

	currState := stateOutside
	for {
		ch, _, err := r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch currState {
		case stateOutside:
			switch {
			case unicode.IsSpace(ch):
				flush()
			case ch == '\'':
				currState = stateSingleQuote
				pending = true
			case ch == '"':
				currState = stateDoubleQuote
				pending = true
			default:
				buf.WriteRune(ch)
				pending = true
			}

		case stateSingleQuote:
			if ch == '\'' {
				currState = stateOutside
			} else {
				buf.WriteRune(ch)
			}

		case stateDoubleQuote:
			if ch == '"' {
				currState = stateOutside
			} else {
				buf.WriteRune(ch)
			}
		}
	}

	if currState != stateOutside {
		return nil, ErrUnclosedQuote
	}
	flush()

	return args, nil
}
