package mathexpr

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Sentinel errors returned by Evaluate. Callers match with errors.Is.
var (
	ErrInvalidExpression = errors.New("invalid mathematical expression")
	ErrDivisionByZero    = errors.New("division by zero")
)

var validPattern = regexp.MustCompile(`^[0-9+\-*/().]+$`)

// wordOperators maps spoken operator phrases to their symbols.
// Order matters: longer phrases must be replaced before their substrings.
var wordOperators = []struct {
	word   string
	symbol string
}{
	{"multiplied by", "*"},
	{"divided by", "/"},
	{"times", "*"},
	{"plus", "+"},
	{"minus", "-"},
	{"over", "/"},
}

var commandPhrases = []string{"what is", "whats", "calculate", "compute", "evaluate", "solve", "equals", "equal"}

// Evaluate parses and evaluates a basic arithmetic expression with the
// standard three precedence levels (+- / */ / unary and parentheses).
// The result is rounded to 6 decimal places to suppress floating point noise.
func Evaluate(expr string) (float64, error) {
	clean := Sanitize(expr)
	if clean == "" || !validPattern.MatchString(clean) {
		return 0, ErrInvalidExpression
	}

	p := &parser{input: clean}
	result, err := p.parseExpression()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.input) {
		return 0, ErrInvalidExpression
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, ErrInvalidExpression
	}

	return math.Round(result*1e6) / 1e6, nil
}

// Sanitize strips whitespace and normalizes textual operators so that
// phrases like "12 plus 5" survive grammar parsing. It is intentionally
// lossy: anything it cannot map is left for the validation pattern to reject.
func Sanitize(expr string) string {
	clean := strings.ToLower(strings.TrimSpace(expr))

	for _, phrase := range commandPhrases {
		clean = strings.ReplaceAll(clean, phrase, "")
	}
	for _, op := range wordOperators {
		clean = strings.ReplaceAll(clean, op.word, op.symbol)
	}

	clean = strings.NewReplacer(" ", "", "\t", "", "\n", "", "?", "", "!", "").Replace(clean)
	clean = strings.TrimSuffix(clean, "=")
	return clean
}

type parser struct {
	input string
	pos   int
}

func (p *parser) peek() byte {
	if p.pos < len(p.input) {
		return p.input[p.pos]
	}
	return 0
}

func (p *parser) consume() byte {
	c := p.peek()
	p.pos++
	return c
}

// expression := term (('+'|'-') term)*
func (p *parser) parseExpression() (float64, error) {
	result, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for p.peek() == '+' || p.peek() == '-' {
		op := p.consume()
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			result += right
		} else {
			result -= right
		}
	}
	return result, nil
}

// term := factor (('*'|'/') factor)*
func (p *parser) parseTerm() (float64, error) {
	result, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for p.peek() == '*' || p.peek() == '/' {
		op := p.consume()
		right, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			result *= right
		} else {
			if right == 0 {
				return 0, ErrDivisionByZero
			}
			result /= right
		}
	}
	return result, nil
}

// factor := number | '(' expression ')' | ('-'|'+') factor
func (p *parser) parseFactor() (float64, error) {
	switch p.peek() {
	case '(':
		p.consume()
		result, err := p.parseExpression()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, ErrInvalidExpression
		}
		p.consume()
		return result, nil
	case '-':
		p.consume()
		result, err := p.parseFactor()
		return -result, err
	case '+':
		p.consume()
		return p.parseFactor()
	}
	return p.parseNumber()
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) && (isDigit(p.input[p.pos]) || p.input[p.pos] == '.') {
		p.pos++
	}
	if start == p.pos {
		return 0, ErrInvalidExpression
	}
	value, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, ErrInvalidExpression
	}
	return value, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
