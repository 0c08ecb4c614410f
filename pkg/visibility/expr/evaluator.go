package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-recordview/pkg/visibility"
)

// Evaluator is a small, dependency-free rule evaluator for catalog visibility
// conditions.
//
// Supported forms:
// - truthy checks: `occupation_status`
// - comparisons: `occupation_status == "Employee"`, `has_credit_card != "No"`
// - substring match: `personal.visa_type ~= "tourist"` (case-insensitive)
// - composition: `a == "x" && (b || !c)`
//
// Bare identifiers resolve against the question partition; the `personal.`
// prefix resolves against the personal partition.
type Evaluator struct{}

func New() *Evaluator { return &Evaluator{} }

func (e *Evaluator) Eval(questionID, rule string, ctx visibility.Context) (bool, error) {
	_ = questionID
	trimmed := strings.TrimSpace(rule)
	if trimmed == "" {
		return true, nil
	}

	tokens, err := tokenize(trimmed)
	if err != nil {
		return false, err
	}
	if len(tokens) == 0 {
		return true, nil
	}

	node, err := parse(tokens)
	if err != nil {
		return false, err
	}
	if node == nil {
		return true, nil
	}
	return node.eval(ctx)
}

type tokenKind int

const (
	tokenIdentifier tokenKind = iota
	tokenString
	tokenBool
	tokenEq
	tokenNeq
	tokenContains
	tokenAnd
	tokenOr
	tokenNot
	tokenLParen
	tokenRParen
)

type token struct {
	kind tokenKind
	raw  string
}

func tokenize(input string) ([]token, error) {
	var tokens []token
	i := 0

	peek := func() byte {
		if i >= len(input) {
			return 0
		}
		return input[i]
	}

	for i < len(input) {
		ch := peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case ch == '(':
			i++
			tokens = append(tokens, token{kind: tokenLParen, raw: "("})
		case ch == ')':
			i++
			tokens = append(tokens, token{kind: tokenRParen, raw: ")"})
		case ch == '!':
			i++
			if peek() == '=' {
				i++
				tokens = append(tokens, token{kind: tokenNeq, raw: "!="})
				break
			}
			tokens = append(tokens, token{kind: tokenNot, raw: "!"})
		case ch == '=':
			i++
			if peek() != '=' {
				return nil, errors.New("visibility/expr: unexpected '='; use '=='")
			}
			i++
			tokens = append(tokens, token{kind: tokenEq, raw: "=="})
		case ch == '~':
			i++
			if peek() != '=' {
				return nil, errors.New("visibility/expr: unexpected '~'; use '~='")
			}
			i++
			tokens = append(tokens, token{kind: tokenContains, raw: "~="})
		case ch == '&':
			i++
			if peek() != '&' {
				return nil, errors.New("visibility/expr: unexpected '&'; use '&&'")
			}
			i++
			tokens = append(tokens, token{kind: tokenAnd, raw: "&&"})
		case ch == '|':
			i++
			if peek() != '|' {
				return nil, errors.New("visibility/expr: unexpected '|'; use '||'")
			}
			i++
			tokens = append(tokens, token{kind: tokenOr, raw: "||"})
		case ch == '"' || ch == '\'':
			quote := ch
			i++
			start := i
			escaped := false
			closed := false
			for i < len(input) {
				c := input[i]
				i++
				if escaped {
					escaped = false
					continue
				}
				if c == '\\' {
					escaped = true
					continue
				}
				if c == quote {
					raw := string(quote) + input[start:i-1] + string(quote)
					if quote == '\'' {
						raw = `"` + strings.ReplaceAll(input[start:i-1], `\'`, `'`) + `"`
					}
					value, err := strconv.Unquote(raw)
					if err != nil {
						return nil, fmt.Errorf("visibility/expr: invalid string literal: %w", err)
					}
					tokens = append(tokens, token{kind: tokenString, raw: value})
					closed = true
					break
				}
			}
			if !closed {
				return nil, errors.New("visibility/expr: unterminated string literal")
			}
		default:
			start := i
			for i < len(input) && !strings.ContainsRune(" \t\n\r()!=&|~", rune(input[i])) {
				i++
			}
			raw := input[start:i]
			switch strings.ToLower(raw) {
			case "true", "false":
				tokens = append(tokens, token{kind: tokenBool, raw: strings.ToLower(raw)})
			default:
				tokens = append(tokens, token{kind: tokenIdentifier, raw: raw})
			}
		}
	}
	return tokens, nil
}

type node interface {
	eval(ctx visibility.Context) (bool, error)
}

type orNode struct{ left, right node }

func (n orNode) eval(ctx visibility.Context) (bool, error) {
	ok, err := n.left.eval(ctx)
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}
	return n.right.eval(ctx)
}

type andNode struct{ left, right node }

func (n andNode) eval(ctx visibility.Context) (bool, error) {
	ok, err := n.left.eval(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return n.right.eval(ctx)
}

type notNode struct{ inner node }

func (n notNode) eval(ctx visibility.Context) (bool, error) {
	ok, err := n.inner.eval(ctx)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

type compareNode struct {
	identifier string
	op         tokenKind
	literal    string
	isBool     bool
}

func (n compareNode) eval(ctx visibility.Context) (bool, error) {
	value, _ := lookup(ctx, n.identifier)
	got := coerceString(value)

	switch n.op {
	case tokenEq:
		if n.isBool {
			return truthy(value) == (n.literal == "true"), nil
		}
		return got == n.literal, nil
	case tokenNeq:
		if n.isBool {
			return truthy(value) != (n.literal == "true"), nil
		}
		return got != n.literal, nil
	case tokenContains:
		return strings.Contains(strings.ToLower(got), strings.ToLower(n.literal)), nil
	default:
		return false, fmt.Errorf("visibility/expr: unsupported operator for %q", n.identifier)
	}
}

type truthyNode struct{ identifier string }

func (n truthyNode) eval(ctx visibility.Context) (bool, error) {
	value, ok := lookup(ctx, n.identifier)
	if !ok {
		return false, nil
	}
	return truthy(value), nil
}

type stream struct {
	tokens []token
	pos    int
}

func parse(tokens []token) (node, error) {
	s := &stream{tokens: tokens}
	out, err := parseOr(s)
	if err != nil {
		return nil, err
	}
	if s.pos < len(s.tokens) {
		return nil, fmt.Errorf("visibility/expr: unexpected token %q", s.tokens[s.pos].raw)
	}
	return out, nil
}

func parseOr(s *stream) (node, error) {
	left, err := parseAnd(s)
	if err != nil {
		return nil, err
	}
	for s.match(tokenOr) {
		right, err := parseAnd(s)
		if err != nil {
			return nil, err
		}
		left = orNode{left: left, right: right}
	}
	return left, nil
}

func parseAnd(s *stream) (node, error) {
	left, err := parseUnary(s)
	if err != nil {
		return nil, err
	}
	for s.match(tokenAnd) {
		right, err := parseUnary(s)
		if err != nil {
			return nil, err
		}
		left = andNode{left: left, right: right}
	}
	return left, nil
}

func parseUnary(s *stream) (node, error) {
	if s.match(tokenNot) {
		inner, err := parseUnary(s)
		if err != nil {
			return nil, err
		}
		return notNode{inner: inner}, nil
	}
	return parsePrimary(s)
}

func parsePrimary(s *stream) (node, error) {
	if s.match(tokenLParen) {
		inner, err := parseOr(s)
		if err != nil {
			return nil, err
		}
		if !s.match(tokenRParen) {
			return nil, errors.New("visibility/expr: missing closing ')'")
		}
		return inner, nil
	}

	ident, ok := s.consume(tokenIdentifier)
	if !ok {
		if s.pos >= len(s.tokens) {
			return nil, errors.New("visibility/expr: empty expression")
		}
		return nil, fmt.Errorf("visibility/expr: expected identifier, got %q", s.tokens[s.pos].raw)
	}

	for _, op := range []tokenKind{tokenEq, tokenNeq, tokenContains} {
		if !s.match(op) {
			continue
		}
		lit, isBool, err := s.consumeLiteral()
		if err != nil {
			return nil, err
		}
		if isBool && op == tokenContains {
			return nil, errors.New("visibility/expr: '~=' requires a string literal")
		}
		return compareNode{identifier: ident.raw, op: op, literal: lit, isBool: isBool}, nil
	}

	return truthyNode{identifier: ident.raw}, nil
}

func (s *stream) match(kind tokenKind) bool {
	if s.pos >= len(s.tokens) || s.tokens[s.pos].kind != kind {
		return false
	}
	s.pos++
	return true
}

func (s *stream) consume(kind tokenKind) (token, bool) {
	if s.pos >= len(s.tokens) || s.tokens[s.pos].kind != kind {
		return token{}, false
	}
	out := s.tokens[s.pos]
	s.pos++
	return out, true
}

func (s *stream) consumeLiteral() (string, bool, error) {
	if s.pos >= len(s.tokens) {
		return "", false, errors.New("visibility/expr: missing literal")
	}
	tok := s.tokens[s.pos]
	s.pos++
	switch tok.kind {
	case tokenString:
		return tok.raw, false, nil
	case tokenBool:
		return tok.raw, true, nil
	case tokenIdentifier:
		// Bare literals are treated as strings to keep catalogs forgiving.
		return tok.raw, false, nil
	default:
		return "", false, fmt.Errorf("visibility/expr: expected literal, got %q", tok.raw)
	}
}

const personalPrefix = "personal."

func lookup(ctx visibility.Context, key string) (any, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false
	}
	if strings.HasPrefix(strings.ToLower(key), personalPrefix) {
		return lookupMap(ctx.Personal, key[len(personalPrefix):])
	}
	return lookupMap(ctx.Questions, key)
}

func lookupMap(values map[string]any, path string) (any, bool) {
	path = strings.TrimSpace(path)
	if len(values) == 0 || path == "" {
		return nil, false
	}

	if v, ok := values[path]; ok {
		return v, true
	}

	parts := strings.Split(path, ".")
	var current any = values
	for _, part := range parts {
		typed, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = typed[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		trimmed := strings.TrimSpace(v)
		return trimmed != "" && !strings.EqualFold(trimmed, "no") && !strings.EqualFold(trimmed, "false")
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

func coerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(value)
	}
}
