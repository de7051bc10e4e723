// Package queryparse implements the small recursive-descent parser
// that turns a textual query into a query.Query. It recognizes four
// surface forms: a dotted name (optionally followed by ": signature"),
// a bare signature, an active-pattern shape introduced by "pattern:",
// and a computation-expression shape introduced by "cexpr<...>".
package queryparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/types"
)

// parser walks the token stream produced by lexer, consuming tokens
// left to right with one token of lookahead.
type parser struct {
	toks []token
	pos  int
}

func newParser(src string) *parser {
	return &parser{toks: newLexer(src).tokenize()}
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if t.typ != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) match(tt tokenType) bool {
	if p.peek().typ == tt {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(tt tokenType, what string) (token, error) {
	if p.peek().typ != tt {
		return token{}, fmt.Errorf("queryparse: expected %s, got %q", what, p.peek().text)
	}
	return p.advance(), nil
}

// Parse turns a query string into a query.Query. The original string
// is preserved verbatim in OriginalString regardless of how it parses.
func Parse(text string) (query.Query, error) {
	trimmed := strings.TrimSpace(text)
	q := query.Query{OriginalString: text}

	switch {
	case strings.HasPrefix(trimmed, "cexpr"):
		m, err := parseComputationExpression(trimmed)
		if err != nil {
			return query.Query{}, err
		}
		q.Method = query.Method{Kind: query.ByComputationExpression, ComputationExpression: m}
		return q, nil

	case strings.HasPrefix(trimmed, "pattern:"):
		m, err := parseActivePattern(strings.TrimSpace(trimmed[len("pattern:"):]))
		if err != nil {
			return query.Query{}, err
		}
		q.Method = query.Method{Kind: query.ByActivePattern, ActivePattern: m}
		return q, nil
	}

	name, rest, hasColon := splitNameAndSignature(trimmed)
	if name == "" || looksLikeSignature(name) {
		sig, err := parseSignature(trimmed)
		if err != nil {
			return query.Query{}, err
		}
		q.Method = query.Method{Kind: query.BySignature, Signature: sig}
		return q, nil
	}

	names, err := parseNameSegments(name)
	if err != nil {
		return query.Query{}, err
	}
	method := query.Method{Kind: query.ByName, Names: names}
	if hasColon {
		sig, err := parseSignature(rest)
		if err != nil {
			return query.Query{}, err
		}
		method.HasSignature = true
		method.Signature = sig
	}
	q.Method = method
	return q, nil
}

// splitNameAndSignature splits "Name.Sub : signature" on the first
// top-level ':' (one not inside angle brackets), since a signature may
// itself contain ':' in neither of our grammars, this is always the
// separator when present.
func splitNameAndSignature(s string) (name, rest string, hasColon bool) {
	depth := 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ':':
			if depth == 0 {
				return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:]), true
			}
		}
	}
	return strings.TrimSpace(s), "", false
}

// looksLikeSignature reports whether a bare name-position string is
// actually a full signature expression (arrow, tuple, or a lone
// wildcard/variable), so "int -> int" is not misparsed as a three-name
// ByName query. The tuple separator only counts when spaced ("a * b"):
// a bare "*" with no surrounding space is a name glob instead (e.g.
// "get*"), not a tuple operator.
func looksLikeSignature(s string) bool {
	return strings.Contains(s, "->") || strings.Contains(s, " * ") ||
		strings.HasPrefix(s, "?") || strings.HasPrefix(s, "'") || strings.HasPrefix(s, "_")
}

// parseNameSegments splits a dotted name outermost-first (as written)
// into innermost-first query.NameQuery segments, each optionally
// carrying a generic arity written as "<N>" and a glob/regex match
// method.
func parseNameSegments(name string) ([]query.NameQuery, error) {
	parts := splitDotted(name)
	segments := make([]query.NameQuery, len(parts))
	for i, raw := range parts {
		nq, err := parseNameSegment(raw)
		if err != nil {
			return nil, err
		}
		// Reverse to innermost-first to match DisplayName's ordering
		// convention (the written form is outermost-first, dotted).
		segments[len(parts)-1-i] = nq
	}
	return segments, nil
}

func splitDotted(s string) []string {
	depth := 0
	var parts []string
	start := 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case '.':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

var arityPattern = regexp.MustCompile(`^(.*)<(\d+)>$`)

func parseNameSegment(raw string) (query.NameQuery, error) {
	raw = strings.TrimSpace(raw)
	nq := query.NameQuery{MatchMethod: query.StringCompareMethod}

	if m := arityPattern.FindStringSubmatch(raw); m != nil {
		raw = m[1]
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return query.NameQuery{}, fmt.Errorf("queryparse: bad generic arity in %q", m[0])
		}
		nq.HasGenericArity = true
		nq.GenericParameters = make([]types.TypeVariable, n)
		for i := range nq.GenericParameters {
			nq.GenericParameters[i] = types.TypeVariable{Name: fmt.Sprintf("t%d", i)}
		}
	}

	switch {
	case raw == "*":
		nq.MatchMethod = query.AnyMethod
	case strings.HasPrefix(raw, "/") && strings.HasSuffix(raw, "/") && len(raw) >= 2:
		pattern := raw[1 : len(raw)-1]
		re, err := regexp.Compile(pattern)
		if err != nil {
			return query.NameQuery{}, fmt.Errorf("queryparse: bad regex %q: %w", pattern, err)
		}
		nq.MatchMethod = query.RegexMethod
		nq.CompiledRegex = re
	case strings.Contains(raw, "*"):
		re, err := regexp.Compile("^" + strings.ReplaceAll(regexp.QuoteMeta(raw), `\*`, ".*") + "$")
		if err != nil {
			return query.NameQuery{}, fmt.Errorf("queryparse: bad glob %q: %w", raw, err)
		}
		nq.MatchMethod = query.RegexMethod
		nq.CompiledRegex = re
	default:
		nq.Expected = raw
	}
	return nq, nil
}

func parseActivePattern(rest string) (query.ActivePatternQuery, error) {
	anyPrefix := false
	if strings.HasPrefix(rest, "_") {
		r := strings.TrimSpace(rest[1:])
		r = strings.TrimPrefix(r, "->")
		rest = strings.TrimSpace(r)
		anyPrefix = true
	}
	sig, err := parseSignature(rest)
	if err != nil {
		return query.ActivePatternQuery{}, err
	}
	return query.ActivePatternQuery{Signature: sig.Signature, AnyParameterPrefix: anyPrefix}, nil
}

// parseComputationExpression parses "cexpr<Type> {syn1,syn2,...}"; the
// brace clause is optional and defaults to the empty syntax set.
func parseComputationExpression(s string) (query.ComputationExpressionQuery, error) {
	open := strings.Index(s, "<")
	if open < 0 {
		return query.ComputationExpressionQuery{}, fmt.Errorf("queryparse: cexpr query missing '<...>' type")
	}
	depth := 0
	close := -1
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				close = i
			}
		}
		if close >= 0 {
			break
		}
	}
	if close < 0 {
		return query.ComputationExpressionQuery{}, fmt.Errorf("queryparse: unterminated cexpr type")
	}
	typeText := s[open+1 : close]
	p := newParser(typeText)
	lt, err := p.parseArrow()
	if err != nil {
		return query.ComputationExpressionQuery{}, err
	}
	ceq := query.ComputationExpressionQuery{Type: lt}

	braceStart := strings.Index(s[close:], "{")
	if braceStart < 0 {
		return ceq, nil
	}
	braceStart += close
	braceEnd := strings.Index(s[braceStart:], "}")
	if braceEnd < 0 {
		return query.ComputationExpressionQuery{}, fmt.Errorf("queryparse: unterminated syntax set")
	}
	braceEnd += braceStart
	syns := strings.Split(s[braceStart+1:braceEnd], ",")
	ceq.Syntaxes = make(map[string]bool, len(syns))
	for _, syn := range syns {
		syn = strings.TrimSpace(syn)
		if syn != "" {
			ceq.Syntaxes[syn] = true
		}
	}
	return ceq, nil
}

func parseSignature(text string) (query.SignatureQuery, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "?" {
		return query.SignatureQuery{IsWildcard: true}, nil
	}
	p := newParser(trimmed)
	lt, err := p.parseArrow()
	if err != nil {
		return query.SignatureQuery{}, err
	}
	if p.peek().typ != tokEOF {
		return query.SignatureQuery{}, fmt.Errorf("queryparse: unexpected trailing input %q", p.peek().text)
	}
	return query.SignatureQuery{Signature: lt}, nil
}

// parseArrow ::= tuple ( '->' tuple )*
func (p *parser) parseArrow() (types.LowType, error) {
	first, err := p.parseTuple()
	if err != nil {
		return types.LowType{}, err
	}
	elements := []types.LowType{first}
	optional := []bool{false}
	for p.match(tokArrow) {
		next, err := p.parseTuple()
		if err != nil {
			return types.LowType{}, err
		}
		elements = append(elements, next)
		optional = append(optional, false)
	}
	if len(elements) == 1 {
		return elements[0], nil
	}
	return types.NewArrowWithOptional(elements, optional), nil
}

// parseTuple ::= applied ( '*' applied )*
func (p *parser) parseTuple() (types.LowType, error) {
	first, err := p.parseApplied()
	if err != nil {
		return types.LowType{}, err
	}
	elements := []types.LowType{first}
	for p.match(tokStar) {
		next, err := p.parseApplied()
		if err != nil {
			return types.LowType{}, err
		}
		elements = append(elements, next)
	}
	if len(elements) == 1 {
		return elements[0], nil
	}
	return types.NewTuple(false, elements...), nil
}

// parseApplied ::= atom ( '<' arrow (',' arrow)* '>' )? ident*
func (p *parser) parseApplied() (types.LowType, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return types.LowType{}, err
	}
	if !p.match(tokLAngle) {
		return p.parsePostfix(atom)
	}
	if atom.Kind != types.IdentityKind_ {
		return types.LowType{}, fmt.Errorf("queryparse: only a named type can take generic arguments")
	}
	var args []types.LowType
	for {
		arg, err := p.parseArrow()
		if err != nil {
			return types.LowType{}, err
		}
		args = append(args, arg)
		if p.match(tokComma) {
			continue
		}
		break
	}
	if _, err := p.expect(tokRAngle, "'>'"); err != nil {
		return types.LowType{}, err
	}
	ctor := types.NewIdentityType(types.NewPartialIdentity(atom.Identity.Name, len(args)))
	return p.parsePostfix(types.NewGeneric(ctor, args...))
}

// parsePostfix applies trailing postfix type constructors to base, left
// to right: "'a list option" is option<list<'a>>.
func (p *parser) parsePostfix(base types.LowType) (types.LowType, error) {
	for p.peek().typ == tokIdent {
		ctor, err := p.parseDottedIdentity()
		if err != nil {
			return types.LowType{}, err
		}
		ctorType := types.NewIdentityType(types.NewPartialIdentity(ctor.Identity.Name, 1))
		base = types.NewGeneric(ctorType, base)
	}
	return base, nil
}

// parseAtom ::= '(' arrow ')' | ident ('.' ident)* | typeVar | wildcard | any
func (p *parser) parseAtom() (types.LowType, error) {
	t := p.peek()
	switch t.typ {
	case tokLParen:
		p.advance()
		lt, err := p.parseArrow()
		if err != nil {
			return types.LowType{}, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return types.LowType{}, err
		}
		return lt, nil

	case tokTypeVar:
		p.advance()
		return types.NewVariable(types.QuerySource, types.TypeVariable{Name: t.text}), nil

	case tokWildcard:
		p.advance()
		if t.text == "" {
			// An anonymous "?" still gets its own correlation tag, so two
			// unrelated anonymous holes in the same query are never
			// silently forced to unify with each other.
			return types.TaggedWildcard(types.NewWildcardTag()), nil
		}
		return types.TaggedWildcard(t.text), nil

	case tokAny:
		p.advance()
		return types.Wildcard(), nil

	case tokIdent:
		return p.parseDottedIdentity()
	}
	return types.LowType{}, fmt.Errorf("queryparse: unexpected token %q in type", t.text)
}

func (p *parser) parseDottedIdentity() (types.LowType, error) {
	first, err := p.expect(tokIdent, "identifier")
	if err != nil {
		return types.LowType{}, err
	}
	names := []string{first.text}
	for p.peek().typ == tokDot {
		p.advance()
		seg, err := p.expect(tokIdent, "identifier")
		if err != nil {
			return types.LowType{}, err
		}
		names = append(names, seg.text)
	}
	// Written outermost-first; DisplayName is innermost-first.
	rev := make([]string, len(names))
	for i, n := range names {
		rev[len(names)-1-i] = n
	}
	return types.NewIdentityType(types.NewPartialIdentity(types.NewDisplayName(rev...), 0)), nil
}
