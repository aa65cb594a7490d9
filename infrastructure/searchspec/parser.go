package searchspec

import (
	"fmt"
	"strconv"

	"github.com/felixgeelhaar/planner-go/domain/config"
)

// Parse parses a single feature expression, e.g.
// "astar(heuristic=sum([g(),weight(h(),2)]))", into a FeatureSpec.
func Parse(s string) (*config.FeatureSpec, error) {
	p := &parser{lex: newLexer(s)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	spec, err := p.parseFeature()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected trailing input at position %d", ErrSyntax, p.cur.pos)
	}
	return spec, nil
}

type parser struct {
	lex *lexer
	cur token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *parser) expect(k tokenKind) (token, error) {
	if p.cur.kind != k {
		return token{}, fmt.Errorf("%w: expected %s, got %s at position %d", ErrSyntax, k, p.cur.kind, p.cur.pos)
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return tok, nil
}

func (p *parser) parseFeature() (*config.FeatureSpec, error) {
	name, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}

	spec := &config.FeatureSpec{Name: name.text}
	if p.cur.kind != tokRParen {
		for {
			opt, err := p.parseArg()
			if err != nil {
				return nil, err
			}
			spec.Options = append(spec.Options, opt)
			if p.cur.kind != tokComma {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return spec, nil
}

func (p *parser) parseArg() (config.Option, error) {
	// Look ahead for "IDENT =" keyword form vs. a bare value.
	if p.cur.kind == tokIdent {
		save := p.cur
		saveLexPos := p.lex.pos
		if err := p.advance(); err != nil {
			return config.Option{}, err
		}
		if p.cur.kind == tokEquals {
			if err := p.advance(); err != nil {
				return config.Option{}, err
			}
			val, err := p.parseValue()
			if err != nil {
				return config.Option{}, err
			}
			return config.Option{Key: save.text, Value: val}, nil
		}
		// Not a keyword binding: rewind and parse as a value starting
		// from the identifier we already consumed.
		p.lex.pos = saveLexPos
		p.cur = save
	}

	val, err := p.parseValue()
	if err != nil {
		return config.Option{}, err
	}
	return config.Option{Value: val}, nil
}

func (p *parser) parseValue() (config.Value, error) {
	switch p.cur.kind {
	case tokLBracket:
		return p.parseList()
	case tokNumber:
		text := p.cur.text
		if err := p.advance(); err != nil {
			return config.Value{}, err
		}
		n, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return config.Value{}, fmt.Errorf("%w: invalid number %q", ErrSyntax, text)
		}
		return config.Value{Kind: config.ValueNumber, Number: n}, nil
	case tokIdent:
		name := p.cur.text
		if b, ok := isBoolLiteral(name); ok {
			if err := p.advance(); err != nil {
				return config.Value{}, err
			}
			return config.Value{Kind: config.ValueBool, Bool: b}, nil
		}
		// Disambiguate a nested feature (IDENT "(" ...) from a bare ident
		// by peeking at the lexer without consuming from p.cur yet.
		savedPos := p.lex.pos
		savedCur := p.cur
		if err := p.advance(); err != nil {
			return config.Value{}, err
		}
		if p.cur.kind == tokLParen {
			p.lex.pos = savedPos
			p.cur = savedCur
			feature, err := p.parseFeature()
			if err != nil {
				return config.Value{}, err
			}
			return config.Value{Kind: config.ValueFeature, Feature: feature}, nil
		}
		return config.Value{Kind: config.ValueIdent, Ident: name}, nil
	default:
		return config.Value{}, fmt.Errorf("%w: unexpected token %s at position %d", ErrSyntax, p.cur.kind, p.cur.pos)
	}
}

func (p *parser) parseList() (config.Value, error) {
	if _, err := p.expect(tokLBracket); err != nil {
		return config.Value{}, err
	}
	var items []config.Value
	if p.cur.kind != tokRBracket {
		for {
			v, err := p.parseValue()
			if err != nil {
				return config.Value{}, err
			}
			items = append(items, v)
			if p.cur.kind != tokComma {
				break
			}
			if err := p.advance(); err != nil {
				return config.Value{}, err
			}
		}
	}
	if _, err := p.expect(tokRBracket); err != nil {
		return config.Value{}, err
	}
	return config.Value{Kind: config.ValueList, List: items}, nil
}
