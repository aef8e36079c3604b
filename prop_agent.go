package vcard

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard/internal/util"
)

// Agent is the AGENT property: an embedded card or a URI referencing one.
type Agent struct {
	PropertyBase
	url  string
	card *Card
}

// NewAgentCard creates an AGENT property with an embedded card.
func NewAgentCard(c *Card) *Agent { return &Agent{card: c} }

// NewAgentURL creates an AGENT property referencing a card.
func NewAgentURL(url string) *Agent { return &Agent{url: url} }

func (*Agent) Name() string { return PropAgent }

// URL returns the URI of the agent.
func (p *Agent) URL() string { return p.url }

// SetURL sets the URI and clears the embedded card.
func (p *Agent) SetURL(url string) *Agent {
	p.url, p.card = url, nil
	return p
}

// EmbeddedCard returns the embedded card.
func (p *Agent) EmbeddedCard() *Card { return p.card }

// SetEmbeddedCard sets the embedded card and clears the URI.
func (p *Agent) SetEmbeddedCard(c *Card) {
	p.url, p.card = "", c
}

// Equal compares group, parameters and the value.
func (p *Agent) Equal(val any) bool {
	other, ok := val.(*Agent)
	if !ok {
		return false
	}
	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	if (p.card == nil) != (other.card == nil) || (p.card != nil && !p.card.Equal(other.card)) {
		return false
	}
	return p.url == other.url && p.equalBase(&other.PropertyBase)
}

// IsEmbeddedCardText reports whether an unescaped value holds a whole card.
func IsEmbeddedCardText(s string) bool {
	s = util.TrimSP(s)
	return len(s) >= 11 && util.EqFold(s[:11], "BEGIN:VCARD")
}

func newAgentCodec() *codec[*Agent] {
	return &codec[*Agent]{
		name:     PropAgent,
		versions: allVersions,
		newFn:    func() *Agent { return &Agent{} },
		defType:  constType(DataTypeText),
		valueType: func(p *Agent, _ Version) DataType {
			if p.card == nil {
				return DataTypeURI
			}
			return DataTypeText
		},
		writeText: func(p *Agent, ctx *WriteContext) (string, error) {
			if p.card == nil {
				if p.url == "" {
					return "", errtrace.Wrap(NewSkipPropertyError("no card or URL"))
				}
				return p.url, nil
			}
			if ctx.EmbedCard == nil {
				return "", errtrace.Wrap(NewSkipPropertyError("embedded cards are not supported by this writer"))
			}
			s, err := ctx.EmbedCard(p.card)
			if err != nil {
				return "", errtrace.Wrap(err)
			}
			return EscapeText(s), nil
		},
		parseText: func(p *Agent, value string, dt DataType, _ *Params, ctx *ParseContext) error {
			if dt == DataTypeURI {
				p.SetURL(util.TrimSP(value))
				return nil
			}
			s := UnescapeText(value)
			if IsEmbeddedCardText(s) {
				if ctx.ParseEmbedded == nil {
					return errtrace.Wrap(NewCannotParseError("embedded cards are not supported by this reader"))
				}
				c, err := ctx.ParseEmbedded(s)
				if err != nil {
					return errtrace.Wrap(err)
				}
				p.SetEmbeddedCard(c)
				return nil
			}
			if strings.Contains(s, ":") {
				p.SetURL(util.TrimSP(s))
				return nil
			}
			return errtrace.Wrap(NewCannotParseError("value is neither a card nor a URI"))
		},
		plain: func(p *Agent, ctx *WriteContext) (string, error) {
			if p.card != nil {
				return "", errtrace.Wrap(NewSkipPropertyError("embedded cards cannot be written in %s format", ctx.Format))
			}
			if p.url == "" {
				return "", errtrace.Wrap(NewSkipPropertyError("no card or URL"))
			}
			return p.url, nil
		},
		setPlain: func(p *Agent, s string, _ DataType, _ *Params, _ *ParseContext) error {
			if s = util.TrimSP(s); s == "" {
				return errtrace.Wrap(NewCannotParseError("empty URL"))
			}
			p.SetURL(s)
			return nil
		},
		parseHTML: func(p *Agent, el *HTMLElement, _ *Params, _ *ParseContext) error {
			u := el.URL()
			if u == "" {
				return errtrace.Wrap(NewSkipPropertyError("agent has neither a card nor a link"))
			}
			p.SetURL(u)
			return nil
		},
	}
}
