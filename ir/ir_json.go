package ir

import (
	"encoding/json"
	"fmt"
)

type irBase struct {
	Type   Type    `json:"type"`
	Values []*Node `json:"values,omitempty"`
	Fields []*Node `json:"fields,omitempty"`
	Named  []*Node `json:"named,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:   y.Type,
		Values: y.Values,
		Fields: y.Fields,
		Named:  y.Named,
	}
	if y.Type == TextType {
		type C struct {
			irBase
			Quote  Quote  `json:"quote"`
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, Quote: y.Quote, String: y.String})
	}
	return json.Marshal(base)
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		Quote  Quote  `json:"quote"`
		String string `json:"string"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	if len(tmp.Fields) != len(tmp.Named) {
		return fmt.Errorf("%w: %d fields but %d named values", ErrBadIR, len(tmp.Fields), len(tmp.Named))
	}
	res := Node{
		Type:   tmp.Type,
		Values: tmp.Values,
		Fields: tmp.Fields,
		Named:  tmp.Named,
	}
	switch tmp.Type {
	case TextType:
		res.Quote = tmp.Quote
		res.String = normalizeNewlines(tmp.String)
		if len(res.Values)+len(res.Fields) != 0 {
			return fmt.Errorf("%w: text with children", ErrBadIR)
		}
	case SectionType, DocumentType:
		if len(res.Fields) != 0 {
			return fmt.Errorf("%w: %s with named values", ErrBadIR, tmp.Type)
		}
		for _, c := range res.Values {
			if !isChild(c) {
				return fmt.Errorf("%w: %w", ErrBadIR, ErrSectionChild)
			}
		}
	}
	for _, v := range res.Values {
		if v == nil {
			return fmt.Errorf("%w: null value", ErrBadIR)
		}
	}
	*y = res
	return nil
}

func ToJSON(node *Node) ([]byte, error) {
	return json.Marshal(node)
}

func FromJSON(d []byte) (*Node, error) {
	res := &Node{}
	if err := json.Unmarshal(d, res); err != nil {
		return nil, err
	}
	return res, nil
}
