package filter

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

/*
Wire-form decoding. The inverse of the MarshalJSON forms in predicate.go,
used by clients that receive compiled trees over HTTP. Decoded values keep
their wire transformations (wildcards stay on substring values), so encode
and decode round-trip.
*/

////////////////////////////////////////////////////////////////////////////////

// DecodeNode reconstructs a predicate tree from its wire form.
func DecodeNode(data []byte) (Node, error) {
	var wire map[string]json.RawMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("error decoding node: %w", err)
	}
	if len(wire) != 1 {
		return nil, fmt.Errorf("expected one operator key, got %d", len(wire))
	}
	for key, raw := range wire {
		if key == "AND" {
			return decodeAnd(raw)
		}
		op, ok := ParseTargetOperator(key)
		if !ok {
			return nil, fmt.Errorf("unrecognized operator %q", key)
		}
		if op.IsUnary() {
			return decodeNullCheck(op, raw)
		}
		return decodeCondition(op, raw)
	}
	return nil, nil // unreachable
}

func decodeAnd(raw json.RawMessage) (Node, error) {
	var children [2]json.RawMessage
	if err := json.Unmarshal(raw, &children); err != nil {
		return nil, fmt.Errorf("error decoding conjunction: %w", err)
	}
	left, err := DecodeNode(children[0])
	if err != nil {
		return nil, err
	}
	right, err := DecodeNode(children[1])
	if err != nil {
		return nil, err
	}
	return &And{Left: left, Right: right}, nil
}

func decodeNullCheck(op TargetOperator, raw json.RawMessage) (Node, error) {
	var ref string
	if err := json.Unmarshal(raw, &ref); err != nil {
		return nil, fmt.Errorf("error decoding field reference: %w", err)
	}
	field, err := fieldName(ref)
	if err != nil {
		return nil, err
	}
	return &NullCheck{Op: op, Field: field}, nil
}

func decodeCondition(op TargetOperator, raw json.RawMessage) (Node, error) {
	var operands []json.RawMessage
	if err := json.Unmarshal(raw, &operands); err != nil {
		return nil, fmt.Errorf("error decoding operands: %w", err)
	}
	if len(operands) != 2 {
		return nil, fmt.Errorf("expected two operands, got %d", len(operands))
	}
	var ref string
	if err := json.Unmarshal(operands[0], &ref); err != nil {
		return nil, fmt.Errorf("error decoding field reference: %w", err)
	}
	field, err := fieldName(ref)
	if err != nil {
		return nil, err
	}
	var values []any
	if op == TargetInSet || op == TargetNotInSet {
		if err := json.Unmarshal(operands[1], &values); err != nil {
			return nil, fmt.Errorf("error decoding value set: %w", err)
		}
	} else {
		var value any
		if err := json.Unmarshal(operands[1], &value); err != nil {
			return nil, fmt.Errorf("error decoding value: %w", err)
		}
		values = []any{value}
	}
	return &Condition{Op: op, Field: field, Values: values}, nil
}

func fieldName(ref string) (string, error) {
	name, ok := strings.CutPrefix(ref, "#")
	if !ok {
		return "", fmt.Errorf("expected field reference, got %q", ref)
	}
	return name, nil
}

// UnmarshalJSON decodes a compiled result, reconstructing the predicate tree
// from its wire form.
func (r *Result) UnmarshalJSON(data []byte) error {
	var aux struct {
		Results json.RawMessage `json:"results"`
		Errors  []ParsingError  `json:"errors"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("error decoding result: %w", err)
	}
	r.Errors = aux.Errors
	r.Results = nil
	if len(aux.Results) == 0 || string(aux.Results) == "null" {
		return nil
	}
	node, err := DecodeNode(aux.Results)
	if err != nil {
		return err
	}
	r.Results = node
	return nil
}
