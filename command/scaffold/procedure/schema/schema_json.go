package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// JsonPayload reports whether payload is meant to be read as json rather than yaml.
func JsonPayload(payload []byte) bool {
	trimmed := bytes.TrimSpace(payload)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

type jsonReader struct {
	payload []byte
	decoder *json.Decoder
}

// DecodeJson reads a json payload into a yaml document node so both formats
// share one tree conversion. Object key order is kept as written.
func DecodeJson(payload []byte) (*yaml.Node, error) {
	if !json.Valid(payload) {
		// * surface the decoder position of the syntax error
		var value any
		if err := json.Unmarshal(payload, &value); err != nil {
			return nil, err
		}
		return nil, errors.New("invalid json")
	}

	reader := &jsonReader{
		payload: payload,
		decoder: json.NewDecoder(bytes.NewReader(payload)),
	}
	reader.decoder.UseNumber()

	node, err := reader.value()
	if err != nil {
		return nil, err
	}

	// * reject anything after the top level value
	if _, err := reader.decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected content after line %d", reader.line())
	}

	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{node}}, nil
}

func (r *jsonReader) line() int {
	offset := int(r.decoder.InputOffset())
	if offset > len(r.payload) {
		offset = len(r.payload)
	}
	return bytes.Count(r.payload[:offset], []byte{'\n'}) + 1
}

func (r *jsonReader) scalar(tag string, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value, Line: r.line()}
}

func (r *jsonReader) value() (*yaml.Node, error) {
	line := r.line()
	token, err := r.decoder.Token()
	if err != nil {
		return nil, err
	}

	switch value := token.(type) {
	case json.Delim:
		switch value {
		case '{':
			node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Line: line}
			for r.decoder.More() {
				key, err := r.decoder.Token()
				if err != nil {
					return nil, err
				}
				name, ok := key.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v at line %d", key, r.line())
				}
				keyNode := r.scalar("!!str", name)
				child, err := r.value()
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, keyNode, child)
			}
			if _, err := r.decoder.Token(); err != nil {
				return nil, err
			}
			return node, nil
		case '[':
			node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Line: line}
			for r.decoder.More() {
				child, err := r.value()
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, child)
			}
			if _, err := r.decoder.Token(); err != nil {
				return nil, err
			}
			return node, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v at line %d", value, line)
	case string:
		return r.scalar("!!str", value), nil
	case json.Number:
		if _, err := value.Int64(); err == nil {
			return r.scalar("!!int", value.String()), nil
		}
		return r.scalar("!!float", value.String()), nil
	case bool:
		return r.scalar("!!bool", strconv.FormatBool(value)), nil
	case nil:
		return r.scalar("!!null", "null"), nil
	}

	return nil, fmt.Errorf("unexpected token %v at line %d", token, line)
}
