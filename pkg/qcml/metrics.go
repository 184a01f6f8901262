package qcml

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Metrics holds the quality parameters of one sample in document order.
type Metrics struct {
	keys   []string
	values map[string]Value
}

func NewMetrics() *Metrics {
	return &Metrics{values: make(map[string]Value)}
}

// Set stores v under key; an existing key keeps its position.
func (m *Metrics) Set(key string, v Value) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

func (m *Metrics) Get(key string) (Value, bool) {
	var v, ok = m.values[key]
	return v, ok
}

// Float returns the value of key if it is present and numeric.
func (m *Metrics) Float(key string) (float64, bool) {
	var v, ok = m.values[key]
	if !ok || !v.Numeric {
		return 0, false
	}
	return v.Number, true
}

func (m *Metrics) Delete(key string) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Rename moves the value of from to the end under to.
func (m *Metrics) Rename(from, to string) bool {
	var v, ok = m.values[from]
	if !ok {
		return false
	}
	m.Delete(from)
	m.Delete(to)
	m.Set(to, v)
	return true
}

func (m *Metrics) Keys() []string {
	return append([]string(nil), m.keys...)
}

func (m *Metrics) Len() int {
	return len(m.keys)
}

func (m *Metrics) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		var key, err = json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *Metrics) MarshalYAML() (interface{}, error) {
	var node = &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range m.keys {
		var key, value yaml.Node
		if err := key.Encode(k); err != nil {
			return nil, err
		}
		if err := value.Encode(m.values[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &value)
	}
	return node, nil
}

// Param is the schema-constant part of a quality parameter.
type Param struct {
	Description string
	Accession   string
}

// ParamTable collects descriptions and accessions of all parameters seen by a
// module, keyed by normalized name in first-seen order.
type ParamTable struct {
	keys   []string
	params map[string]Param
}

func NewParamTable() *ParamTable {
	return &ParamTable{params: make(map[string]Param)}
}

// Set records p for name; later samples overwrite earlier ones.
func (t *ParamTable) Set(name string, p Param) {
	if _, ok := t.params[name]; !ok {
		t.keys = append(t.keys, name)
	}
	t.params[name] = p
}

func (t *ParamTable) Get(name string) (Param, bool) {
	var p, ok = t.params[name]
	return p, ok
}

func (t *ParamTable) Delete(name string) bool {
	if _, ok := t.params[name]; !ok {
		return false
	}
	delete(t.params, name)
	for i, k := range t.keys {
		if k == name {
			t.keys = append(t.keys[:i:i], t.keys[i+1:]...)
			break
		}
	}
	return true
}

func (t *ParamTable) Keys() []string {
	return append([]string(nil), t.keys...)
}

func (t *ParamTable) Len() int {
	return len(t.keys)
}
