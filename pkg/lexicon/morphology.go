package lexicon

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMorphologyNotObject = errors.New("morphology must be a JSON object")

// Inflection is one slot of the morphology table: a slot label and its
// accented surface forms in display order.
type Inflection struct {
	Label string
	Forms []string
}

// Morphology keeps inflections in the order the service sent them.
type Morphology []Inflection

// Forms returns the forms stored under label.
func (m Morphology) Forms(label string) ([]string, bool) {
	for _, inflection := range m {
		if inflection.Label == label {
			return inflection.Forms, true
		}
	}
	return nil, false
}

// FirstForm returns the first form stored under label.
func (m Morphology) FirstForm(label string) (string, bool) {
	forms, ok := m.Forms(label)
	if !ok || len(forms) == 0 {
		return "", false
	}
	return forms[0], true
}

func (m *Morphology) set(label string, forms []string) {
	for i := range *m {
		if (*m)[i].Label == label {
			(*m)[i].Forms = forms
			return
		}
	}
	*m = append(*m, Inflection{Label: label, Forms: forms})
}

// UnmarshalJSON decodes a JSON object while keeping its key order.
func (m *Morphology) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = nil
		return nil
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("can not read morphology: %w", err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return ErrMorphologyNotObject
	}
	result := Morphology{}
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return fmt.Errorf("can not read morphology label: %w", err)
		}
		label, ok := token.(string)
		if !ok {
			return fmt.Errorf("unexpected morphology label: %v", token)
		}
		var forms []string
		if err := decoder.Decode(&forms); err != nil {
			return fmt.Errorf("can not decode forms of %q: %w", label, err)
		}
		result.set(label, forms)
	}
	if _, err := decoder.Token(); err != nil {
		return fmt.Errorf("can not read morphology end: %w", err)
	}
	*m = result
	return nil
}

// MarshalJSON encodes morphology as a JSON object in slot order.
func (m Morphology) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	buffer := new(bytes.Buffer)
	buffer.WriteByte('{')
	for i, inflection := range m {
		if i > 0 {
			buffer.WriteByte(',')
		}
		label, err := json.Marshal(inflection.Label)
		if err != nil {
			return nil, err
		}
		forms, err := json.Marshal(inflection.Forms)
		if err != nil {
			return nil, err
		}
		buffer.Write(label)
		buffer.WriteByte(':')
		buffer.Write(forms)
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}
