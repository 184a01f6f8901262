package qcml

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Value is a quality parameter value: a number when the qcML value attribute
// parses as one, the raw attribute text otherwise.
type Value struct {
	Number  float64
	Text    string
	Numeric bool
}

func Number(f float64) Value {
	return Value{Number: f, Numeric: true}
}

func Text(s string) Value {
	return Value{Text: s}
}

// ParseValue converts a value attribute, keeping the original string when it is not a number.
func ParseValue(s string) Value {
	var f, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Text(s)
	}
	return Number(f)
}

// Float returns the numeric value and whether there is one.
func (v Value) Float() (float64, bool) {
	return v.Number, v.Numeric
}

func (v Value) String() string {
	if v.Numeric {
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	}
	return v.Text
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.Numeric {
		return json.Marshal(v.Number)
	}
	return json.Marshal(v.Text)
}

func (v Value) MarshalYAML() (interface{}, error) {
	if v.Numeric {
		return v.Number, nil
	}
	return v.Text, nil
}
