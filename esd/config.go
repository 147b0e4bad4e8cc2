// SPDX-License-Identifier: MIT
// Package: shesd/esd
//
// config.go — YAML representation of Parameter.
//
// Document shape (every key optional; missing keys keep DefaultParameter):
//
//	k: 0.2
//	alpha: 0.01
//	tail: upper   # both | upper | lower
//
// Unknown keys are rejected so typos do not silently fall back to defaults.

package esd

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// parameterDoc is the on-disk form; pointers distinguish "absent" from zero.
type parameterDoc struct {
	K     *float64 `yaml:"k,omitempty"`
	Alpha *float64 `yaml:"alpha,omitempty"`
	Tail  *string  `yaml:"tail,omitempty"`
}

// LoadParameter decodes a YAML document into a validated Parameter.
// An empty document yields DefaultParameter().
//
// Errors:
//   - YAML syntax errors and unknown keys (wrapped).
//   - ErrUnknownTail, ErrInvalidK, ErrInvalidAlpha (match with errors.Is).
func LoadParameter(data []byte) (Parameter, error) {
	p := DefaultParameter()

	var doc parameterDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Parameter{}, esdErrorf(opLoadParameter, err)
	}

	if err := p.apply(doc); err != nil {
		return Parameter{}, esdErrorf(opLoadParameter, err)
	}
	if err := p.Validate(); err != nil {
		return Parameter{}, esdErrorf(opLoadParameter, err)
	}

	return p, nil
}

// MarshalYAML implements yaml.Marshaler, writing the tail in text form.
func (p Parameter) MarshalYAML() (interface{}, error) {
	tail, err := p.Tail.MarshalText()
	if err != nil {
		return nil, err
	}
	s := string(tail)

	return parameterDoc{K: &p.K, Alpha: &p.Alpha, Tail: &s}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Keys absent from the node keep
// the receiver's current values; no validation is performed here.
func (p *Parameter) UnmarshalYAML(value *yaml.Node) error {
	var doc parameterDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}

	return p.apply(doc)
}

// apply overwrites the fields present in doc.
func (p *Parameter) apply(doc parameterDoc) error {
	if doc.K != nil {
		p.K = *doc.K
	}
	if doc.Alpha != nil {
		p.Alpha = *doc.Alpha
	}
	if doc.Tail != nil {
		if err := p.Tail.UnmarshalText([]byte(*doc.Tail)); err != nil {
			return err
		}
	}

	return nil
}
