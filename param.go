/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package derrclass

import (
	"fmt"
	"reflect"
	"strings"
)

// ParamKind constrains the runtime kind of a parameter value.
type ParamKind uint8

const (
	// KindAny places no constraint on the value.
	KindAny ParamKind = iota
	// KindString accepts string values, including named string types.
	KindString
	// KindNumber accepts integer, unsigned, float and complex values.
	KindNumber
	// KindBool accepts booleans.
	KindBool
	// KindObject accepts maps, slices, arrays, structs and pointers.
	KindObject
	// KindFunc accepts functions.
	KindFunc
)

var kindNames = [...]string{
	KindAny:    "any",
	KindString: "string",
	KindNumber: "number",
	KindBool:   "bool",
	KindObject: "object",
	KindFunc:   "func",
}

// String returns the kind's catalog spelling.
func (k ParamKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ParamKind(%d)", uint8(k))
}

// ParseParamKind parses a catalog spelling. The empty string is KindAny.
// "boolean" and "function" are accepted as aliases.
func ParseParamKind(s string) (ParamKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return KindAny, nil
	case "string":
		return KindString, nil
	case "number":
		return KindNumber, nil
	case "bool", "boolean":
		return KindBool, nil
	case "object":
		return KindObject, nil
	case "func", "function":
		return KindFunc, nil
	}
	return KindAny, fmt.Errorf("%w: unknown parameter kind %q", ErrMalformedInput, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k ParamKind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("%w: unknown parameter kind %d", ErrMalformedInput, uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseParamKind.
func (k *ParamKind) UnmarshalText(text []byte) error {
	parsed, err := ParseParamKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Matches reports whether v satisfies the kind. A nil value only satisfies
// KindAny.
func (k ParamKind) Matches(v any) bool {
	if k == KindAny {
		return true
	}
	return kindOf(v) == k
}

// kindOf classifies v. It returns KindAny for nil and for kinds no
// constraint can name (channels, unsafe pointers).
func kindOf(v any) ParamKind {
	if v == nil {
		return KindAny
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.String:
		return KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return KindNumber
	case reflect.Bool:
		return KindBool
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer, reflect.Interface:
		return KindObject
	case reflect.Func:
		return KindFunc
	default:
		return KindAny
	}
}

// describeKind names the runtime kind of v for error messages.
func describeKind(v any) string {
	if v == nil {
		return "nil"
	}
	if k := kindOf(v); k != KindAny {
		return k.String()
	}
	return reflect.TypeOf(v).Kind().String()
}

// ParamSpec declares one parameter of an error type.
//
// The zero Optional means the parameter is required, and the zero Kind means
// any value is accepted, so ParamSpec{Name: "x"} and Param("x") are the same
// shorthand declaration.
type ParamSpec struct {
	Name     string    `json:"name" yaml:"name"`
	Optional bool      `json:"optional,omitempty" yaml:"optional,omitempty"`
	Kind     ParamKind `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// Param is the shorthand declaration: required and unconstrained.
func Param(name string) ParamSpec {
	return ParamSpec{Name: name}
}

// Required reports whether the parameter must be supplied.
func (p ParamSpec) Required() bool { return !p.Optional }

// check validates a supplied parameter set against p.
func (p ParamSpec) check(params map[string]any) error {
	v, present := params[p.Name]
	if !present {
		if p.Optional {
			return nil
		}
		return fmt.Errorf("%w: required parameter %q was not provided", ErrParameterViolation, p.Name)
	}
	if !p.Kind.Matches(v) {
		return fmt.Errorf("%w: parameter %q must be of kind %s, but was of kind %s",
			ErrParameterViolation, p.Name, p.Kind, describeKind(v))
	}
	return nil
}
