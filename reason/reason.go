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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"

	"dirpx.dev/derrclass/name"
)

// Reason is the canonical, validated representation of a taxonomy path.
//
// Reasons have one to three dot-separated segments, each a valid name:
// class, class.type or class.type.severity.
type Reason string

// MaxSegments is the deepest path a reason can describe.
const MaxSegments = 3

// Separator joins reason segments.
const Separator = "."

// reasonFmt accepts 1 to 3 segments, each segment following the
// dirpx.dev/derrclass/name rules.
//
// Examples that match:
//
//	"user"
//	"user.input"
//	"external.network.critical"
//	"caller.parameter.warning"
//
// Examples that DO NOT match:
//
//	"user..input"        (empty segment)
//	"user/input"         (slash)
//	"a.b.c.d"            (too deep)
//	"1user.input"        (digit first)
//
// NOTE: empty string ("") is treated separately as "no reason".
const reasonFmt = `^[A-Za-z][A-Za-z0-9_-]*(\.[A-Za-z][A-Za-z0-9_-]*){0,2}$`

var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrReasonInvalidFormat is returned when a reason does not conform to
	// the expected format.
	ErrReasonInvalidFormat = errors.New("derrclass: invalid reason format")
	// ErrReasonInvalidLength is returned when a segment is longer than a name
	// may be.
	ErrReasonInvalidLength = errors.New("derrclass: invalid reason length")
)

var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty is the zero-value reason.
var Empty Reason = ""

// Of builds the reason for a (class, type, severity) triple. Trailing empty
// names are dropped, so Of("user", "", "") is "user".
//
// Of does not validate; names coming out of a namespace are valid already.
func Of(segments ...name.Name) Reason {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s == name.Empty {
			break
		}
		parts = append(parts, string(s))
	}
	return Reason(strings.Join(parts, Separator))
}

// Parse trims surrounding spaces and validates s.
//
// Parse accepts the empty string and returns reason.Empty without error.
func Parse(s string) (Reason, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse is the panic-on-error variant of Parse.
//
// NOTE: unlike Parse, MustParse does NOT allow the empty string.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("derrclass: empty reason in MustParse")
	}
	return r
}

// Validate checks whether r is in canonical form. The empty reason is valid.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// Segments splits r into its names. The empty reason has no segments.
func (r Reason) Segments() []name.Name {
	if r == Empty {
		return nil
	}
	raw := strings.Split(string(r), Separator)
	out := make([]name.Name, len(raw))
	for i, s := range raw {
		out[i] = name.Name(s)
	}
	return out
}

// Class returns the first segment, or name.Empty.
func (r Reason) Class() name.Name {
	if r == Empty {
		return name.Empty
	}
	head, _, _ := strings.Cut(string(r), Separator)
	return name.Name(head)
}

// Rest returns everything after the class segment ("" when there is none).
func (r Reason) Rest() string {
	_, tail, _ := strings.Cut(string(r), Separator)
	return tail
}

// String returns the reason as a plain string.
func (r Reason) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// An empty or whitespace-only input produces reason.Empty.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	for _, seg := range strings.Split(s, Separator) {
		if len(seg) > name.MaxLength {
			return ErrReasonInvalidLength
		}
	}
	return nil
}
