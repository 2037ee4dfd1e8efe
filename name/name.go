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

package name

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Name is the canonical, validated representation of a taxonomy identifier.
//
// It is a separate type (not just string) so that registries can declare
// which values they expect. Untyped string constants convert implicitly, so
// map literals such as map[Name]T{"user": ...} read naturally.
type Name string

// MinLength and MaxLength define the allowed length range for a name.
const (
	// MinLength is the minimum length for a valid name. Single-letter names
	// are allowed; small test taxonomies commonly use them.
	MinLength = 1

	// MaxLength is the maximum length for a valid name.
	MaxLength = 64
)

// nameFmt is the canonical regular expression used to validate names.
//
// Pattern breakdown:
//
//	^ - start of string;
//	[A-Za-z] - first character must be an ASCII letter;
//	[A-Za-z0-9_-]{0,63} - the rest may be letters, digits, '_' or '-';
//	$ - end of string.
//
// IMPORTANT: the quantifier {0,63} is tied to MinLength / MaxLength above.
const nameFmt = `^[A-Za-z][A-Za-z0-9_-]{0,63}$`

// nameRe is precompiled so repeated validations in registries do not pay the
// compilation cost.
//
// Examples of valid names:
//   - "user"
//   - "nonTechnical"
//   - "dependency_failed"
//   - "A"
//
// Examples of invalid names:
//   - ""           (empty)
//   - "user.input" (contains the reason separator)
//   - "1st"        (does not start with a letter)
//   - "bad name"   (contains a space)
var nameRe = regexp.MustCompile(nameFmt)

// ErrNameInvalid is returned when a value cannot be parsed or validated as a
// name.
var ErrNameInvalid = errors.New("derrclass: invalid name")

var (
	_ encoding.TextMarshaler   = (*Name)(nil)
	_ encoding.TextUnmarshaler = (*Name)(nil)
)

// Empty is the zero-value name. It is never a valid registry key.
var Empty Name = ""

// Parse trims surrounding spaces from s and validates the result.
//
// Names are not case-folded: "nonTechnical" and "nontechnical"
// are distinct encodings.
func Parse(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Name(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// package-level var blocks.
func MustParse(s string) Name {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Validate checks whether n is a valid name. The empty name is invalid.
func Validate(n Name) error {
	return validate(string(n))
}

// String returns the name as a plain string.
func (n Name) String() string {
	return string(n)
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	if err := Validate(n); err != nil {
		return nil, err
	}
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func validate(s string) error {
	if !nameRe.MatchString(s) {
		return ErrNameInvalid
	}
	return nil
}
