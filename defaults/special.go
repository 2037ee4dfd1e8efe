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

package defaults

import (
	"dirpx.dev/derrclass"
	"dirpx.dev/derrclass/name"
	"dirpx.dev/derrclass/special"
)

// Names of the default special classes.
const (
	Generic name.Name = "generic"
	Unknown name.Name = "unknown"
)

// ApplyGeneric registers the encoders of the generic special class on c.
// Generic errors carry no information beyond their options; they are meant
// for code that has not been classified yet.
func ApplyGeneric(c *special.Class) (*special.Class, error) {
	return applySpecial(c,
		"generic program problem",
		"A generic problem occurred. This type is usually used when incrementally adopting error classification, and conveys no further information. Further details may be available below.")
}

// ApplyUnknown registers the encoders of the unknown special class on c.
func ApplyUnknown(c *special.Class) (*special.Class, error) {
	return applySpecial(c,
		"unknown program problem",
		"An unknown problem occurred. This type is usually used when no definite information about an error is yet available. Further details may be available below.")
}

// NewGeneric returns the generic special class with its default encoders.
func NewGeneric(opts ...derrclass.NamespaceOption) *special.Class {
	return mustSpecial(Generic, ApplyGeneric, opts)
}

// NewUnknown returns the unknown special class with its default encoders.
func NewUnknown(opts ...derrclass.NamespaceOption) *special.Class {
	return mustSpecial(Unknown, ApplyUnknown, opts)
}

func applySpecial(c *special.Class, standard, verbose string) (*special.Class, error) {
	encoders := TypeEncoders(DefaultCodes(), DefaultExplanations(), constant(standard), constant(verbose))
	if _, err := c.RegisterEncoders(encoders); err != nil {
		return c, err
	}
	return c.SetDefaultEncoding(Standard), nil
}

func mustSpecial(n name.Name, apply func(*special.Class) (*special.Class, error), opts []derrclass.NamespaceOption) *special.Class {
	c, err := special.New(n, opts...)
	if err == nil {
		c, err = apply(c)
	}
	if err != nil {
		panic(err)
	}
	return c
}
