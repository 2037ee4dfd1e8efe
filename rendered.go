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
	"dirpx.dev/derrclass/name"
	"dirpx.dev/derrclass/reason"
)

// Rendered is the error value produced when an instance is encoded with
// asErrorInstance enabled (the default).
//
// It carries:
//   - Reason: the "class.type.severity" path of the source instance (empty
//     for operation-level renderings);
//   - Class, Type, Severity: the same triple as separate names;
//   - Encoding: the encoding that produced Message;
//   - Message: the encoder's string output, returned verbatim by Error;
//   - Options: a copy of the instance's ErrorOptions.
//
// Each EncodeAs call builds a new Rendered, so values can be shared freely.
type Rendered struct {
	Reason   reason.Reason
	Class    name.Name
	Type     name.Name
	Severity name.Name
	Encoding name.Name
	Message  string
	Options  ErrorOptions
}

// NewRendered builds an unclassified Rendered holding msg. Operations use it
// to wrap their joined output.
func NewRendered(encoding name.Name, msg string) *Rendered {
	return &Rendered{Encoding: encoding, Message: msg}
}

// Error implements the built-in error interface. The message is exactly what
// the encoder produced; encoders own the whole format.
func (r *Rendered) Error() string {
	if r == nil {
		return "<nil>"
	}
	return r.Message
}

// ErrorClass returns the class name, or "" for operation renderings.
func (r *Rendered) ErrorClass() string { return string(r.Class) }

// ErrorType returns the type name, or "".
func (r *Rendered) ErrorType() string { return string(r.Type) }

// ErrorSeverity returns the severity name, or "".
func (r *Rendered) ErrorSeverity() string { return string(r.Severity) }

// ErrorReason returns the dotted taxonomy path, or "".
func (r *Rendered) ErrorReason() string { return string(r.Reason) }

// WithMessage returns a shallow copy of r with a replaced message.
// Useful when a transport wants to keep the classification but present the
// message in a different language.
func (r *Rendered) WithMessage(msg string) *Rendered {
	cp := *r
	cp.Message = msg
	return &cp
}
