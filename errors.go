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
	"errors"
	"fmt"
)

// Failure taxonomy. Every error returned by this package (and by the
// operation and special packages) wraps exactly one of these sentinels.
var (
	// ErrMalformedInput reports empty or structurally invalid registration
	// input: no entries, invalid names, nil encoders, duplicate parameters.
	ErrMalformedInput = errors.New("derrclass: malformed input")

	// ErrSchemaViolation reports an unknown class, type or severity
	// referenced at registration or construction time.
	ErrSchemaViolation = errors.New("derrclass: schema violation")

	// ErrParameterViolation reports a missing required parameter or a
	// parameter failing its declared kind.
	ErrParameterViolation = errors.New("derrclass: parameter violation")

	// ErrOptionShape reports malformed solutions, fallback or details.
	ErrOptionShape = errors.New("derrclass: option shape violation")

	// ErrEncoderMissing reports an encoding that is not implemented on the
	// targeted (class, type), or on an operation registry.
	ErrEncoderMissing = errors.New("derrclass: encoder missing")

	// ErrEncoderContract reports an encoder that had to return a string
	// but did not.
	ErrEncoderContract = errors.New("derrclass: encoder contract violation")

	// ErrCompositionMisuse reports an operation built from something other
	// than live, unrendered instances.
	ErrCompositionMisuse = errors.New("derrclass: composition misuse")
)

// violation wraps kind with a formatted description.
func violation(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
