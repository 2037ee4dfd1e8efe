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

package apis

// ClassifiedError is an error that knows its place in a taxonomy.
//
// Operation-level errors (unions, intersections) have no single
// classification and return empty strings.
type ClassifiedError interface {
	error

	// ErrorClass returns the error class, e.g. "user".
	ErrorClass() string
	// ErrorType returns the error type within the class, e.g. "input".
	ErrorType() string
	// ErrorSeverity returns the severity, e.g. "warning".
	ErrorSeverity() string
}

// ReasonedError is an error that exposes its dotted reason,
// "class.type.severity".
//
// The returned value MAY be empty. Callers should then fall back to a
// generic transport status.
type ReasonedError interface {
	error

	// ErrorReason returns the dotted reason.
	ErrorReason() string
}
