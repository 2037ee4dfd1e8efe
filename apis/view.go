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

// ViewProvider is implemented by errors that can produce their own
// transport view.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is the serialisable shape of a rendered error. It is what HTTP
// bodies and gRPC details are built from.
type ErrorView struct {
	// Reason is "class.type.severity". Empty for operation-level errors.
	Reason string `json:"reason,omitempty"`

	Class    string `json:"class,omitempty"`
	Type     string `json:"type,omitempty"`
	Severity string `json:"severity,omitempty"`

	// Encoding names the encoding that produced Message.
	Encoding string `json:"encoding,omitempty"`

	// Message is the rendered message, exactly as the encoder produced it.
	Message string `json:"message"`

	// Details lists parameters, solutions, fallback and details, in that
	// order. Parameters are sorted by name.
	Details []Detail `json:"details,omitempty"`
}
