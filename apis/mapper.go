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

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/derrclass/reason"
)

// Mapper is an immutable, concurrency-safe view of the status mapping
// rules. It resolves a reason ("class.type.severity") into transport
// statuses for HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the reason. Without a
	// type-specific rule the mapper falls back to the class-level rule.
	HTTPStatus(r reason.Reason) int

	// GRPCStatus returns the gRPC status code for the reason.
	GRPCStatus(r reason.Reason) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same
	// matching logic.
	Status(r reason.Reason) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(r reason.Reason) string
}

// Status represents a resolved pair of transport statuses for a single error.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
