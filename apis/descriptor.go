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

// ErrorDescriptor is a flat description of how one reason is exposed over
// the wire: its transport statuses and a sample message.
//
// It uses plain strings and ints so that catalogs and tooling can print or
// serialise it without importing the core types.
type ErrorDescriptor struct {
	// Reason is "class.type.severity".
	Reason string `json:"reason" yaml:"reason"`

	// HTTPStatus is the HTTP status used for the reason.
	HTTPStatus int `json:"http_status" yaml:"httpStatus"`

	// GRPCCode is the gRPC status code (as integer) used for the reason.
	GRPCCode int `json:"grpc_code" yaml:"grpcCode"`

	// Message is an optional rendered example message.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}
