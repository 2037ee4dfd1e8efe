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

// Package grpcx carries rendered errors over gRPC.
//
// A classified error becomes a *status.Status whose code comes from an
// apis.Mapper and whose details hold a google.rpc.ErrorInfo with the
// reason, the classification, the encoding and the error options as
// metadata. Optional extras add RequestInfo, RetryInfo and Help details.
//
// ErrorInfo metadata keys:
//
//	class, type, severity, encoding
//	param.<name>     one per parameter
//	solution.<n>     zero-based, in order
//	fallback, details
//
// ExtractView reverses the projection on the client side.
package grpcx
