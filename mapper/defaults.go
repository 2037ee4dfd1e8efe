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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/derrclass/name"
)

// defaultHTTP holds the built-in HTTP status per class.
var defaultHTTP = map[name.Name]int{
	"caller":   http.StatusBadRequest,          // The caller passed something unusable.
	"user":     http.StatusBadRequest,          // The end user did; never a server fault.
	"callee":   http.StatusInternalServerError, // An internal component misbehaved.
	"system":   http.StatusInternalServerError, // The host environment failed us.
	"external": http.StatusBadGateway,          // A dependency failed in a way visible to the client.
	"generic":  http.StatusInternalServerError,
	"unknown":  http.StatusInternalServerError,
}

// defaultGRPC holds the built-in gRPC status per class.
var defaultGRPC = map[name.Name]codes.Code{
	"caller":   codes.InvalidArgument,
	"user":     codes.InvalidArgument,
	"callee":   codes.Internal,
	"system":   codes.Internal,
	"external": codes.Unavailable,
	"generic":  codes.Unknown,
	"unknown":  codes.Unknown,
}

// defaultPrefixes holds the built-in type-level rules. They sit below user
// prefixes for the same pattern, which replace them.
var defaultPrefixes = []struct {
	class   name.Name
	pattern string
	http    int
	grpc    codes.Code
}{
	{"user", "authentication", http.StatusUnauthorized, codes.Unauthenticated},
	{"user", "input", http.StatusUnprocessableEntity, codes.InvalidArgument},
	{"external", "network", http.StatusServiceUnavailable, codes.Unavailable},
	{"external", "return", http.StatusBadGateway, codes.Internal},
	{"system", "permissions", http.StatusInternalServerError, codes.PermissionDenied},
}
