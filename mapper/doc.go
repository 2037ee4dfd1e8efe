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

// Package mapper provides deterministic, immutable mappings from error
// reasons ("class.type.severity", see dirpx.dev/derrclass/reason) to
// transport-level statuses for HTTP and gRPC.
//
// # Resolution model
//
// A reason is split into its class and the rest ("type.severity"). A Mapper
// resolves statuses in the following order:
//
//  1. exact override for the class;
//  2. per-class longest-prefix-match (LPM) on the rest of the reason;
//  3. per-class default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal by default).
//
// Prefix rules are segment-aware: "*" matches exactly one segment, and the
// more specific prefix wins:
//
//	WithHTTPPrefix("user", "authentication", http.StatusUnauthorized)
//	WithHTTPPrefix("external", "*.critical", http.StatusServiceUnavailable)
//
// # Library defaults
//
// The package ships defaults for the classes of package defaults: caller
// and user errors are client errors (400 / InvalidArgument), callee and
// system errors are internal, external errors are gateway failures.
// User authentication and external network problems get their own rules.
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a reason was
// resolved, including which tier matched and, for prefixes, which pattern
// was used. It is intended for inspection and logging, not for stable
// machine parsing.
//
// # Immutability
//
// All inputs are copied during New; a Mapper is safe to share across
// goroutines.
package mapper
