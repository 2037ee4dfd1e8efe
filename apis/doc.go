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

// Package apis defines the small, transport-facing contracts shared by the
// derrclass adapters.
//
// The core package renders errors; this package describes what HTTP and
// gRPC layers need to know about a rendered error without importing the
// concrete carrier: its classification (class, type, severity), its dotted
// reason, a serialisable view, and a mapping from reasons to transport
// statuses.
//
// This package must remain lightweight, so it only contains interfaces and
// very small view types.
package apis
