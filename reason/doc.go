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

// Package reason defines the dotted identifier that pinpoints where an error
// instance sits in its taxonomy.
//
// Where a single name answers "which class?" or "which severity?", a Reason
// joins them into one machine-usable path:
//
//   - "user"
//   - "user.input"
//   - "user.input.warning"
//   - "external.network.critical"
//
// Rendered errors carry their full three-segment reason, and status mappers
// match on its prefixes. The zero value ("") is allowed and means "not
// classified", which is what operation-level renderings report.
package reason
