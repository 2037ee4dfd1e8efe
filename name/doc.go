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

// Package name provides validation for the identifiers used throughout
// derrclass: error classes, error types, severities and encodings.
//
// A name is a single segment such as "user", "authentication", "warning" or
// "nonTechnical". Names are:
//
//   - case-sensitive (callers choose their own casing convention);
//   - ASCII only, starting with a letter;
//   - made of letters, digits, '_' and '-';
//   - free of '.', which is reserved as the segment separator of
//     dirpx.dev/derrclass/reason.
//
// IMPORTANT: Empty names ("") are NOT allowed anywhere a name is registered
// or looked up.
package name
