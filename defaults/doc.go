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

// Package defaults ships a ready-made error taxonomy.
//
// The taxonomy has five classes, each with a "generic" type and one or more
// specific types:
//
//	caller    generic, parameter
//	callee    generic, return
//	user      generic, input, authentication   (no critical severity)
//	external  generic, return, network
//	system    generic, permissions
//
// Severities are critical, error and warning. Every type implements the
// encodings short, numeric, full, nonTechnical, standard and verbose; the
// default encoding is standard.
//
// The package also configures operation registries for unions ("any of")
// and intersections ("all of"), and the generic and unknown special classes.
package defaults
