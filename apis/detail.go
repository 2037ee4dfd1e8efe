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

// Detail kinds emitted by the adapters.
const (
	DetailParam    = "param"
	DetailSolution = "solution"
	DetailFallback = "fallback"
	DetailDetails  = "details"
)

// Detail is a single structured piece of information attached to an error
// view: one parameter, one proposed solution, the fallback being run, or
// free-form details.
type Detail struct {
	// Type is one of the Detail* constants.
	Type string `json:"type"`

	// Field names the parameter for DetailParam details. Empty otherwise.
	Field string `json:"field,omitempty"`

	// Value is the textual value of the detail.
	Value string `json:"value"`
}
