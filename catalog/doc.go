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

// Package catalog loads error taxonomies from YAML.
//
// A catalog declares classes, types, severities, parameters, numeric codes
// and message templates:
//
//	defaultEncoding: standard
//	includeDefaults: true
//	severities: {critical: 0, error: 1, warning: 2}
//	classes:
//	  storage:
//	    code: 6
//	    types:
//	      quota:
//	        code: 1
//	        severities: [error, warning]
//	        params:
//	          - bucket                  # shorthand: required, any kind
//	          - name: limit
//	            type: number
//	            required: false
//	        explanation: you are out of storage space
//	        messages:
//	          standard: "quota exceeded on bucket '{{.Params.bucket}}'"
//
// Messages are text/template templates executed against a
// derrclass.Context. Every type gets the universal encoders of package
// defaults plus standard and verbose encoders built from its templates.
package catalog
