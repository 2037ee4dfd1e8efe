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

package defaults

import (
	"fmt"

	"dirpx.dev/derrclass/name"
)

// Encoding names used by the default taxonomy.
const (
	Short        name.Name = "short"
	Numeric      name.Name = "numeric"
	Full         name.Name = "full"
	NonTechnical name.Name = "nonTechnical"
	Standard     name.Name = "standard"
	Verbose      name.Name = "verbose"
)

// Severity names used by the default taxonomy.
const (
	Critical name.Name = "critical"
	Error    name.Name = "error"
	Warning  name.Name = "warning"
)

// ClassCode is the numeric code of a class and of each of its types.
type ClassCode struct {
	Code  int
	Types map[name.Name]int
}

// Codes maps a (class, type, severity) triple to its numeric form
// "<class><type>-<severity>", e.g. "101-1" for caller.parameter.error.
type Codes struct {
	Classes    map[name.Name]ClassCode
	Severities map[name.Name]int
}

// Lookup returns the numeric code of a triple.
func (c Codes) Lookup(class, typ, severity name.Name) (string, error) {
	cc, ok := c.Classes[class]
	if !ok {
		return "", fmt.Errorf("no numeric code has been specified for error class %q", class)
	}
	tc, ok := cc.Types[typ]
	if !ok {
		return "", fmt.Errorf("no numeric code has been specified for error type %q on class %q", typ, class)
	}
	sc, ok := c.Severities[severity]
	if !ok {
		return "", fmt.Errorf("no numeric code has been specified for severity %q", severity)
	}
	return fmt.Sprintf("%d%02d-%d", cc.Code, tc, sc), nil
}

// DefaultCodes returns the code table of the default taxonomy, including
// the generic and unknown special classes.
func DefaultCodes() Codes {
	return Codes{
		Classes: map[name.Name]ClassCode{
			"caller":   {Code: 1, Types: map[name.Name]int{"generic": 0, "parameter": 1}},
			"callee":   {Code: 2, Types: map[name.Name]int{"generic": 0, "return": 1}},
			"user":     {Code: 3, Types: map[name.Name]int{"generic": 0, "input": 1, "authentication": 2}},
			"external": {Code: 4, Types: map[name.Name]int{"generic": 0, "return": 1, "network": 2}},
			"system":   {Code: 5, Types: map[name.Name]int{"generic": 0, "permissions": 1}},
			Generic:    {Code: 8, Types: map[name.Name]int{Generic: 0}},
			Unknown:    {Code: 9, Types: map[name.Name]int{Unknown: 0}},
		},
		Severities: map[name.Name]int{
			Critical: 0,
			Error:    1,
			Warning:  2,
			// The special classes use their own name as severity.
			Generic: 1,
			Unknown: 1,
		},
	}
}

// Explanations holds a plain-language description per (class, type), handed
// to non-technical message callbacks.
type Explanations map[name.Name]map[name.Name]string

// Lookup returns the explanation of a (class, type).
func (e Explanations) Lookup(class, typ name.Name) (string, error) {
	types, ok := e[class]
	if !ok {
		return "", fmt.Errorf("no non-technical explanation has been specified for error class %q", class)
	}
	s, ok := types[typ]
	if !ok {
		return "", fmt.Errorf("no non-technical explanation has been specified for error type %q on class %q", typ, class)
	}
	return s, nil
}

// DefaultExplanations returns the explanations of the default taxonomy.
func DefaultExplanations() Explanations {
	return Explanations{
		"caller": {
			"generic":   "part of the program was used in a way it does not support",
			"parameter": "part of the program was given a value it cannot work with",
		},
		"callee": {
			"generic": "part of the program ran into a problem inside a component it relies on",
			"return":  "a component the program relies on gave back something unexpected",
		},
		"user": {
			"generic":        "something you did could not be handled",
			"input":          "something you entered is not valid",
			"authentication": "we could not confirm who you are",
		},
		"external": {
			"generic": "a service the program relies on ran into a problem",
			"return":  "a service the program relies on gave back something unexpected",
			"network": "the program could not reach a service over the network",
		},
		"system": {
			"generic":     "the computer running the program ran into a problem",
			"permissions": "the program is not allowed to access a file or folder it needs",
		},
		Generic: {Generic: "something went wrong"},
		Unknown: {Unknown: "something went wrong, and the cause is not known yet"},
	}
}
