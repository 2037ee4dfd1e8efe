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

// Package derrclass classifies errors by a (class, type, severity) triple and
// renders them through named encoders instead of hard-coded messages.
//
// # Namespaces
//
// Every taxonomy lives in its own Namespace, created by New. Nothing is
// shared between namespaces, so a library can define its own classes without
// colliding with the application that imports it:
//
//	ns := derrclass.New()
//	_, err := ns.RegisterClasses(map[name.Name]derrclass.ClassData{
//	    "user": {Types: map[name.Name]derrclass.TypeData{
//	        "input": {
//	            Severities: []name.Name{"error", "warning"},
//	            Params:     []derrclass.ParamSpec{{Name: "inputName", Kind: derrclass.KindString}},
//	            Encoders: map[name.Name]derrclass.Encoder{
//	                "standard": func(c derrclass.Context, _ derrclass.CustomOptions) (any, error) {
//	                    return fmt.Sprintf("invalid user input '%v'", c.Params["inputName"]), nil
//	                },
//	            },
//	        },
//	    }},
//	})
//
// Registration is append/merge-only: classes are merged by name, types by
// name within a class, encoders by name within a type.
//
// # Instances
//
// An Instance is one concrete error event. NewInstance validates it against
// the namespace in a fixed order (class, type, severity, option shape,
// parameters) and fails on the first violation:
//
//	inst, err := ns.NewInstance("user", "input", "warning",
//	    derrclass.WithParam("inputName", "email"),
//	    derrclass.WithSolutions("check the address"),
//	)
//
// # Encoding
//
// EncodeAs resolves the encoder registered for the instance's (class, type)
// and invokes it. By default the encoder must return a string and the result
// is wrapped in a fresh *Rendered, which implements error. With
// WithAsErrorInstance(false) the encoder's value is returned untouched, so
// encoders may also produce structured forms.
//
// Failures are reported as wrapped sentinel errors (ErrSchemaViolation,
// ErrParameterViolation, ...) and are meant to be matched with errors.Is.
package derrclass
