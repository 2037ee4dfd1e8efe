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
	"dirpx.dev/derrclass"
	"dirpx.dev/derrclass/name"
	"dirpx.dev/derrclass/operation"
)

// ApplyUnion configures r as a union: the error could be any one of its
// components.
func ApplyUnion(r *operation.Registry) (*operation.Registry, error) {
	return applyOperation(r, "|", " | ", " OR ",
		"UnionError (the error could be any one of the following):\n", "\n--- OR ---\n")
}

// ApplyIntersection configures r as an intersection: the error qualifies
// as all of its components at once.
func ApplyIntersection(r *operation.Registry) (*operation.Registry, error) {
	return applyOperation(r, "&", " & ", " AND ",
		"IntersectionError (the error qualifies as all of the following simultaneously):\n", "\n--- AND ---\n")
}

// NewUnion returns a registry configured with ApplyUnion.
func NewUnion(opts ...operation.RegistryOption) *operation.Registry {
	return mustOperation(ApplyUnion(operation.NewRegistry(opts...)))
}

// NewIntersection returns a registry configured with ApplyIntersection.
func NewIntersection(opts ...operation.RegistryOption) *operation.Registry {
	return mustOperation(ApplyIntersection(operation.NewRegistry(opts...)))
}

func applyOperation(r *operation.Registry, full, short, standard, verboseHeader, verboseSep string) (*operation.Registry, error) {
	_, err := r.RegisterEncoders(map[name.Name]operation.Encoder{
		Full:     operation.Join(full),
		Short:    operation.Join(short),
		Numeric:  operation.Join(short),
		Standard: operation.Join(standard),
		Verbose:  operation.JoinWith(verboseHeader, verboseSep),
		NonTechnical: func(in operation.Input, custom derrclass.CustomOptions) (any, error) {
			create, err := operationMessageFunc(custom)
			if err != nil {
				return nil, err
			}
			return create(in.Encodings), nil
		},
	})
	if err != nil {
		return r, err
	}
	return r.SetDefaultEncoding(Standard), nil
}

func mustOperation(r *operation.Registry, err error) *operation.Registry {
	if err != nil {
		panic(err)
	}
	return r
}
