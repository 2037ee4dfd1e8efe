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
	"strings"

	"dirpx.dev/derrclass"
	"dirpx.dev/derrclass/name"
)

var (
	allSeverities  = []name.Name{Critical, Error, Warning}
	userSeverities = []name.Name{Error, Warning}
)

// constant returns a MessageCreator that ignores the context.
func constant(s string) MessageCreator {
	return func(derrclass.Context) string { return s }
}

// Classes returns the default taxonomy as a RegisterClasses payload.
func Classes() map[name.Name]derrclass.ClassData {
	codes, expl := DefaultCodes(), DefaultExplanations()
	enc := func(standard, verbose MessageCreator) map[name.Name]derrclass.Encoder {
		return TypeEncoders(codes, expl, standard, verbose)
	}
	str := func(n string) derrclass.ParamSpec {
		return derrclass.ParamSpec{Name: n, Kind: derrclass.KindString}
	}
	obj := func(n string) derrclass.ParamSpec {
		return derrclass.ParamSpec{Name: n, Kind: derrclass.KindObject}
	}

	return map[name.Name]derrclass.ClassData{
		"caller": {Types: map[name.Name]derrclass.TypeData{
			"generic": {
				Severities: allSeverities,
				Params:     []derrclass.ParamSpec{},
				Encoders: enc(
					constant("generic problem from function caller"),
					constant("A generic problem occurred, caused by the caller of this function. Further details may be available below."),
				),
			},
			"parameter": {
				Severities: allSeverities,
				Params:     []derrclass.ParamSpec{str("invalidParam"), obj("validityPrereqs")},
				Encoders: enc(
					func(ctx derrclass.Context) string {
						return "invalid parameter '" + param(ctx, "invalidParam") + "'"
					},
					func(ctx derrclass.Context) string {
						return "The value of the parameter '" + param(ctx, "invalidParam") +
							"' is invalid. For it to be accepted, it must meet the following criteria:" + bullets(ctx, "validityPrereqs")
					},
				),
			},
		}},
		"callee": {Types: map[name.Name]derrclass.TypeData{
			"generic": {
				Severities: allSeverities,
				Params:     []derrclass.ParamSpec{},
				Encoders: enc(
					constant("generic problem from called function"),
					constant("A generic problem occurred, caused by an internal function this function depends on. Further details may be available below."),
				),
			},
			"return": {
				Severities: allSeverities,
				Params:     []derrclass.ParamSpec{str("invalidPart"), obj("validityPrereqs"), str("componentName")},
				Encoders: enc(
					func(ctx derrclass.Context) string {
						return "invalid component '" + param(ctx, "invalidPart") + "' returned from '" + param(ctx, "componentName") + "'"
					},
					func(ctx derrclass.Context) string {
						return "A function this program depends on, '" + param(ctx, "componentName") +
							"', returned an invalid value for one of its return parameters, '" + param(ctx, "invalidPart") +
							"'. To be valid, it needs to meet the following criteria:" + bullets(ctx, "validityPrereqs")
					},
				),
			},
		}},
		// User errors are never critical; the program is expected to handle
		// them gracefully.
		"user": {Types: map[name.Name]derrclass.TypeData{
			"generic": {
				Severities: userSeverities,
				Params:     []derrclass.ParamSpec{},
				Encoders: enc(
					constant("generic user problem"),
					constant("A generic problem occurred, caused by some action the user took. Further details may be available below."),
				),
			},
			"input": {
				Severities: userSeverities,
				Params:     []derrclass.ParamSpec{str("inputName"), obj("validityPrereqs")},
				Encoders: enc(
					func(ctx derrclass.Context) string {
						return "invalid user input '" + param(ctx, "inputName") + "'"
					},
					func(ctx derrclass.Context) string {
						return "The user inputted invalid data in the input '" + param(ctx, "inputName") +
							"'. To be valid, it needs to meet the following criteria:" + bullets(ctx, "validityPrereqs")
					},
				),
			},
			"authentication": {
				Severities: userSeverities,
				Params:     []derrclass.ParamSpec{str("inputName")},
				Encoders: enc(
					func(ctx derrclass.Context) string {
						return "authentication problem from user input '" + param(ctx, "inputName") + "'"
					},
					func(ctx derrclass.Context) string {
						return "The user inputted data in the input '" + param(ctx, "inputName") +
							"' that caused an authentication problem. This probably means the user got their password wrong or the like."
					},
				),
			},
		}},
		"external": {Types: map[name.Name]derrclass.TypeData{
			"generic": {
				Severities: allSeverities,
				Params:     []derrclass.ParamSpec{},
				Encoders: enc(
					constant("generic problem from external resource"),
					constant("A generic problem occurred, caused by an external resource this function depends on. Further details may be available below."),
				),
			},
			"return": {
				Severities: allSeverities,
				Params:     []derrclass.ParamSpec{str("invalidPart"), obj("validityPrereqs"), str("resourceName")},
				Encoders: enc(
					func(ctx derrclass.Context) string {
						return "invalid component '" + param(ctx, "invalidPart") + "' returned from '" + param(ctx, "resourceName") + "'"
					},
					func(ctx derrclass.Context) string {
						return "An external resource this program depends on, '" + param(ctx, "resourceName") +
							"', returned an invalid value for one of its return parameters, '" + param(ctx, "invalidPart") +
							"'. To be valid, it needs to meet the following criteria:" + bullets(ctx, "validityPrereqs")
					},
				),
			},
			"network": {
				Severities: allSeverities,
				Params:     []derrclass.ParamSpec{str("resourceName")},
				Encoders: enc(
					func(ctx derrclass.Context) string {
						return "network problem while trying to connect to '" + param(ctx, "resourceName") + "'"
					},
					func(ctx derrclass.Context) string {
						return "The program tried to connect to the external resource '" + param(ctx, "resourceName") +
							"' over the network, but some kind of network error occurred. Further details may be available below."
					},
				),
			},
		}},
		"system": {Types: map[name.Name]derrclass.TypeData{
			"generic": {
				Severities: allSeverities,
				Params:     []derrclass.ParamSpec{},
				Encoders: enc(
					constant("generic system-level problem"),
					constant("A generic system problem occurred. Further details may be available below."),
				),
			},
			"permissions": {
				Severities: allSeverities,
				Params: []derrclass.ParamSpec{
					str("problemFileOrDir"),
					obj("neededPermissions"),
					obj("missingPermissions"),
					{Name: "whyPermissionsNeeded", Optional: true, Kind: derrclass.KindObject},
				},
				Encoders: enc(
					func(ctx derrclass.Context) string {
						return "missing permissions (" + strings.Join(list(ctx, "missingPermissions"), ", ") +
							") to interface with file/directory '" + param(ctx, "problemFileOrDir") + "'"
					},
					func(ctx derrclass.Context) string {
						return "The program tried to interface with the file/directory '" + param(ctx, "problemFileOrDir") +
							"', and to do so the following permissions are needed: " + bullets(ctx, "neededPermissions") +
							"\n\tHowever, the following permissions are missing: " + bullets(ctx, "missingPermissions")
					},
				),
			},
		}},
	}
}

// ApplyCore registers the default taxonomy on ns and sets its default
// encoding to standard.
func ApplyCore(ns *derrclass.Namespace) (*derrclass.Namespace, error) {
	if _, err := ns.RegisterClasses(Classes()); err != nil {
		return ns, err
	}
	return ns.SetDefaultEncoding(Standard), nil
}

// NewNamespace returns a fresh namespace holding the default taxonomy.
func NewNamespace(opts ...derrclass.NamespaceOption) *derrclass.Namespace {
	ns, err := ApplyCore(derrclass.New(opts...))
	if err != nil {
		// The default payload is static; failing here is a bug in this package.
		panic(err)
	}
	return ns
}
