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

// Package operation composes several classified instances into one
// rendered error.
//
// An Operation holds an ordered list of components and a Registry of
// operation-level encoders that is independent of any namespace. Encoding an
// operation first encodes every component with the same encoding name, in
// construction order and with the composite flag forced on, then hands the
// collected values to the operation encoder:
//
//	reg := operation.NewRegistry()
//	reg.RegisterEncoders(map[name.Name]operation.Encoder{
//		"standard": operation.Join(" OR "),
//	})
//	op, err := reg.New(inst1, inst2)
//	out, err := op.EncodeAs("standard") // "<inst1> OR <inst2>"
//
// Components must be live instances (anything implementing
// derrclass.Encodable). Passing an already rendered error is rejected with
// derrclass.ErrCompositionMisuse.
package operation
