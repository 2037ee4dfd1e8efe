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

package special

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dirpx.dev/derrclass"
	"dirpx.dev/derrclass/name"
)

func newTestClass(t *testing.T) *Class {
	t.Helper()
	c, err := New("testSpecial")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNew_SeedsSingleTriple(t *testing.T) {
	c := newTestClass(t)
	want := map[name.Name]derrclass.ClassData{
		"testSpecial": {Types: map[name.Name]derrclass.TypeData{
			"testSpecial": {Severities: []name.Name{"testSpecial"}},
		}},
	}
	if diff := cmp.Diff(want, c.Namespace().Classes()); diff != "" {
		t.Fatalf("seeded namespace mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_InvalidName(t *testing.T) {
	if _, err := New(""); !errors.Is(err, derrclass.ErrMalformedInput) {
		t.Fatalf("New(\"\") = %v, want ErrMalformedInput", err)
	}
}

func TestRegisterEncoders_Visible(t *testing.T) {
	c := newTestClass(t)
	if _, err := c.RegisterEncoders(map[name.Name]derrclass.Encoder{
		"testEncoding": func(derrclass.Context, derrclass.CustomOptions) (any, error) { return "This is a test.", nil },
	}); err != nil {
		t.Fatalf("RegisterEncoders: %v", err)
	}

	td, ok := c.Namespace().Lookup("testSpecial", "testSpecial")
	if !ok {
		t.Fatal("seeded type missing")
	}
	if _, ok := td.Encoders["testEncoding"]; !ok {
		t.Fatal("registered encoder not visible on the seeded type")
	}

	inst, err := c.New()
	if err != nil {
		t.Fatalf("New with no options: %v", err)
	}
	out, err := inst.EncodeAs("testEncoding")
	if err != nil {
		t.Fatalf("EncodeAs: %v", err)
	}
	if out.(*derrclass.Rendered).Error() != "This is a test." {
		t.Fatalf("EncodeAs = %v", out)
	}
	if inst.Unwrap().Reason() != "testSpecial.testSpecial.testSpecial" {
		t.Fatalf("Reason = %q", inst.Unwrap().Reason())
	}
}

func TestDefaultEncoding_Synced(t *testing.T) {
	c := newTestClass(t)
	if _, err := c.RegisterEncoders(map[name.Name]derrclass.Encoder{
		"x": func(derrclass.Context, derrclass.CustomOptions) (any, error) { return "X", nil },
	}); err != nil {
		t.Fatalf("RegisterEncoders: %v", err)
	}
	inst, err := c.New(derrclass.WithDetails("d"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := inst.EncodeAsDefault(); !errors.Is(err, derrclass.ErrEncoderMissing) {
		t.Fatalf("EncodeAsDefault before default = %v", err)
	}

	c.SetDefaultEncoding("x")
	if c.DefaultEncoding() != "x" || c.Namespace().DefaultEncoding() != "x" {
		t.Fatalf("default encoding out of sync: class=%q namespace=%q",
			c.DefaultEncoding(), c.Namespace().DefaultEncoding())
	}
	r, err := inst.Render(c.DefaultEncoding())
	if err != nil || r.Error() != "X" {
		t.Fatalf("Render = %v, %v", r, err)
	}
	if out, err := inst.EncodeAsDefault(); err != nil || out.(*derrclass.Rendered).Error() != "X" {
		t.Fatalf("EncodeAsDefault = %v, %v", out, err)
	}
}

func TestNew_RejectsParamsShape(t *testing.T) {
	c := newTestClass(t)
	if _, err := c.New(derrclass.WithSolutions()); !errors.Is(err, derrclass.ErrOptionShape) {
		t.Fatalf("New(empty solutions) = %v, want ErrOptionShape", err)
	}
}
