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

package derrclass

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dirpx.dev/derrclass/name"
)

func newEncodingNamespace(t *testing.T, encoders map[name.Name]Encoder) *Namespace {
	t.Helper()
	ns := New()
	_, err := ns.RegisterClasses(map[name.Name]ClassData{
		"c": {Types: map[name.Name]TypeData{
			"t": {Severities: []name.Name{"s"}, Encoders: encoders},
		}},
	})
	mustOK(t, err)
	return ns
}

func mustInstance(t *testing.T, ns *Namespace, opts ...Option) *Instance {
	t.Helper()
	inst, err := ns.NewInstance("c", "t", "s", opts...)
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}
	return inst
}

func TestEncodeAs_Rendered(t *testing.T) {
	ns := newEncodingNamespace(t, map[name.Name]Encoder{"e": constEncoder("This is a test.")})
	inst := mustInstance(t, ns, WithParam("p", 1))

	out, err := inst.EncodeAs("e")
	if err != nil {
		t.Fatalf("EncodeAs: %v", err)
	}
	r, ok := out.(*Rendered)
	if !ok {
		t.Fatalf("EncodeAs returned %T, want *Rendered", out)
	}
	if r.Error() != "This is a test." {
		t.Fatalf("Error() = %q", r.Error())
	}
	if r.Reason != "c.t.s" || r.Encoding != "e" || r.ErrorClass() != "c" {
		t.Fatalf("unexpected classification: %+v", r)
	}
	if r.Options.Params["p"] != 1 {
		t.Fatalf("rendered options = %+v", r.Options)
	}

	var asErr error = r
	var target *Rendered
	if !errors.As(asErr, &target) {
		t.Fatal("Rendered must satisfy errors.As")
	}
}

func TestEncodeAs_FreshValuePerCall(t *testing.T) {
	ns := newEncodingNamespace(t, map[name.Name]Encoder{"e": constEncoder("x")})
	inst := mustInstance(t, ns)

	a, _ := inst.EncodeAs("e")
	b, _ := inst.EncodeAs("e")
	if a.(*Rendered) == b.(*Rendered) {
		t.Fatal("two EncodeAs calls returned the same carrier")
	}
	a.(*Rendered).Message = "mutated"
	if b.(*Rendered).Message != "x" {
		t.Fatal("carriers share state")
	}
}

func TestEncodeAs_RawValue(t *testing.T) {
	type payload struct{ N int }
	enc := func(ctx Context, _ CustomOptions) (any, error) {
		if ctx.StringReturn {
			return "as string", nil
		}
		return payload{N: 7}, nil
	}
	ns := newEncodingNamespace(t, map[name.Name]Encoder{"e": enc})
	inst := mustInstance(t, ns)

	out, err := inst.EncodeAs("e", WithAsErrorInstance(false))
	if err != nil {
		t.Fatalf("EncodeAs: %v", err)
	}
	if diff := cmp.Diff(payload{N: 7}, out); diff != "" {
		t.Fatalf("raw value mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeAs_Composite(t *testing.T) {
	ns := newEncodingNamespace(t, map[name.Name]Encoder{"e": constEncoder("S")})
	inst := mustInstance(t, ns)

	out, err := inst.EncodeAs("e", WithComposite(true))
	if err != nil {
		t.Fatalf("EncodeAs: %v", err)
	}
	if s, ok := out.(string); !ok || s != "S" {
		t.Fatalf("composite EncodeAs = %#v, want \"S\"", out)
	}
}

func TestEncodeAs_Errors(t *testing.T) {
	boom := errors.New("boom")
	ns := newEncodingNamespace(t, map[name.Name]Encoder{
		"number": func(Context, CustomOptions) (any, error) { return 42, nil },
		"fails":  func(Context, CustomOptions) (any, error) { return nil, boom },
	})
	inst := mustInstance(t, ns)

	tests := []struct {
		name     string
		encoding name.Name
		opts     []EncodeOption
		want     error
	}{
		{"missing encoder", "nope", nil, ErrEncoderMissing},
		{"non-string as error instance", "number", nil, ErrEncoderContract},
		{"non-string composite", "number", []EncodeOption{WithComposite(true)}, ErrEncoderContract},
		{"encoder error propagates", "fails", nil, boom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := inst.EncodeAs(tt.encoding, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("EncodeAs = %v, %v; want %v", out, err, tt.want)
			}
		})
	}

	out, err := inst.EncodeAs("number", WithAsErrorInstance(false))
	if err != nil || out != 42 {
		t.Fatalf("raw non-string = %v, %v", out, err)
	}
}

func TestEncodeAs_ContextAndCustom(t *testing.T) {
	var got Context
	var gotCustom CustomOptions
	enc := func(ctx Context, custom CustomOptions) (any, error) {
		got, gotCustom = ctx, custom
		return "ok", nil
	}
	ns := newEncodingNamespace(t, map[name.Name]Encoder{"e": enc})
	inst := mustInstance(t, ns,
		WithParam("p", "v"),
		WithSolutions("a", "b"),
		WithFallback("fb"),
		WithDetails("dt"),
	)

	_, err := inst.EncodeAs("e", WithCustom("k", 1), WithCustomOptions(map[string]any{"m": "n"}))
	if err != nil {
		t.Fatalf("EncodeAs: %v", err)
	}

	want := Context{
		Class: "c", Type: "t", Severity: "s",
		Params:    map[string]any{"p": "v"},
		Solutions: []string{"a", "b"},
		Fallback:  "fb",
		Details:   "dt",
		Options: ErrorOptions{
			Params:    map[string]any{"p": "v"},
			Solutions: []string{"a", "b"},
			Fallback:  "fb",
			Details:   "dt",
		},
		StringReturn: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("context mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(CustomOptions{"k": 1, "m": "n"}, gotCustom); diff != "" {
		t.Fatalf("custom mismatch (-want +got):\n%s", diff)
	}

	// Encoders must not be able to reach the instance's state.
	got.Params["p"] = "mutated"
	if inst.Options().Params["p"] != "v" {
		t.Fatal("encoder mutated instance params")
	}
}

func TestEncodeAsDefault(t *testing.T) {
	ns := newEncodingNamespace(t, map[name.Name]Encoder{"e": constEncoder("default")})
	inst := mustInstance(t, ns)

	if _, err := inst.EncodeAsDefault(); !errors.Is(err, ErrEncoderMissing) {
		t.Fatalf("EncodeAsDefault before SetDefaultEncoding = %v, want ErrEncoderMissing", err)
	}

	ns.SetDefaultEncoding("e")
	out, err := inst.EncodeAsDefault()
	if err != nil {
		t.Fatalf("EncodeAsDefault: %v", err)
	}
	if out.(*Rendered).Error() != "default" {
		t.Fatalf("EncodeAsDefault = %v", out)
	}
}

func TestRender(t *testing.T) {
	ns := newEncodingNamespace(t, map[name.Name]Encoder{"e": constEncoder("r")})
	inst := mustInstance(t, ns)

	r, err := inst.Render("e", WithComposite(true), WithAsErrorInstance(false))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if r.Message != "r" || r.Encoding != "e" {
		t.Fatalf("Render = %+v", r)
	}
}

func TestRender_DoesNotWriteCallerOptions(t *testing.T) {
	ns := newEncodingNamespace(t, map[name.Name]Encoder{"e": constEncoder("r")})
	inst := mustInstance(t, ns)

	opts := make([]EncodeOption, 1, 4)
	opts[0] = WithCustom("k", "v")
	if _, err := inst.Render("e", opts...); err != nil {
		t.Fatalf("Render: %v", err)
	}
	spare := opts[:cap(opts)]
	if spare[1] != nil || spare[2] != nil {
		t.Fatal("Render appended into the caller's options slice")
	}
}

func TestEncodeAs_Concurrent(t *testing.T) {
	ns := newEncodingNamespace(t, map[name.Name]Encoder{
		"e": func(ctx Context, _ CustomOptions) (any, error) {
			return strings.ToUpper(ctx.Params["p"].(string)), nil
		},
	})
	inst := mustInstance(t, ns, WithParam("p", "x"))

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for range 16 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			out, err := inst.EncodeAs("e")
			if err == nil && out.(*Rendered).Message != "X" {
				err = errors.New("unexpected message " + out.(*Rendered).Message)
			}
			if err != nil {
				errs <- err
			}
		}()
		go func() {
			defer wg.Done()
			_, err := ns.RegisterEncodersOnTypes(EncodersRegistration{
				Class: "c", Types: []name.Name{"t"},
				Encoders: map[name.Name]Encoder{"other": constEncoder("o")},
			})
			if err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
