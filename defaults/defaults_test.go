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
	"errors"
	"regexp"
	"testing"

	"dirpx.dev/derrclass"
	"dirpx.dev/derrclass/name"
	"dirpx.dev/derrclass/operation"
	"dirpx.dev/derrclass/special"
)

var encodingPatterns = map[name.Name]*regexp.Regexp{
	Standard:     regexp.MustCompile(`^[A-Z][a-z]+[A-Z][a-z]+[A-Z][a-z]+: .+`),
	Verbose:      regexp.MustCompile(`^[A-Z][a-z]+[A-Z][a-z]+[A-Z][a-z]+:\n.+`),
	Numeric:      regexp.MustCompile(`^[0-9]{3}-[0-2]$`),
	Short:        regexp.MustCompile(`^[A-Z][a-z]+[A-Z][a-z]+[A-Z][a-z]+$`),
	Full:         regexp.MustCompile(`^[A-Z][a-z]+[A-Z][a-z]+[A-Z][a-z]+\(\{.+\}\)$`),
	NonTechnical: regexp.MustCompile(`^Non-technical\.$`),
}

// fixtures holds valid parameters for every specific type.
var fixtures = map[name.Name]map[name.Name]map[string]any{
	"caller": {
		"parameter": {"invalidParam": "string", "validityPrereqs": []string{"array"}},
	},
	"callee": {
		"return": {"componentName": "string", "invalidPart": "string", "validityPrereqs": []string{"array"}},
	},
	"user": {
		"input":          {"inputName": "string", "validityPrereqs": []string{"array"}},
		"authentication": {"inputName": "string"},
	},
	"external": {
		"network": {"resourceName": "string"},
		"return":  {"resourceName": "string", "invalidPart": "string", "validityPrereqs": []string{"array"}},
	},
	"system": {
		"permissions": {
			"problemFileOrDir":     "string",
			"neededPermissions":    []string{"array"},
			"missingPermissions":   []string{"array"},
			"whyPermissionsNeeded": []string{"array"},
		},
	},
}

var nonTechnical = derrclass.WithCustom(CreateMessage, MessageFunc(func(NonTechnicalInput) string {
	return "Non-technical."
}))

func TestCore_EveryTripleMatchesPatterns(t *testing.T) {
	ns := NewNamespace()
	for class, cd := range ns.Classes() {
		for typ, td := range cd.Types {
			for _, sev := range td.Severities {
				t.Run(string(class)+"."+string(typ)+"."+string(sev), func(t *testing.T) {
					params := fixtures[class][typ]
					if typ == "generic" {
						// full needs a non-empty options object.
						params = map[string]any{"note": "generic"}
					}
					inst, err := ns.NewInstance(class, typ, sev, derrclass.WithParams(params))
					if err != nil {
						t.Fatalf("NewInstance: %v", err)
					}
					for enc, re := range encodingPatterns {
						raw, err := inst.EncodeAs(enc, derrclass.WithAsErrorInstance(false), nonTechnical)
						if err != nil {
							t.Fatalf("EncodeAs(%s): %v", enc, err)
						}
						s, ok := raw.(string)
						if !ok || !re.MatchString(s) {
							t.Errorf("EncodeAs(%s) = %q, want match for %s", enc, raw, re)
						}
						r, err := inst.Render(enc, nonTechnical)
						if err != nil || r.Error() != s {
							t.Errorf("Render(%s) = %v, %v", enc, r, err)
						}
					}
					def, err := inst.EncodeAsDefault(derrclass.WithAsErrorInstance(false))
					if err != nil || !encodingPatterns[Standard].MatchString(def.(string)) {
						t.Errorf("EncodeAsDefault = %v, %v", def, err)
					}
				})
			}
		}
	}
}

func TestCore_UserHasNoCritical(t *testing.T) {
	ns := NewNamespace()
	_, err := ns.NewInstance("user", "generic", Critical)
	if !errors.Is(err, derrclass.ErrSchemaViolation) {
		t.Fatalf("user.generic.critical = %v, want ErrSchemaViolation", err)
	}
}

func TestCore_ExactEncodings(t *testing.T) {
	ns := NewNamespace()
	inst, err := ns.NewInstance("caller", "parameter", Error,
		derrclass.WithParams(map[string]any{"invalidParam": "limit", "validityPrereqs": []string{"positive", "below 100"}}),
		derrclass.WithSolutions("pass 10"),
		derrclass.WithFallback("using 50"),
	)
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}

	tests := []struct {
		enc  name.Name
		want string
	}{
		{Short, "CallerParameterError"},
		{Numeric, "101-1"},
		{Standard, "CallerParameterError: invalid parameter 'limit'"},
		{Full, `CallerParameterError({"params":{"invalidParam":"limit","validityPrereqs":["positive","below 100"]},"solutions":["pass 10"],"fallback":"using 50"})`},
		{Verbose, "CallerParameterError:\n" +
			"\tThe value of the parameter 'limit' is invalid. For it to be accepted, it must meet the following criteria:\n\t\t• positive\n\t\t• below 100\n" +
			"\tTo try to work around the problem, this program will now run fallback logic:\n\t\tusing 50\n" +
			"\tNo further details are available about this problem.\n" +
			"\tPossible solutions to this problem are: \n\t\t• pass 10"},
	}
	for _, tt := range tests {
		t.Run(string(tt.enc), func(t *testing.T) {
			r, err := inst.Render(tt.enc)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if r.Error() != tt.want {
				t.Fatalf("Render(%s):\n got %q\nwant %q", tt.enc, r.Error(), tt.want)
			}
		})
	}
}

func TestCore_Permissions(t *testing.T) {
	ns := NewNamespace()
	inst, err := ns.NewInstance("system", "permissions", Warning, derrclass.WithParams(map[string]any{
		"problemFileOrDir":   "/etc/app",
		"neededPermissions":  []any{"read", "write"},
		"missingPermissions": []string{"write"},
	}))
	if err != nil {
		t.Fatalf("NewInstance without optional param: %v", err)
	}
	r, err := inst.Render(Standard)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := "SystemPermissionsWarning: missing permissions (write) to interface with file/directory '/etc/app'"; r.Error() != want {
		t.Fatalf("got %q, want %q", r.Error(), want)
	}
}

func TestNonTechnical(t *testing.T) {
	ns := NewNamespace()
	inst, err := ns.NewInstance("external", "network", Critical, derrclass.WithParam("resourceName", "db"))
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}

	var got NonTechnicalInput
	out, err := inst.EncodeAs(NonTechnical, derrclass.WithCustom(CreateMessage, func(in NonTechnicalInput) string {
		got = in
		return in.TypeExplanation
	}))
	if err != nil {
		t.Fatalf("EncodeAs: %v", err)
	}
	want := NonTechnicalInput{
		Numeric:         "402-0",
		Short:           "ExternalNetworkCritical",
		TypeExplanation: DefaultExplanations()["external"]["network"],
	}
	if got != want {
		t.Fatalf("callback input = %+v, want %+v", got, want)
	}
	if out.(*derrclass.Rendered).Error() != want.TypeExplanation {
		t.Fatalf("EncodeAs = %v", out)
	}

	if _, err := inst.EncodeAs(NonTechnical); !errors.Is(err, ErrMissingMessageFunc) {
		t.Fatalf("EncodeAs without createMessage = %v, want ErrMissingMessageFunc", err)
	}
	if _, err := inst.EncodeAs(NonTechnical, derrclass.WithCustom(CreateMessage, "nope")); !errors.Is(err, ErrMissingMessageFunc) {
		t.Fatalf("EncodeAs with bad createMessage = %v, want ErrMissingMessageFunc", err)
	}
}

func TestShortForm(t *testing.T) {
	tests := []struct {
		class, typ, severity name.Name
		want                 string
	}{
		{"caller", "parameter", Error, "CallerParameterError"},
		{"user", "input", Warning, "UserInputWarning"},
		{"my-class", "disk_full", "warning", "My-classDisk_fullWarning"},
		{"io", "nonTechnical", "Critical", "IoNonTechnicalCritical"},
	}
	for _, tt := range tests {
		if got := ShortForm(tt.class, tt.typ, tt.severity); got != tt.want {
			t.Errorf("ShortForm(%q, %q, %q) = %q, want %q", tt.class, tt.typ, tt.severity, got, tt.want)
		}
	}
}

func TestCodes_Lookup(t *testing.T) {
	codes := DefaultCodes()
	if _, err := codes.Lookup("nope", "generic", Error); err == nil {
		t.Fatal("unknown class must fail")
	}
	if _, err := codes.Lookup("caller", "nope", Error); err == nil {
		t.Fatal("unknown type must fail")
	}
	if _, err := codes.Lookup("caller", "generic", "nope"); err == nil {
		t.Fatal("unknown severity must fail")
	}
	if got, err := codes.Lookup("user", "authentication", Warning); err != nil || got != "302-2" {
		t.Fatalf("Lookup = %q, %v", got, err)
	}
}

func TestOperations(t *testing.T) {
	ns := NewNamespace()
	a, err := ns.NewInstance("caller", "parameter", Error, derrclass.WithParams(map[string]any{
		"invalidParam": "test", "validityPrereqs": []string{"test"},
	}))
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}
	b, err := ns.NewInstance("user", "generic", Warning)
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}

	tests := []struct {
		name string
		reg  *operation.Registry
		want map[name.Name]string
	}{
		{"union", NewUnion(), map[name.Name]string{
			Full:     "CallerParameterError({\"params\":{\"invalidParam\":\"test\",\"validityPrereqs\":[\"test\"]}})|UserGenericWarning({})",
			Short:    "CallerParameterError | UserGenericWarning",
			Numeric:  "101-1 | 300-2",
			Standard: "CallerParameterError: invalid parameter 'test' OR UserGenericWarning: generic user problem",
		}},
		{"intersection", NewIntersection(), map[name.Name]string{
			Short:    "CallerParameterError & UserGenericWarning",
			Numeric:  "101-1 & 300-2",
			Standard: "CallerParameterError: invalid parameter 'test' AND UserGenericWarning: generic user problem",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := tt.reg.New(a, b)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			for enc, want := range tt.want {
				r, err := op.Render(enc)
				if err != nil {
					t.Fatalf("Render(%s): %v", enc, err)
				}
				if r.Error() != want {
					t.Errorf("Render(%s) = %q, want %q", enc, r.Error(), want)
				}
			}
			def, err := op.EncodeAsDefault()
			if err != nil || def.(*derrclass.Rendered).Error() != tt.want[Standard] {
				t.Errorf("EncodeAsDefault = %v, %v", def, err)
			}

			verbose, err := op.Render(Verbose)
			if err != nil {
				t.Fatalf("Render(verbose): %v", err)
			}
			if !regexp.MustCompile(`^(Union|Intersection)Error \(`).MatchString(verbose.Error()) {
				t.Errorf("verbose header missing: %q", verbose.Error())
			}

			out, err := op.EncodeAs(NonTechnical,
				operation.WithComponentOptions(map[string]any{CreateMessage: MessageFunc(func(in NonTechnicalInput) string { return in.Numeric })}),
				operation.WithOperationOptions(map[string]any{CreateMessage: OperationMessageFunc(func(enc []any) string {
					return "Test"
				})}),
			)
			if err != nil || out.(*derrclass.Rendered).Error() != "Test" {
				t.Errorf("nonTechnical = %v, %v", out, err)
			}
			if _, err := op.EncodeAs(NonTechnical,
				operation.WithComponentOptions(map[string]any{CreateMessage: MessageFunc(func(NonTechnicalInput) string { return "x" })}),
			); !errors.Is(err, ErrMissingMessageFunc) {
				t.Errorf("nonTechnical without operation callback = %v", err)
			}
		})
	}
}

func TestSpecialClasses(t *testing.T) {
	for _, c := range []struct {
		name     name.Name
		newClass func(...derrclass.NamespaceOption) *special.Class
		standard string
	}{
		{Generic, NewGeneric, "GenericGenericGeneric: generic program problem"},
		{Unknown, NewUnknown, "UnknownUnknownUnknown: unknown program problem"},
	} {
		t.Run(string(c.name), func(t *testing.T) {
			cls := c.newClass()
			inst, err := cls.New()
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			for enc := range encodingPatterns {
				raw, err := inst.EncodeAs(enc, derrclass.WithAsErrorInstance(false), nonTechnical)
				if err != nil {
					t.Fatalf("EncodeAs(%s): %v", enc, err)
				}
				if _, ok := raw.(string); !ok {
					t.Errorf("EncodeAs(%s) returned %T", enc, raw)
				}
			}
			def, err := inst.EncodeAsDefault(derrclass.WithAsErrorInstance(false))
			if err != nil || def != c.standard {
				t.Fatalf("EncodeAsDefault = %v, %v; want %q", def, err, c.standard)
			}
			if cls.DefaultEncoding() != Standard || cls.Namespace().DefaultEncoding() != Standard {
				t.Fatal("default encoding not synced")
			}
		})
	}
}
