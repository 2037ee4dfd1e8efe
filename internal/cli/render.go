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

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"dirpx.dev/derrclass"
	"dirpx.dev/derrclass/name"
)

type renderFlags struct {
	class, typ, severity string
	params               []string
	solutions            []string
	fallback, details    string
	raw                  bool
}

func newRenderCmd(a *app) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build an error instance and print its encoding",
		Example: `  derrclass render --class user --type input --severity error \
      --param inputName=email --param 'validityPrereqs=[non-empty, contains @]'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ns, err := a.namespace()
			if err != nil {
				return err
			}
			opts, err := f.options()
			if err != nil {
				return err
			}
			inst, err := ns.NewInstance(name.Name(f.class), name.Name(f.typ), name.Name(f.severity), opts...)
			if err != nil {
				return err
			}
			out, err := inst.EncodeAsDefault(derrclass.WithAsErrorInstance(!f.raw))
			if err != nil {
				return err
			}
			a.log.V(1).Info("rendered", "reason", inst.Reason(), "encoding", ns.DefaultEncoding())
			if e, ok := out.(error); ok {
				out = e.Error()
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.class, "class", "", "error class")
	fl.StringVar(&f.typ, "type", "", "error type")
	fl.StringVar(&f.severity, "severity", "", "error severity")
	fl.StringArrayVar(&f.params, "param", nil, "parameter as key=value; the value is parsed as YAML")
	fl.StringArrayVar(&f.solutions, "solution", nil, "proposed solution (repeatable)")
	fl.StringVar(&f.fallback, "fallback", "", "fallback being taken")
	fl.StringVar(&f.details, "details", "", "free-form details")
	fl.BoolVar(&f.raw, "raw", false, "print the encoder output as-is instead of an error value")
	for _, req := range []string{"class", "type", "severity"} {
		_ = cmd.MarkFlagRequired(req)
	}
	return cmd
}

func (f *renderFlags) options() ([]derrclass.Option, error) {
	var opts []derrclass.Option
	for _, kv := range f.params {
		k, v, err := parseParam(kv)
		if err != nil {
			return nil, err
		}
		opts = append(opts, derrclass.WithParam(k, v))
	}
	if len(f.solutions) > 0 {
		opts = append(opts, derrclass.WithSolutions(f.solutions...))
	}
	if f.fallback != "" {
		opts = append(opts, derrclass.WithFallback(f.fallback))
	}
	if f.details != "" {
		opts = append(opts, derrclass.WithDetails(f.details))
	}
	return opts, nil
}

// parseParam splits "key=value" and decodes value as a YAML scalar or
// collection. An empty value is the empty string.
func parseParam(kv string) (string, any, error) {
	k, raw, ok := strings.Cut(kv, "=")
	k = strings.TrimSpace(k)
	if !ok || k == "" {
		return "", nil, fmt.Errorf("invalid --param %q: want key=value", kv)
	}
	if strings.TrimSpace(raw) == "" {
		return k, "", nil
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return "", nil, fmt.Errorf("invalid --param %q: %w", kv, err)
	}
	return k, v, nil
}
