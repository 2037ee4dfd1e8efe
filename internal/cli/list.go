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
	"slices"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"dirpx.dev/derrclass"
	"dirpx.dev/derrclass/name"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List classes, types, severities and encoders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ns, err := a.namespace()
			if err != nil {
				return err
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(listRows(ns.Classes())).Srender()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), table)
			return err
		},
	}
}

// listRows renders one row per type, sorted by class then type.
func listRows(classes map[name.Name]derrclass.ClassData) [][]string {
	rows := [][]string{{"CLASS", "TYPE", "SEVERITIES", "PARAMS", "ENCODERS"}}
	for _, c := range sortedKeys(classes) {
		types := classes[c].Types
		for _, t := range sortedKeys(types) {
			td := types[t]
			params := make([]string, 0, len(td.Params))
			for _, p := range td.Params {
				s := p.Name
				if p.Optional {
					s += "?"
				}
				params = append(params, s)
			}
			rows = append(rows, []string{
				string(c),
				string(t),
				joinNames(td.Severities),
				strings.Join(params, ", "),
				joinNames(sortedKeys(td.Encoders)),
			})
		}
	}
	return rows
}

func sortedKeys[V any](m map[name.Name]V) []name.Name {
	keys := make([]name.Name, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func joinNames(ns []name.Name) string {
	s := make([]string, len(ns))
	for i, n := range ns {
		s[i] = string(n)
	}
	return strings.Join(s, ", ")
}
