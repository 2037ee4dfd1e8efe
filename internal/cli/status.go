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

	"github.com/spf13/cobra"

	"dirpx.dev/derrclass/mapper"
	"dirpx.dev/derrclass/name"
	"dirpx.dev/derrclass/reason"
)

func newStatusCmd(a *app) *cobra.Command {
	var class, typ, severity string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the HTTP and gRPC statuses of a classification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := reason.Parse(string(reason.Of(name.Name(class), name.Name(typ), name.Name(severity))))
			if err != nil {
				return err
			}
			m, err := mapper.New()
			if err != nil {
				return err
			}
			a.log.V(1).Info("resolving status", "reason", r)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), m.Explain(r))
			return err
		},
	}
	cmd.Flags().StringVar(&class, "class", "", "error class")
	cmd.Flags().StringVar(&typ, "type", "", "error type")
	cmd.Flags().StringVar(&severity, "severity", "", "error severity")
	_ = cmd.MarkFlagRequired("class")
	return cmd
}
