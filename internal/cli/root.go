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
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"dirpx.dev/derrclass"
	"dirpx.dev/derrclass/catalog"
	"dirpx.dev/derrclass/defaults"
	"dirpx.dev/derrclass/name"
)

// app holds what every subcommand needs.
type app struct {
	catalog  string
	encoding string
	log      logr.Logger
}

// NewRootCmd builds the derrclass command tree. cfg supplies flag defaults.
func NewRootCmd(cfg Config, log logr.Logger) *cobra.Command {
	a := &app{log: log}
	cmd := &cobra.Command{
		Use:   "derrclass",
		Short: "Inspect error taxonomies and render classified errors",
		Long: `derrclass works on an error taxonomy: classes, types within a class,
and severities within a type. Without --catalog the built-in taxonomy
(caller, callee, user, external, system) is used.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&a.catalog, "catalog", cfg.Catalog, "YAML catalog file (env "+EnvCatalog+")")
	cmd.PersistentFlags().StringVar(&a.encoding, "encoding", cfg.Encoding, "encoding to render with (env "+EnvEncoding+")")

	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newStatusCmd(a))
	return cmd
}

// namespace returns the namespace of the configured catalog.
func (a *app) namespace() (*derrclass.Namespace, error) {
	opts := []derrclass.NamespaceOption{derrclass.WithLogger(a.log)}
	var ns *derrclass.Namespace
	if a.catalog == "" {
		ns = defaults.NewNamespace(opts...)
	} else {
		c, err := catalog.Load(a.catalog)
		if err != nil {
			return nil, err
		}
		if ns, err = c.Namespace(opts...); err != nil {
			return nil, err
		}
		a.log.V(1).Info("catalog loaded", "path", a.catalog, "classes", len(c.Classes))
	}
	if a.encoding != "" {
		enc, err := name.Parse(a.encoding)
		if err != nil {
			return nil, err
		}
		ns.SetDefaultEncoding(enc)
	}
	return ns, nil
}
