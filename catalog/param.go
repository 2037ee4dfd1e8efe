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

package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"dirpx.dev/derrclass"
)

// Param is a parameter declaration. In YAML it is either a bare name
// (required, any kind) or a mapping with name, type and required.
type Param struct {
	Name     string
	Kind     derrclass.ParamKind
	Required bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Param) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		*p = Param{Name: n.Value, Required: true}
		return nil
	case yaml.MappingNode:
		var raw struct {
			Name     string              `yaml:"name"`
			Type     derrclass.ParamKind `yaml:"type"`
			Required *bool               `yaml:"required"`
		}
		if err := n.Decode(&raw); err != nil {
			return err
		}
		if raw.Name == "" {
			return fmt.Errorf("line %d: parameter without a name", n.Line)
		}
		*p = Param{Name: raw.Name, Kind: raw.Type, Required: raw.Required == nil || *raw.Required}
		return nil
	default:
		return fmt.Errorf("line %d: a parameter must be a name or a mapping", n.Line)
	}
}

// MarshalYAML writes the shorthand form when possible.
func (p Param) MarshalYAML() (any, error) {
	if p.Required && p.Kind == derrclass.KindAny {
		return p.Name, nil
	}
	return struct {
		Name     string              `yaml:"name"`
		Type     derrclass.ParamKind `yaml:"type,omitempty"`
		Required bool                `yaml:"required"`
	}{p.Name, p.Kind, p.Required}, nil
}

// Spec converts the declaration into a derrclass.ParamSpec.
func (p Param) Spec() derrclass.ParamSpec {
	return derrclass.ParamSpec{Name: p.Name, Optional: !p.Required, Kind: p.Kind}
}
