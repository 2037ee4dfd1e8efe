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
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"dirpx.dev/derrclass"
	"dirpx.dev/derrclass/defaults"
	"dirpx.dev/derrclass/name"
)

// ErrInvalidCatalog is returned for catalogs that cannot be applied.
var ErrInvalidCatalog = errors.New("catalog: invalid catalog")

// Catalog is a parsed taxonomy document.
type Catalog struct {
	// DefaultEncoding is set on the namespace by Apply when non-empty.
	DefaultEncoding name.Name `yaml:"defaultEncoding"`
	// IncludeDefaults registers the taxonomy of package defaults first.
	IncludeDefaults bool `yaml:"includeDefaults"`
	// Severities maps severity names to their numeric code.
	Severities map[name.Name]int `yaml:"severities"`
	// Classes are the declared classes.
	Classes map[name.Name]Class `yaml:"classes"`

	templates map[name.Name]map[name.Name]templates
}

// Class declares one error class.
type Class struct {
	Code  int                `yaml:"code"`
	Types map[name.Name]Type `yaml:"types"`
}

// Type declares one error type.
type Type struct {
	Code        int         `yaml:"code"`
	Severities  []name.Name `yaml:"severities"`
	Params      []Param     `yaml:"params"`
	Explanation string      `yaml:"explanation"`
	Messages    Messages    `yaml:"messages"`
}

// Messages are the templates of the standard and verbose encodings.
// Verbose falls back to Standard when empty.
type Messages struct {
	Standard string `yaml:"standard"`
	Verbose  string `yaml:"verbose"`
}

type templates struct {
	standard *template.Template
	verbose  *template.Template
}

// Load reads and parses the catalog at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Parse parses a catalog document.
func Parse(data []byte) (*Catalog, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one catalog document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	if err := c.compile(); err != nil {
		return nil, err
	}
	return &c, nil
}

// compile validates names and parses every template.
func (c *Catalog) compile() error {
	if len(c.Classes) == 0 && !c.IncludeDefaults {
		return fmt.Errorf("%w: no classes declared", ErrInvalidCatalog)
	}
	c.templates = make(map[name.Name]map[name.Name]templates, len(c.Classes))
	for cn, cl := range c.Classes {
		if err := name.Validate(cn); err != nil {
			return fmt.Errorf("%w: class %q: %w", ErrInvalidCatalog, cn, err)
		}
		if len(cl.Types) == 0 {
			return fmt.Errorf("%w: class %q declares no types", ErrInvalidCatalog, cn)
		}
		c.templates[cn] = make(map[name.Name]templates, len(cl.Types))
		for tn, ty := range cl.Types {
			if ty.Messages.Standard == "" {
				return fmt.Errorf("%w: type %q on class %q has no standard message", ErrInvalidCatalog, tn, cn)
			}
			std, err := parseTemplate(cn, tn, "standard", ty.Messages.Standard)
			if err != nil {
				return err
			}
			verbose := std
			if ty.Messages.Verbose != "" {
				if verbose, err = parseTemplate(cn, tn, "verbose", ty.Messages.Verbose); err != nil {
					return err
				}
			}
			c.templates[cn][tn] = templates{standard: std, verbose: verbose}
		}
	}
	return nil
}

func parseTemplate(class, typ name.Name, kind, text string) (*template.Template, error) {
	t, err := template.New(string(class) + "." + string(typ) + "." + kind).
		Option("missingkey=zero").
		Funcs(template.FuncMap{"join": join}).
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return t, nil
}

// join concatenates the elements of a list parameter.
func join(v any, sep string) string {
	switch l := v.(type) {
	case []string:
		return strings.Join(l, sep)
	case []any:
		parts := make([]string, len(l))
		for i, e := range l {
			parts[i] = fmt.Sprint(e)
		}
		return strings.Join(parts, sep)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Codes returns the numeric code table of the catalog, merged over the
// default table when IncludeDefaults is set.
func (c *Catalog) Codes() defaults.Codes {
	codes := defaults.Codes{
		Classes:    map[name.Name]defaults.ClassCode{},
		Severities: map[name.Name]int{},
	}
	if c.IncludeDefaults || len(c.Severities) == 0 {
		maps.Copy(codes.Severities, defaults.DefaultCodes().Severities)
	}
	if c.IncludeDefaults {
		maps.Copy(codes.Classes, defaults.DefaultCodes().Classes)
	}
	maps.Copy(codes.Severities, c.Severities)
	for cn, cl := range c.Classes {
		types := make(map[name.Name]int, len(cl.Types))
		for tn, ty := range cl.Types {
			types[tn] = ty.Code
		}
		codes.Classes[cn] = defaults.ClassCode{Code: cl.Code, Types: types}
	}
	return codes
}

// Explanations returns the non-technical explanations of the catalog,
// merged over the defaults when IncludeDefaults is set.
func (c *Catalog) Explanations() defaults.Explanations {
	expl := defaults.Explanations{}
	if c.IncludeDefaults {
		maps.Copy(expl, defaults.DefaultExplanations())
	}
	for cn, cl := range c.Classes {
		types := make(map[name.Name]string, len(cl.Types))
		for tn, ty := range cl.Types {
			if ty.Explanation != "" {
				types[tn] = ty.Explanation
			}
		}
		expl[cn] = types
	}
	return expl
}

// ClassData converts the catalog's own classes into a RegisterClasses
// payload. The default taxonomy is not included.
func (c *Catalog) ClassData() map[name.Name]derrclass.ClassData {
	codes, expl := c.Codes(), c.Explanations()
	out := make(map[name.Name]derrclass.ClassData, len(c.Classes))
	for cn, cl := range c.Classes {
		types := make(map[name.Name]derrclass.TypeData, len(cl.Types))
		for tn, ty := range cl.Types {
			params := make([]derrclass.ParamSpec, len(ty.Params))
			for i, p := range ty.Params {
				params[i] = p.Spec()
			}
			encoders := defaults.UniversalEncoders(codes, expl)
			tpl := c.templates[cn][tn]
			encoders[defaults.Standard] = templateEncoder(tpl.standard, defaults.StandardEncoder)
			encoders[defaults.Verbose] = templateEncoder(tpl.verbose, defaults.VerboseEncoder)
			types[tn] = derrclass.TypeData{
				Severities: ty.Severities,
				Params:     params,
				Encoders:   encoders,
			}
		}
		out[cn] = derrclass.ClassData{Types: types}
	}
	return out
}

// Apply registers the catalog on ns.
func (c *Catalog) Apply(ns *derrclass.Namespace) (*derrclass.Namespace, error) {
	if c.IncludeDefaults {
		if _, err := defaults.ApplyCore(ns); err != nil {
			return ns, err
		}
	}
	if len(c.Classes) > 0 {
		if _, err := ns.RegisterClasses(c.ClassData()); err != nil {
			return ns, err
		}
	}
	if c.DefaultEncoding != "" {
		ns.SetDefaultEncoding(c.DefaultEncoding)
	}
	return ns, nil
}

// Namespace returns a fresh namespace with the catalog applied.
func (c *Catalog) Namespace(opts ...derrclass.NamespaceOption) (*derrclass.Namespace, error) {
	return c.Apply(derrclass.New(opts...))
}

// templateEncoder renders tmpl against the encode context and hands the
// result to a defaults encoder builder.
func templateEncoder(tmpl *template.Template, build func(defaults.MessageCreator) derrclass.Encoder) derrclass.Encoder {
	return func(ctx derrclass.Context, custom derrclass.CustomOptions) (any, error) {
		var b strings.Builder
		if err := tmpl.Execute(&b, ctx); err != nil {
			return nil, fmt.Errorf("catalog: template %s: %w", tmpl.Name(), err)
		}
		msg := b.String()
		return build(func(derrclass.Context) string { return msg })(ctx, custom)
	}
}
