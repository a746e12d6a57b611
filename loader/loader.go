// Package loader builds an ecore metamodel from a declarative YAML
// package document, the way the teacher's schema package decodes field
// definitions with gopkg.in/yaml.v3 — here the decoded shape is classes,
// attributes, and references rather than ECS fields.
package loader

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/efd6/goecore"
)

// PackageDef is the root YAML document: a named package of classes and
// enums.
type PackageDef struct {
	// Name of the package.
	Name string `yaml:"name"`
	// NsURI is the package's namespace URI.
	NsURI string `yaml:"ns_uri"`
	// NsPrefix is the package's namespace prefix.
	NsPrefix string `yaml:"ns_prefix"`
	// Enums declares the package's enumerations.
	Enums []EnumDef `yaml:"enums,omitempty"`
	// Classes declares the package's classes.
	Classes []ClassDef `yaml:"classes"`
}

// EnumDef declares an enumeration and its literals.
type EnumDef struct {
	Name     string   `yaml:"name"`
	Default  string   `yaml:"default,omitempty"`
	Literals []string `yaml:"literals"`
}

// ClassDef declares one class: its supertypes by name, its own
// attributes and references, and whether it is abstract.
type ClassDef struct {
	Name       string          `yaml:"name"`
	Super      []string        `yaml:"super,omitempty"`
	Abstract   bool            `yaml:"abstract,omitempty"`
	Attributes []AttributeDef  `yaml:"attributes,omitempty"`
	References []ReferenceDef  `yaml:"references,omitempty"`
}

// AttributeDef declares one attribute: its type (a classifier name
// resolved against the searchspace), bounds, and flags. Ordered/Unique
// are pointers so an omitted YAML field is distinguishable from an
// explicit false, preserving NewAttribute's ordered=true, unique=true
// defaults when the document says nothing.
type AttributeDef struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Lower    int    `yaml:"lower,omitempty"`
	Upper    int    `yaml:"upper,omitempty"`
	Ordered  *bool  `yaml:"ordered,omitempty"`
	Unique   *bool  `yaml:"unique,omitempty"`
	Required bool   `yaml:"required,omitempty"`
}

// ReferenceDef declares one reference: its target class (resolved
// against the searchspace), bounds, containment, and optional opposite
// by name within the same package. Ordered/Unique follow the same
// omitted-means-default rule as AttributeDef.
type ReferenceDef struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Lower       int    `yaml:"lower,omitempty"`
	Upper       int    `yaml:"upper,omitempty"`
	Ordered     *bool  `yaml:"ordered,omitempty"`
	Unique      *bool  `yaml:"unique,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
	Containment bool   `yaml:"containment,omitempty"`
	Opposite    string `yaml:"opposite,omitempty"`
}

// boolOrDefault resolves an omitted (nil) YAML bool to def, the
// constructor-level default it would otherwise silently override.
func boolOrDefault(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// Load decodes a single YAML package document from r and builds its
// classes and enums against searchspace, which supplies the built-in and
// previously loaded classifiers that Type/References fields may name.
// Load runs three passes: the first creates every Class and Enum (so
// forward references among classes in the same document resolve), the
// second wires supertypes and features, and the third (wireOpposites)
// resolves reference opposites once every class's features exist.
func Load(r io.Reader, searchspace *ecore.Package) (*ecore.Package, error) {
	var doc PackageDef
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("loader: decode: %w", err)
	}

	pkg := ecore.NewPackage(doc.Name, doc.NsURI, doc.NsPrefix)

	for _, ed := range doc.Enums {
		e := ecore.NewEnum(ed.Name, ed.Default, ed.Literals...)
		if err := pkg.AddClassifier(e); err != nil {
			return nil, err
		}
	}

	classes := make(map[string]*ecore.Class, len(doc.Classes))
	for _, cd := range doc.Classes {
		c := ecore.NewClass(cd.Name)
		if cd.Abstract {
			ecore.MarkAbstract(c)
		}
		classes[cd.Name] = c
		if err := pkg.AddClassifier(c); err != nil {
			return nil, err
		}
	}

	resolve := func(name string) (ecore.Classifier, error) {
		if c, ok := classes[name]; ok {
			return c, nil
		}
		if c, ok := pkg.GetEClassifier(name); ok {
			return c, nil
		}
		if c, ok := searchspace.GetEClassifier(name); ok {
			return c, nil
		}
		return nil, fmt.Errorf("undeclared classifier %q", name)
	}

	for _, cd := range doc.Classes {
		c := classes[cd.Name]
		for _, superName := range cd.Super {
			super, ok := classes[superName]
			if !ok {
				return nil, fmt.Errorf("loader: class %q: undeclared supertype %q", cd.Name, superName)
			}
			c.AddSuperType(super)
		}
		if err := c.CheckAcyclic(); err != nil {
			return nil, fmt.Errorf("loader: class %q: %w", cd.Name, err)
		}

		for _, ad := range cd.Attributes {
			t, err := resolve(ad.Type)
			if err != nil {
				return nil, fmt.Errorf("loader: class %q: attribute %q: %w", cd.Name, ad.Name, err)
			}
			lower, upper := ad.Lower, ad.Upper
			if upper == 0 {
				upper = 1
			}
			attr := ecore.NewAttribute(ad.Name, t).
				WithBounds(lower, upper).
				WithOrdered(boolOrDefault(ad.Ordered, true)).
				WithUnique(boolOrDefault(ad.Unique, true)).
				WithRequired(ad.Required)
			c.AddFeature(attr)
		}

		for _, rd := range cd.References {
			t, err := resolve(rd.Type)
			if err != nil {
				return nil, fmt.Errorf("loader: class %q: reference %q: %w", cd.Name, rd.Name, err)
			}
			tc, ok := t.(*ecore.Class)
			if !ok {
				return nil, fmt.Errorf("loader: class %q: reference %q: %q is not a class", cd.Name, rd.Name, rd.Type)
			}
			lower, upper := rd.Lower, rd.Upper
			if upper == 0 {
				upper = 1
			}
			ref := ecore.NewReference(rd.Name, tc).
				WithBounds(lower, upper).
				WithOrdered(boolOrDefault(rd.Ordered, true)).
				WithUnique(boolOrDefault(rd.Unique, true)).
				WithRequired(rd.Required).
				WithContainment(rd.Containment)
			c.AddFeature(ref)
		}
	}

	if err := wireOpposites(doc, classes); err != nil {
		return nil, err
	}

	return pkg, nil
}

// wireOpposites resolves each reference's named opposite within the same
// document and assigns it symmetrically.
func wireOpposites(doc PackageDef, classes map[string]*ecore.Class) error {
	for _, cd := range doc.Classes {
		c := classes[cd.Name]
		for _, rd := range cd.References {
			if rd.Opposite == "" {
				continue
			}
			feat, ok := c.FindEStructuralFeature(rd.Name)
			if !ok {
				continue
			}
			ref, ok := feat.(*ecore.Reference)
			if !ok {
				continue
			}
			target, ok := ref.Type().(*ecore.Class)
			if !ok {
				return fmt.Errorf("loader: class %q: reference %q: opposite target is not a class", cd.Name, rd.Name)
			}
			oppFeat, ok := target.FindEStructuralFeature(rd.Opposite)
			if !ok {
				return fmt.Errorf("loader: class %q: reference %q: undeclared opposite %q", cd.Name, rd.Name, rd.Opposite)
			}
			opp, ok := oppFeat.(*ecore.Reference)
			if !ok {
				return fmt.Errorf("loader: class %q: reference %q: opposite %q is not a reference", cd.Name, rd.Name, rd.Opposite)
			}
			ref.WithOpposite(opp)
		}
	}
	return nil
}
