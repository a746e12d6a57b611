package ecore

import "fmt"

// Package is a named container of classifiers: the searchspace that
// GetEClassifier resolves names against. It plays the role of pyecore's
// EPackage (SPEC_FULL.md section 5).
type Package struct {
	name        string
	nsURI       string
	nsPrefix    string
	classifiers map[string]Classifier
	subPackages []*Package
}

// NewPackage builds an empty package named name, rooted at nsURI with the
// given nsPrefix.
func NewPackage(name, nsURI, nsPrefix string) *Package {
	return &Package{
		name:        name,
		nsURI:       nsURI,
		nsPrefix:    nsPrefix,
		classifiers: map[string]Classifier{},
	}
}

func (p *Package) Name() string     { return p.name }
func (p *Package) NsURI() string    { return p.nsURI }
func (p *Package) NsPrefix() string { return p.nsPrefix }

// Classifiers returns the package's own classifiers; order is not
// guaranteed.
func (p *Package) Classifiers() []Classifier {
	out := make([]Classifier, 0, len(p.classifiers))
	for _, c := range p.classifiers {
		out = append(out, c)
	}
	return out
}

// AddClassifier registers c under its own name, failing if the name is
// already taken within this package.
func (p *Package) AddClassifier(c Classifier) error {
	if _, exists := p.classifiers[c.Name()]; exists {
		return fmt.Errorf("%w: classifier %q already registered in package %q", ErrBadValue, c.Name(), p.name)
	}
	p.classifiers[c.Name()] = c
	return nil
}

// SubPackages returns p's nested packages, in registration order.
func (p *Package) SubPackages() []*Package { return append([]*Package{}, p.subPackages...) }

// AddSubPackage nests sub under p.
func (p *Package) AddSubPackage(sub *Package) { p.subPackages = append(p.subPackages, sub) }

// GetEClassifier resolves name in p, then in each subpackage depth-first,
// returning false if no classifier by that name is registered anywhere
// in the tree.
func (p *Package) GetEClassifier(name string) (Classifier, bool) {
	if c, ok := p.classifiers[name]; ok {
		return c, true
	}
	for _, sub := range p.subPackages {
		if c, ok := sub.GetEClassifier(name); ok {
			return c, true
		}
	}
	return nil, false
}
