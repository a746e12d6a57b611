// Command ecorecli loads a declarative metamodel from a YAML package
// document, instantiates a root element, applies a few structural edits
// through the command stack, and prints the resulting containment tree.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/efd6/goecore"
	"github.com/efd6/goecore/command"
	"github.com/efd6/goecore/loader"
)

func main() {
	model := flag.String("model", "", "path to a YAML metamodel package document")
	root := flag.String("root", "", "name of the class to instantiate as the tree root")
	flag.Parse()
	if *model == "" || *root == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*model)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	searchspace := ecore.BootstrapPackage()
	pkg, err := loader.Load(f, searchspace)
	if err != nil {
		log.Fatal(err)
	}

	classifier, ok := pkg.GetEClassifier(*root)
	if !ok {
		log.Fatalf("ecorecli: no such class %q in %s", *root, *model)
	}
	class, ok := classifier.(*ecore.Class)
	if !ok {
		log.Fatalf("ecorecli: %q is not a class", *root)
	}

	inst, err := class.New()
	if err != nil {
		log.Fatal(err)
	}

	stack := command.NewStack()
	for _, attr := range class.Attributes() {
		if attr.Type() != ecore.String || attr.Many() {
			continue
		}
		set := command.NewSet(inst, attr.FeatureName(), fmt.Sprintf("demo-%s", attr.FeatureName()))
		if err := stack.Execute(set); err != nil {
			log.Println(err)
		}
	}

	color := isatty.IsTerminal(os.Stdout.Fd())
	printTree(os.Stdout, inst, 0, color)
}

func printTree(w *os.File, inst *ecore.Instance, depth int, color bool) {
	indent := strings.Repeat("  ", depth)
	name := inst.Class().Name()
	if color {
		fmt.Fprintf(w, "%s\x1b[36m%s\x1b[0m #%s\n", indent, name, inst.ExternalID())
	} else {
		fmt.Fprintf(w, "%s%s #%s\n", indent, name, inst.ExternalID())
	}
	for _, feat := range inst.Class().AllStructuralFeatures() {
		ref, ok := feat.(*ecore.Reference)
		if !ok || !ref.Containment() {
			continue
		}
		v, err := inst.EGet(ref.FeatureName())
		if err != nil {
			continue
		}
		switch t := v.(type) {
		case *ecore.Instance:
			printTree(w, t, depth+1, color)
		case ecore.Collection:
			for i := 0; i < t.Len(); i++ {
				elem, _ := t.At(i)
				if child, ok := elem.(*ecore.Instance); ok {
					printTree(w, child, depth+1, color)
				}
			}
		}
	}
}
