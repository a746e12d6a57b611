package ecore

// This file builds the self-describing metamodel: the EClass objects that
// describe Class, Attribute, Reference, and Package themselves, closing
// the reflective loop pyecore calls "the meta-circularity of Ecore" --
// EClass's own metaclass is EClass.

var (
	// EObjectClass describes the root of every instantiable class.
	EObjectClass = NewClass("EObject")

	// ETypedElementClass describes the common shape of EAttribute and
	// EReference: a name and a type.
	ETypedElementClass = NewClass("ETypedElement", EObjectClass)

	// EStructuralFeatureClass describes the bounds/flags shared by
	// EAttribute and EReference.
	EStructuralFeatureClass = NewClass("EStructuralFeature", ETypedElementClass)

	// EAttributeClass describes Attribute values at the meta level.
	EAttributeClass = NewClass("EAttribute", EStructuralFeatureClass)

	// EReferenceClass describes Reference values at the meta level.
	EReferenceClass = NewClass("EReference", EStructuralFeatureClass)

	// EClassifierClass describes DataType, Enum, and Class uniformly.
	EClassifierClass = NewClass("EClassifier", EObjectClass)

	// EDataTypeClass describes DataType values.
	EDataTypeClass = NewClass("EDataType", EClassifierClass)

	// EEnumClass describes Enum values.
	EEnumClass = NewClass("EEnum", EDataTypeClass)

	// EClassClass describes Class values, including itself: see init
	// below for the fixpoint assignment.
	EClassClass = NewClass("EClass", EClassifierClass)

	// EPackageClass describes Package values.
	EPackageClass = NewClass("EPackage", EObjectClass)

	// EAnnotationClass describes Annotation values.
	EAnnotationClass = NewClass("EAnnotation", EObjectClass)
)

func init() {
	EObjectClass.meta = EClassClass
	ETypedElementClass.meta = EClassClass
	EStructuralFeatureClass.meta = EClassClass
	EAttributeClass.meta = EClassClass
	EReferenceClass.meta = EClassClass
	EClassifierClass.meta = EClassClass
	EDataTypeClass.meta = EClassClass
	EEnumClass.meta = EClassClass
	EPackageClass.meta = EClassClass
	EAnnotationClass.meta = EClassClass

	// The fixpoint: EClass is an instance of itself.
	EClassClass.meta = EClassClass

	EClassClass.AddFeature(NewAttribute("name", String).WithRequired(true))
	EClassClass.AddFeature(NewAttribute("abstract", Boolean).WithDefault(false))
	EClassClass.AddFeature(
		NewReference("eSuperTypes", EClassClass).WithBounds(0, -1).WithOrdered(true).WithUnique(true),
	)
	EClassClass.AddFeature(
		NewReference("eStructuralFeatures", EStructuralFeatureClass).
			WithBounds(0, -1).WithOrdered(true).WithUnique(true).WithContainment(true),
	)

	EStructuralFeatureClass.AddFeature(NewAttribute("name", String).WithRequired(true))
	EStructuralFeatureClass.AddFeature(NewAttribute("lowerBound", Integer).WithDefault(0))
	EStructuralFeatureClass.AddFeature(NewAttribute("upperBound", Integer).WithDefault(1))
	EStructuralFeatureClass.AddFeature(NewAttribute("ordered", Boolean).WithDefault(true))
	EStructuralFeatureClass.AddFeature(NewAttribute("unique", Boolean).WithDefault(true))
	EStructuralFeatureClass.AddFeature(NewAttribute("changeable", Boolean).WithDefault(true))
	EStructuralFeatureClass.AddFeature(NewAttribute("derived", Boolean).WithDefault(false))

	EReferenceClass.AddFeature(NewAttribute("containment", Boolean).WithDefault(false))
	EReferenceClass.AddFeature(NewReference("eOpposite", EReferenceClass))

	EPackageClass.AddFeature(NewAttribute("name", String).WithRequired(true))
	EPackageClass.AddFeature(NewAttribute("nsURI", String))
	EPackageClass.AddFeature(NewAttribute("nsPrefix", String))
	EPackageClass.AddFeature(
		NewReference("eClassifiers", EClassifierClass).WithBounds(0, -1).WithContainment(true),
	)

	EAnnotationClass.AddFeature(NewAttribute("source", String))
	EAnnotationClass.AddFeature(NewAttribute("details", StringMap))
}

// BootstrapPackage returns a fresh Package pre-populated with the
// meta-level classes (EClass, EAttribute, EReference, EDataType, EEnum,
// EPackage, EAnnotation, EObject), the default searchspace a loader
// starts GetEClassifier resolution from.
func BootstrapPackage() *Package {
	p := NewPackage("ecore", "http://www.eclipse.org/emf/2002/Ecore", "ecore")
	for _, c := range []*Class{
		EObjectClass,
		ETypedElementClass,
		EStructuralFeatureClass,
		EAttributeClass,
		EReferenceClass,
		EClassifierClass,
		EDataTypeClass,
		EEnumClass,
		EClassClass,
		EPackageClass,
		EAnnotationClass,
	} {
		_ = p.AddClassifier(c)
	}
	for _, c := range []*DataType{String, Boolean, Integer, StringMap, DiagnosticChain} {
		_ = p.AddClassifier(c)
	}
	return p
}
