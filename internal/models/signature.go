package models

// SourceLocation points at a position in a scanned source file
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

// Parameter is a single function parameter in declaration order
type Parameter struct {
	Name string
	Type TypeDescriptor
}

// FunctionSignature is the parsed declaration of one bridged function. It is
// built once by the parser and consumed read-only by the generator.
type FunctionSignature struct {
	Name       string
	Visibility string // raw visibility marker, e.g. "pub" or "pub(crate)"; empty for private
	IsAsync    bool
	Parameters []Parameter
	ReturnType *TypeDescriptor // nil when the function returns nothing
	Generics   string          // raw generic parameter list including brackets, e.g. "<T: Clone>"
	Where      string          // raw where clause, carried verbatim to the backend

	// Attributes are re-emitted verbatim above the backend function, in
	// original order. The bridge attribute itself is never included.
	Attributes []string

	// Body is the full function body including the surrounding braces
	Body string

	Location SourceLocation
}

// HasParameters reports whether the signature declares at least one parameter
func (s *FunctionSignature) HasParameters() bool {
	return len(s.Parameters) > 0
}

// GeneratedBridge holds the two artifacts produced for one function
type GeneratedBridge struct {
	FunctionName string
	Backend      string
	Client       string
}

// GeneratedFile is one emitted output file and its provenance
type GeneratedFile struct {
	Path        string
	Content     string
	BridgeCount int
	SourceFiles []string
}
