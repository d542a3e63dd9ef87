package config

// Version is the current dhallcore version.
// Set at build time via -ldflags, or edited directly for a release tag.
var Version = "0.1.0"

const SourceFileExt = ".dhall"

// SourceFileExtensions are all recognized term-document extensions.
var SourceFileExtensions = []string{".dhall", ".dhallterm.yaml", ".dhallterm.json"}

// TrimSourceExt removes any recognized source extension from a filename.
// Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if the path ends with any recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsTestMode is a flag for runs under `go test`. No code in this module
// sets or reads it: String() methods print minted fresh labels, UUID suffix
// included, in every mode.
var IsTestMode = false

// IsServiceMode is a flag for running as the gRPC checking service rather
// than as a one-shot CLI check. No code in this module sets or reads it;
// cmd/dhallcheck -serve leaves it false.
var IsServiceMode = false

// Builtin identifier names recognized by the type oracle (internal/builtins)
// and normalizer (internal/normalize).
const (
	BoolName     = "Bool"
	NaturalName  = "Natural"
	IntegerName  = "Integer"
	DoubleName   = "Double"
	TextName     = "Text"
	ListName     = "List"
	OptionalName = "Optional"

	NaturalFoldName   = "Natural/fold"
	NaturalBuildName  = "Natural/build"
	NaturalIsZeroName = "Natural/isZero"
	NaturalEvenName   = "Natural/even"
	NaturalOddName    = "Natural/odd"

	ListBuildName   = "List/build"
	ListFoldName    = "List/fold"
	ListLengthName  = "List/length"
	ListHeadName    = "List/head"
	ListLastName    = "List/last"
	ListIndexedName = "List/indexed"
	ListReverseName = "List/reverse"

	OptionalFoldName  = "Optional/fold"
	OptionalBuildName = "Optional/build"
)

// Binary operators recognized by BinOp.
const (
	OpBoolAnd       = "&&"
	OpBoolOr        = "||"
	OpBoolEQ        = "=="
	OpBoolNE        = "!="
	OpNaturalPlus   = "+"
	OpNaturalTimes  = "*"
	OpTextAppend    = "++"
	OpListAppend    = "#"
	OpRecordMerge   = "/\\"
	OpRightBiasedOR = "//"
	OpRecordTypeAnd = "//\\\\"
)
