package config

// SourceFileExtensions are all recognized fixture file extensions.
var SourceFileExtensions = []string{".iota.yaml", ".iota.yml"}

// HasSourceExt returns true if the path ends with any recognized fixture
// extension. internal/fixture.Load consults this before reading a
// fixture file.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsTestMode indicates if the program is running under its own test
// suite. SubstituteFresh's binder renaming (internal/calculus/subst.go's
// uuidFreshen) consults this to suffix fresh names with a deterministic
// counter instead of a uuid, so golden-output assertions are stable.
var IsTestMode = false
