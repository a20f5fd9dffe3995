package strata

import "strings"

// Ref identifies a stored resource by scheme plus a slash-delimited path.
// Refs are plain comparable values: two refs with equal scheme and path
// address the same resource, regardless of how they were constructed.
type Ref struct {
	Scheme string
	Path   string
}

func NewRef(scheme, path string) Ref {
	return Ref{Scheme: scheme, Path: path}
}

// PathComponents splits the path on "/" after stripping leading slashes.
// The result is never empty: an empty path yields one empty component.
func (r Ref) PathComponents() []string {
	return strings.Split(strings.TrimLeft(r.Path, "/"), "/")
}

func (r Ref) String() string {
	return r.Scheme + ":" + r.Path
}
