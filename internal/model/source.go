// Package model defines the data passed between the sjavac layers.
package model

// Path represents a file system path.
type Path string

// SourceExt is the extension every S-Java source file carries.
const SourceExt = ".sjava"

// File is a file on disk with its content fingerprint.
type File struct {
	Path Path
	Hash string // hex SHA-256 of the content
}

// Source is one S-Java file selected for verification.
type Source struct {
	Origin *File
}

// Path returns the origin path, or "" when the source has no origin.
func (s Source) Path() Path {
	if s.Origin == nil {
		return ""
	}

	return s.Origin.Path
}
