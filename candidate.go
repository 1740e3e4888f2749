package dynlib

// Candidate is a library path verified to exist for a target platform. The
// zero Path means nothing was found.
type Candidate struct {
	Path     string
	Platform Platform
}

func (c Candidate) IsEmpty() bool {
	return c.Path == ""
}

func (c Candidate) String() string {
	if c.IsEmpty() {
		return "<none> (" + c.Platform.String() + ")"
	}
	return c.Path + " (" + c.Platform.String() + ")"
}
