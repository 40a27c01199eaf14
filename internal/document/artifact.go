package document

import "time"

// Artifact is one generated proposal document. At most one live
// artifact exists per session; superseded handles must be released.
type Artifact struct {
	ID        string    `json:"id"`
	Pages     int       `json:"pages"`
	Size      int       `json:"size"`
	CreatedAt time.Time `json:"created_at"`

	data []byte
}

// Data returns the rendered bytes, nil once released.
func (a *Artifact) Data() []byte {
	if a == nil {
		return nil
	}
	return a.data
}

// Live reports whether the artifact still holds its bytes.
func (a *Artifact) Live() bool {
	return a != nil && a.data != nil
}

// Release frees the rendered bytes. Safe to call more than once.
func (a *Artifact) Release() {
	if a != nil {
		a.data = nil
	}
}
