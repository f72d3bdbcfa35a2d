package domain

// Coordinates identify a published artifact.
type Coordinates struct {
	Group    string `json:"group" yaml:"group"`
	Artifact string `json:"artifact" yaml:"artifact"`
	Version  string `json:"version" yaml:"version"`
	Commit   string `json:"commit" yaml:"commit"`
	Dirty    bool   `json:"dirty" yaml:"dirty"`
}

// NewCoordinates binds a resolved version to the group and artifact identifiers.
func NewCoordinates(group, artifact string, v *BuildVersion) Coordinates {
	return Coordinates{
		Group:    group,
		Artifact: artifact,
		Version:  v.String(),
		Commit:   v.Hash,
		Dirty:    v.Dirty,
	}
}
