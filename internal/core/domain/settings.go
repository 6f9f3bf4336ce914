package domain

// Settings holds the recognized project options from pymk.yaml.
type Settings struct {
	// ProjectName names the project; it seeds the default image tag.
	ProjectName string

	// Python is the interpreter used to create the virtual environment.
	Python string

	// VenvDir is the virtual environment directory, relative to the
	// project root.
	VenvDir string

	// ImageTag is the container image tag for docker-build/docker-run.
	ImageTag string

	// ChangelogPath is the append-only changelog file.
	ChangelogPath string
}

// DefaultSettings returns the settings used when pymk.yaml is absent or
// leaves a field unset. ProjectName and ImageTag are completed by the
// loader once the working directory is known.
func DefaultSettings() Settings {
	return Settings{
		Python:        "python3",
		VenvDir:       ".venv",
		ChangelogPath: "changelog.txt",
	}
}

// Project is a loaded configuration: resolved settings plus the task graph
// built from them.
type Project struct {
	Settings Settings
	Graph    *Graph
}
