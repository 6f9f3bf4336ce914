package config

// Pymkfile mirrors the structure of the pymk.yaml configuration file. All
// fields are optional; unset settings fall back to defaults.
type Pymkfile struct {
	ProjectName   string             `yaml:"project_name"`
	Python        string             `yaml:"python"`
	VenvDir       string             `yaml:"venv_dir"`
	ImageTag      string             `yaml:"image_tag"`
	ChangelogPath string             `yaml:"changelog_path"`
	Tasks         map[string]TaskDTO `yaml:"tasks"`
}

// TaskDTO is a user-defined task in the configuration. User tasks may
// depend on builtin tasks but may not redefine them.
type TaskDTO struct {
	Description string   `yaml:"description"`
	Cmd         []string `yaml:"cmd"`
	DependsOn   []string `yaml:"dependsOn"`
}
