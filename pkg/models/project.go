package models

// ProjectConfig is the project marker persisted in .vslice.yaml.
type ProjectConfig struct {
	Name          string `yaml:"name" json:"name"`
	PythonVersion string `yaml:"python_version" json:"python_version"`
	ToolVersion   string `yaml:"tool_version" json:"tool_version"`
	CreatedAt     string `yaml:"created_at" json:"created_at"`
	FeaturesDir   string `yaml:"features_dir" json:"features_dir"`
}
