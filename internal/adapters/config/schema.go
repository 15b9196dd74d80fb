package config

// Manifest file structure. One manifest describes one built package.

// ManifestFile represents the structure of the packlint.yaml manifest.
type ManifestFile struct {
	Package      string       `yaml:"package"`
	Triplet      string       `yaml:"triplet"`
	Architecture string       `yaml:"architecture"`
	Toolset      string       `yaml:"toolset"`
	BuildType    string       `yaml:"build_type"`
	SystemName   string       `yaml:"system_name"`
	Linkage      LinkageDTO   `yaml:"linkage"`
	Policies     []string     `yaml:"policies"`
	Paths        ManifestDirs `yaml:"paths"`
}

// LinkageDTO declares how the package and the CRT are linked.
type LinkageDTO struct {
	Library string `yaml:"library"`
	Crt     string `yaml:"crt"`
}

// ManifestDirs points the validator at the build output locations.
type ManifestDirs struct {
	Package    string `yaml:"package"`
	Buildtrees string `yaml:"buildtrees"`
	Recipe     string `yaml:"recipe"`
}
