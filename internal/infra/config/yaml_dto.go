package config

// YAMLPreset mirrors the on-disk preset file. Bounds and range are
// pointers so absent fields fall back to the tool defaults instead of
// zero values.
type YAMLPreset struct {
	Name        string `yaml:"name"`
	Min         *int   `yaml:"min"`
	Max         *int   `yaml:"max"`
	Range       *int   `yaml:"range"`
	Combination []int  `yaml:"combination"`
	CSV         bool   `yaml:"csv"`
}
