package config

// File represents the structure of the lancet.yaml configuration file.
// Zero values fall back to the documented defaults at load time.
type File struct {
	Version    string            `yaml:"version"`
	Roots      []string          `yaml:"roots"`
	Exclude    ExcludeDTO        `yaml:"exclude"`
	Extensions []string          `yaml:"extensions"`
	Aliases    map[string]string `yaml:"aliases"`
	Triggers   []string          `yaml:"triggers"`
	Policy     PolicyDTO         `yaml:"policy"`
	Cache      CacheDTO          `yaml:"cache"`
	Scan       ScanDTO           `yaml:"scan"`
	State      string            `yaml:"state"`
}

// ExcludeDTO configures which directories the scanner skips.
type ExcludeDTO struct {
	Dirs     []string `yaml:"dirs"`
	Prefixes []string `yaml:"prefixes"`
}

// PolicyDTO configures the verification scope policy.
type PolicyDTO struct {
	Threshold int `yaml:"threshold"`
}

// CacheDTO configures cache TTLs, as Go duration strings.
type CacheDTO struct {
	GenericTTL string `yaml:"genericTTL"`
	FileTTL    string `yaml:"fileTTL"`
}

// ScanDTO configures scan limits.
type ScanDTO struct {
	MaxFiles int `yaml:"maxFiles"`
}
