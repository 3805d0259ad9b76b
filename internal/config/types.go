package config

// Config is the tool configuration. Flags may override individual fields
// after loading.
type Config struct {
	// Root is the game directory holding map/, common/ and history/.
	Root  string    `yaml:"root" mapstructure:"root"`
	Watch bool      `yaml:"watch" mapstructure:"watch"`
	Log   LogConfig `yaml:"log" mapstructure:"log"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level"` // debug/info/warn/error
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}
