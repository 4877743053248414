package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the settings the journal core needs. The profile
// values (username, language) are consumed read-only here; editing
// them belongs to the settings surface, not this core.
type Config interface {
	BasePath() string
	Language() string
	Username() string
	APIKey() string
}

func LoadConfig() (Config, error) {
	// Walk the file tree from here backwards looking for a .nootnote file.
	viper.SetDefault("path", "~/.nootnote.db")
	viper.SetDefault("language", "en")
	viper.SetDefault("username", "")
	viper.SetConfigName(".nootnote") // .yaml is implicit
	viper.SetEnvPrefix("NOOTNOTE")
	viper.AutomaticEnv()
	_ = viper.BindEnv("api-key", "NOOTNOTE_API_KEY", "GEMINI_API_KEY")

	if override := os.Getenv("NOOTNOTE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:      path,
		Lang:      viper.GetString("language"),
		User:      viper.GetString("username"),
		GeminiKey: viper.GetString("api-key"),
	}, nil
}

type fileConfig struct {
	Path      string `json:"path"`
	Lang      string `json:"language"`
	User      string `json:"username"`
	GeminiKey string `json:"api-key"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) Language() string { return f.Lang }
func (f *fileConfig) Username() string { return f.User }
func (f *fileConfig) APIKey() string   { return f.GeminiKey }
