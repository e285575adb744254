package sitectl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix prefixes environment overrides, e.g. SITECTL_ARTICLES_STORE.
const envPrefix = "SITECTL"

// Settings is the configuration resolved from flags, the config file and
// the environment.
type Settings struct {
	Config  Config
	Verbose bool

	// File is the config file that was read, or "" when none was found.
	File string
}

// LoadSettings resolves the configuration for kind. cfgFile is an explicit
// config file (it must exist); otherwise sitectl.yaml is looked up in root
// and the working directory, and a missing file just means defaults.
//
// Keys are global (root, site_url, verbose) or per kind under the kind's
// plural name (articles.store, projects.loader, ...).
func LoadSettings(kind *Kind, v *viper.Viper, cfgFile string) (Settings, error) {
	if v == nil {
		v = viper.New()
	}
	section := kind.Plural + "."

	v.SetDefault("root", ".")
	v.SetDefault("site_url", "")
	v.SetDefault("verbose", false)
	v.SetDefault(section+"dir", kind.Dir)
	v.SetDefault(section+"store", "")
	v.SetDefault(section+"template", "")
	v.SetDefault(section+"loader", kind.LoaderPath)
	v.SetDefault(section+"array", kind.ArrayName)
	v.SetDefault(section+"minify", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(v.GetString("root"))
		v.AddConfigPath(".")
		v.SetConfigName("sitectl")
		v.SetConfigType("yaml")
	}

	var s Settings
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return s, fmt.Errorf("sitectl: read config: %w", err)
		}
	} else {
		s.File = v.ConfigFileUsed()
	}

	s.Verbose = v.GetBool("verbose")
	s.Config = Config{
		Root:      v.GetString("root"),
		Dir:       v.GetString(section + "dir"),
		Store:     v.GetString(section + "store"),
		Template:  v.GetString(section + "template"),
		Loader:    v.GetString(section + "loader"),
		ArrayName: v.GetString(section + "array"),
		SiteURL:   v.GetString("site_url"),
		Minify:    v.GetBool(section + "minify"),
	}
	return s, nil
}
