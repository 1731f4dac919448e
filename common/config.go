package common

import (
    "errors"
    "fmt"
    "os"
    "path/filepath"

    "github.com/rs/zerolog/log"
    "github.com/spf13/viper"
)

// ConfigPaths are searched in order for <name>.yaml
var ConfigPaths = defaultConfigPaths()

func defaultConfigPaths() []string {
    paths := []string{"/etc/mono"}

    xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
    if xdgConfigHome == "" {
        if home, err := os.UserHomeDir(); err == nil {
            xdgConfigHome = filepath.Join(home, ".config")
        }
    }
    if xdgConfigHome != "" {
        paths = append(paths, filepath.Join(xdgConfigHome, "mono"))
    }

    return paths
}

// ConfExists reports whether <name>.yaml exists in one of ConfigPaths.
func ConfExists(configName string) bool {
    for _, dir := range ConfigPaths {
        if FileExists(filepath.Join(dir, configName+".yaml")) {
            return true
        }
    }
    return false
}

// ConfInit reads <name>.yaml from ConfigPaths into config. Values already set
// on config act as defaults for keys missing from the file.
func ConfInit(configName string, config interface{}) error {
    v := viper.New()
    v.SetConfigName(configName)
    v.SetConfigType("yaml")
    for _, dir := range ConfigPaths {
        v.AddConfigPath(dir)
    }

    if err := v.ReadInConfig(); err != nil {
        var notFound viper.ConfigFileNotFoundError
        if errors.As(err, &notFound) {
            log.Debug().
                Str("component", "config").
                Str("config", configName).
                Strs("paths", ConfigPaths).
                Msg("No config file found, using defaults")
            return nil
        }
        return fmt.Errorf("parse config %s: %w", configName, err)
    }

    if err := v.Unmarshal(config); err != nil {
        return fmt.Errorf("unmarshal config %s: %w", configName, err)
    }

    log.Debug().
        Str("component", "config").
        Str("config", configName).
        Str("file", v.ConfigFileUsed()).
        Msg("Loaded config file")

    return nil
}

func FileExists(filePath string) bool {
    if _, err := os.Stat(filePath); os.IsNotExist(err) {
        return false
    }
    return true
}
