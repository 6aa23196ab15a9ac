package resource

import (
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var properties map[string]any

// envPattern matches ${ENV_NAME} and ${ENV_NAME:default} property values.
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]+))?}`)

func init() {
	path, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		path = "configs/application.yml"
	}
	Init(path)
}

// Init loads application properties from a YAML file, resolves ${ENV:default}
// placeholders against the process environment and merges the flattened keys
// back into viper so they stay reachable by dotted path.
func Init(filepath string) {
	viper.SetConfigFile(filepath)
	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}

	if properties == nil {
		properties = make(map[string]any)
	}
	flattenProperties("", viper.AllSettings(), properties)

	if err := viper.MergeConfigMap(properties); err != nil {
		log.Fatalf("Fail to merge properties: %v", err)
	}
}

func flattenProperties(prefix string, data map[string]any, out map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			out[fullKey] = resolveEnvVariable(v)
		case map[string]any:
			flattenProperties(fullKey, v, out)
		default:
			out[fullKey] = v
		}
	}
}

// resolveEnvVariable expands ${ENV} and ${ENV:default} values; plain strings
// pass through unchanged.
func resolveEnvVariable(value string) any {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	if matches[2] != "" {
		return matches[2]
	}
	return nil
}

func Get(key string) any {
	return viper.Get(key)
}

func GetString(key string) string {
	return viper.GetString(key)
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

func GetInt64(key string) int64 {
	return viper.GetInt64(key)
}

func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
