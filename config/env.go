package config

import "os"

// GetEnv returns the environment value for key, or defaultValue when unset
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// APIBaseURL is the remote storefront API (auth + logistics)
func APIBaseURL() string {
	return GetEnv("PANTHER_API_URL", "http://localhost:8000/api")
}

// DataDir is where the file and sqlite storage backends live
func DataDir() string {
	return GetEnv("PANTHER_DATA_DIR", ".panther")
}

// ServerAddr is the listen address of the storefront service
func ServerAddr() string {
	return GetEnv("PANTHER_ADDR", ":8081")
}
