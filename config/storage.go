package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/sanyamChaudhary27/project-panther/storage"
)

// NewBridge builds the persistence bridge named by PANTHER_STORAGE:
// "file" (default), "sqlite" or "redis".
func NewBridge() (storage.Bridge, error) {
	backend := GetEnv("PANTHER_STORAGE", "file")

	switch backend {
	case "file":
		bridge, err := storage.NewFileBridge(DataDir())
		if err != nil {
			return nil, err
		}
		log.Println("✅ Storage bridge ready (file):", DataDir())
		return bridge, nil

	case "sqlite":
		path := GetEnv("PANTHER_SQLITE_PATH", filepath.Join(DataDir(), "panther.db"))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		bridge, err := storage.NewSQLiteBridge(path)
		if err != nil {
			return nil, err
		}
		log.Println("✅ Storage bridge ready (sqlite):", path)
		return bridge, nil

	case "redis":
		if RedisClient == nil {
			if err := ConnectRedis(); err != nil {
				return nil, err
			}
		}
		log.Println("✅ Storage bridge ready (redis)")
		return storage.NewRedisBridge(RedisClient), nil

	default:
		return nil, fmt.Errorf("unknown PANTHER_STORAGE backend: %q", backend)
	}
}
