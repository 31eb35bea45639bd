package cmd

import (
	"fmt"

	"finderinfo/internal/display"
	"finderinfo/internal/finderinfo"
	"finderinfo/internal/storage"
	"finderinfo/internal/xattr"

	"github.com/spf13/viper"
)

// attrStore is replaced in tests.
var attrStore xattr.Store = xattr.SystemStore{}

// resolveKind honours --kind and falls back to stat(2).
func resolveKind(path string) (finderinfo.Kind, error) {
	k := viper.GetString("kind")
	if k == "" || k == "auto" {
		kind, err := xattr.KindOf(path)
		if err != nil {
			return kind, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		return kind, nil
	}
	return finderinfo.ParseKind(k)
}

func outputFormat() (display.Format, error) {
	return display.ParseFormat(viper.GetString("output"))
}

func openStorage() (storage.Storage, error) {
	cfg := &storage.Config{
		Host:     viper.GetString("db.host"),
		Port:     viper.GetInt("db.port"),
		User:     viper.GetString("db.user"),
		Password: viper.GetString("db.password"),
		DBName:   viper.GetString("db.name"),
		SSLMode:  viper.GetString("db.sslmode"),
	}
	return storage.Open(cfg, viper.GetString("data_dir"))
}
