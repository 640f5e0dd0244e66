package features

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/ian-shakespeare/hsasm/internal/config"
	"github.com/ian-shakespeare/hsasm/internal/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

//go:embed schema.cue
var schema string

//go:embed defaults.cue
var defaults []byte

// ConfigPaths are configuration files that take precedence over the ones
// found in the standard locations.
type ConfigPaths []string

func (Module) ConfigPaths() ConfigPaths {
	return nil
}

// SearchDirs are scanned for hsasm.cue and .hsasm.cue, highest priority first.
type SearchDirs []string

func (Module) SearchDirs() SearchDirs {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")
	return dirs
}

func (Module) ConfigLoader(
	logger logs.Logger,
	explicit ConfigPaths,
	dirs SearchDirs,
) config.Loader {
	paths := append([]string(nil), explicit...)

	filenames := []string{
		"hsasm.cue",
		".hsasm.cue",
	}

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	loader := config.NewLoader(paths, schema, config.Source{
		Name:    "defaults.cue",
		Content: defaults,
	})
	if sources, err := loader.Paths(); err != nil {
		logger.Warn("load config",
			"error", err,
		)
	} else {
		logger.Info("config sources",
			"paths", sources,
		)
	}
	return loader
}

func (Module) SymbolCache() *SymbolCache {
	return new(SymbolCache)
}

func (Module) Features(
	inject dscope.InjectStruct,
) (ret Features) {
	inject(&ret)
	return
}
