package wavelink

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/wavelink-audio/wavelink-go/internal/native"
	"github.com/wavelink-audio/wavelink-go/pkg/wavelink/logging"
)

// Config expresses the knobs required to bring up the native library.
// The zero value is usable: the loader falls back to the platform's default
// candidate names and the WAVELINK_LIB_PATH environment override.
type Config struct {
	// LibraryPaths are explicit shared-library files or directories to try
	// before the default candidates, in order.
	LibraryPaths []string `toml:"library_paths"`

	// LibraryNames are extra bare library names appended to the platform
	// defaults, for distributions that rename the SDK.
	LibraryNames []string `toml:"library_names"`

	// Trace enables the per-call diagnostic trace from startup.
	Trace bool `toml:"trace"`

	// Logger receives trace lines. Nil binds the default diagnostic logger
	// on standard output.
	Logger logging.Logger `toml:"-"`

	// ErrOut receives load-failure guidance. Nil binds standard error.
	ErrOut io.Writer `toml:"-"`
}

// LoadConfig reads a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("wavelink: load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) loadOptions() native.LoadOptions {
	return native.LoadOptions{
		Paths:  c.LibraryPaths,
		Names:  c.LibraryNames,
		Trace:  c.Trace,
		Logger: c.Logger,
		ErrOut: c.ErrOut,
	}
}
