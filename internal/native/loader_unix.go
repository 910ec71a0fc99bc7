//go:build !windows

package native

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

func loadLibrary(path string) (uintptr, error) {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("dlopen %s: %w", path, err)
	}
	if h == 0 {
		return 0, fmt.Errorf("dlopen %s: nil handle", path)
	}
	return h, nil
}

func loadSymbol(handle uintptr, symbol string) (uintptr, error) {
	addr, err := purego.Dlsym(handle, symbol)
	if err != nil {
		return 0, fmt.Errorf("dlsym %s: %w", symbol, err)
	}
	return addr, nil
}

func closeLibrary(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return purego.Dlclose(handle)
}

// platformNames lists the bare library names tried on this platform, most
// specific first.
func platformNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{"libwavelink.12.dylib", "libwavelink.dylib"}
	}
	return []string{"libwavelink.so.12", "libwavelink.so"}
}
