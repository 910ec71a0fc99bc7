//go:build windows

package native

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func loadLibrary(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, fmt.Errorf("LoadLibrary %s: %w", path, err)
	}
	if h == 0 {
		return 0, fmt.Errorf("LoadLibrary %s: nil handle", path)
	}
	return uintptr(h), nil
}

func loadSymbol(handle uintptr, symbol string) (uintptr, error) {
	addr, err := windows.GetProcAddress(windows.Handle(handle), symbol)
	if err != nil {
		return 0, fmt.Errorf("GetProcAddress %s: %w", symbol, err)
	}
	return addr, nil
}

func closeLibrary(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return windows.FreeLibrary(windows.Handle(handle))
}

func platformNames() []string {
	return []string{"wavelink.dll", "libwavelink.dll"}
}
