package wavelink

import (
	"sync"
	"time"
)

// The shared namespace: one process-default Lib, with every operation also
// exposed as a package-level function using the same syntax as the instance
// methods. Tests and embedders that want isolation construct their own Lib
// (possibly over a stub Invoker) and ignore the default entirely.

var (
	defaultMu  sync.RWMutex
	defaultLib *Lib
)

// Init opens the native library per cfg and installs it as the process
// default. It fails with an error wrapping ErrLibraryNotFound when no
// candidate library resolves.
func Init(cfg Config) error {
	lib, err := Open(cfg)
	if err != nil {
		return err
	}
	SetDefault(lib)
	return nil
}

// SetDefault installs lib as the shared default instance.
func SetDefault(lib *Lib) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLib = lib
}

// Default returns the shared default instance, or nil before Init.
func Default() *Lib {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLib
}

func defaultOrErr() (*Lib, error) {
	if l := Default(); l != nil {
		return l, nil
	}
	return nil, ErrNotInitialized
}

// Call invokes an entry point on the default instance without status
// classification.
func Call(name string, args ...any) (any, error) {
	l, err := defaultOrErr()
	if err != nil {
		return nil, err
	}
	return l.Call(name, args...)
}

// CallChecked invokes an entry point on the default instance with status
// classification.
func CallChecked(name string, args ...any) (any, error) {
	l, err := defaultOrErr()
	if err != nil {
		return nil, err
	}
	return l.CallChecked(name, args...)
}

// SetTrace toggles per-call diagnostic logging on the default instance.
func SetTrace(on bool) {
	if l := Default(); l != nil {
		l.SetTrace(on)
	}
}

// CreateSession calls Lib.CreateSession on the default instance.
func CreateSession(appKey string) (*Managed, error) {
	l, err := defaultOrErr()
	if err != nil {
		return nil, err
	}
	return l.CreateSession(appKey)
}

// Login calls Lib.Login on the default instance.
func Login(session *Managed, username, password string, remember bool) (Status, error) {
	l, err := defaultOrErr()
	if err != nil {
		return 0, err
	}
	return l.Login(session, username, password, remember)
}

// Logout calls Lib.Logout on the default instance.
func Logout(session *Managed) (Status, error) {
	l, err := defaultOrErr()
	if err != nil {
		return 0, err
	}
	return l.Logout(session)
}

// ProcessEvents calls Lib.ProcessEvents on the default instance.
func ProcessEvents(session *Managed) (Status, error) {
	l, err := defaultOrErr()
	if err != nil {
		return 0, err
	}
	return l.ProcessEvents(session)
}

// ConnectionState calls Lib.ConnectionState on the default instance.
func ConnectionState(session *Managed) (int, error) {
	l, err := defaultOrErr()
	if err != nil {
		return 0, err
	}
	return l.ConnectionState(session)
}

// DisplayName calls Lib.DisplayName on the default instance.
func DisplayName(session *Managed) (string, Status, error) {
	l, err := defaultOrErr()
	if err != nil {
		return "", 0, err
	}
	return l.DisplayName(session)
}

// LinkFromString calls Lib.LinkFromString on the default instance.
func LinkFromString(uri string) (*Managed, error) {
	l, err := defaultOrErr()
	if err != nil {
		return nil, err
	}
	return l.LinkFromString(uri)
}

// LinkType calls Lib.LinkType on the default instance.
func LinkType(link *Managed) (int, error) {
	l, err := defaultOrErr()
	if err != nil {
		return 0, err
	}
	return l.LinkType(link)
}

// LinkAsTrack calls Lib.LinkAsTrack on the default instance.
func LinkAsTrack(link *Managed) (*Managed, error) {
	l, err := defaultOrErr()
	if err != nil {
		return nil, err
	}
	return l.LinkAsTrack(link)
}

// LinkString calls Lib.LinkString on the default instance.
func LinkString(link *Managed) (string, error) {
	l, err := defaultOrErr()
	if err != nil {
		return "", err
	}
	return l.LinkString(link)
}

// TrackError calls Lib.TrackError on the default instance.
func TrackError(track *Managed) (Status, error) {
	l, err := defaultOrErr()
	if err != nil {
		return 0, err
	}
	return l.TrackError(track)
}

// TrackLoaded calls Lib.TrackLoaded on the default instance.
func TrackLoaded(track *Managed) (bool, error) {
	l, err := defaultOrErr()
	if err != nil {
		return false, err
	}
	return l.TrackLoaded(track)
}

// TrackTitle calls Lib.TrackTitle on the default instance.
func TrackTitle(track *Managed) (string, Status, error) {
	l, err := defaultOrErr()
	if err != nil {
		return "", 0, err
	}
	return l.TrackTitle(track)
}

// TrackDuration calls Lib.TrackDuration on the default instance.
func TrackDuration(track *Managed) (time.Duration, error) {
	l, err := defaultOrErr()
	if err != nil {
		return 0, err
	}
	return l.TrackDuration(track)
}

// TrackAlbum calls Lib.TrackAlbum on the default instance.
func TrackAlbum(track *Managed) (*Managed, error) {
	l, err := defaultOrErr()
	if err != nil {
		return nil, err
	}
	return l.TrackAlbum(track)
}

// AlbumName calls Lib.AlbumName on the default instance.
func AlbumName(album *Managed) (string, Status, error) {
	l, err := defaultOrErr()
	if err != nil {
		return "", 0, err
	}
	return l.AlbumName(album)
}

// AlbumArtist calls Lib.AlbumArtist on the default instance.
func AlbumArtist(album *Managed) (*Managed, error) {
	l, err := defaultOrErr()
	if err != nil {
		return nil, err
	}
	return l.AlbumArtist(album)
}

// AlbumCover calls Lib.AlbumCover on the default instance.
func AlbumCover(album *Managed) (*Managed, error) {
	l, err := defaultOrErr()
	if err != nil {
		return nil, err
	}
	return l.AlbumCover(album)
}

// ArtistName calls Lib.ArtistName on the default instance.
func ArtistName(artist *Managed) (string, Status, error) {
	l, err := defaultOrErr()
	if err != nil {
		return "", 0, err
	}
	return l.ArtistName(artist)
}

// ImageData calls Lib.ImageData on the default instance.
func ImageData(image *Managed) ([]byte, Status, error) {
	l, err := defaultOrErr()
	if err != nil {
		return nil, 0, err
	}
	return l.ImageData(image)
}

// ErrorMessage calls Lib.ErrorMessage on the default instance.
func ErrorMessage(status Status) (string, error) {
	l, err := defaultOrErr()
	if err != nil {
		return "", err
	}
	return l.ErrorMessage(status)
}

// BuildID calls Lib.BuildID on the default instance.
func BuildID() (string, error) {
	l, err := defaultOrErr()
	if err != nil {
		return "", err
	}
	return l.BuildID()
}
