package wavelink

import (
	"time"

	"github.com/wavelink-audio/wavelink-go/internal/native"
)

// Typed operations over the registered entry-point surface. Each is a thin
// shim over the generic dispatch path; none carries bespoke call logic.

// ConnectionState values reported by wl_session_connection_state.
const (
	ConnectionLoggedOut = iota
	ConnectionLoggedIn
	ConnectionDisconnected
	ConnectionOffline
)

// CreateSession brings up an SDK session for the given application key. The
// returned handle is owned: wl_session_create transfers its refcount.
func (l *Lib) CreateSession(appKey string) (*Managed, error) {
	v, err := l.CallChecked("session_create", appKey)
	if err != nil {
		return nil, err
	}
	m, _ := v.(*Managed)
	return m, nil
}

// Login starts an asynchronous login. The returned status may be IS_LOADING
// while credentials are still being verified.
func (l *Lib) Login(session *Managed, username, password string, remember bool) (Status, error) {
	return l.checkedStatus("session_login", session, username, password, remember)
}

// Logout starts an asynchronous logout.
func (l *Lib) Logout(session *Managed) (Status, error) {
	return l.checkedStatus("session_logout", session)
}

// ProcessEvents lets the library run its pending work. Call it whenever the
// SDK signals that events need processing.
func (l *Lib) ProcessEvents(session *Managed) (Status, error) {
	return l.checkedStatus("session_process_events", session)
}

// ConnectionState returns the session's Connection* value.
func (l *Lib) ConnectionState(session *Managed) (int, error) {
	return l.plainInt("session_connection_state", session)
}

// DisplayName returns the logged-in user's display name. The status is
// surfaced alongside the text: an empty name with IS_LOADING means "not
// ready yet", not "no name".
func (l *Lib) DisplayName(session *Managed) (string, Status, error) {
	return l.stringField(session, "session_display_name_length", "session_display_name")
}

// LinkFromString parses a wavelink URI into a link handle, nil when the URI
// is not recognized.
func (l *Lib) LinkFromString(uri string) (*Managed, error) {
	v, err := l.CallChecked("link_create_from_string", uri)
	if err != nil {
		return nil, err
	}
	m, _ := v.(*Managed)
	return m, nil
}

// LinkType returns the SDK's type discriminator for the link.
func (l *Lib) LinkType(link *Managed) (int, error) {
	return l.plainInt("link_type", link)
}

// LinkAsTrack resolves the link's target track. The SDK hands back a
// borrowed pointer, so the wrapper retains it before surfacing.
func (l *Lib) LinkAsTrack(link *Managed) (*Managed, error) {
	return l.handleField("link_as_track", link)
}

// LinkString renders the link back to its canonical URI. wl_link_as_string
// reports the full length and truncates to the buffer, so one sizing call
// precedes the fill.
func (l *Lib) LinkString(link *Managed) (string, error) {
	n, err := l.call("link_as_string", link, nil, 0)
	if err != nil {
		return "", err
	}

	var callErr error
	text, _ := native.WithStringBuffer(int(n.(int64)), func(buf []byte) native.Status {
		if _, err := l.call("link_as_string", link, buf, len(buf)); err != nil {
			callErr = err
			return native.StatusOtherTransient // force discard
		}
		return native.StatusOK
	})
	if callErr != nil {
		return "", callErr
	}
	return text, nil
}

// TrackError reports the track's load outcome. OK and IS_LOADING come back
// as values; every other status raises a StatusError.
func (l *Lib) TrackError(track *Managed) (Status, error) {
	return l.checkedStatus("track_error", track)
}

// TrackLoaded reports whether the track's metadata has arrived.
func (l *Lib) TrackLoaded(track *Managed) (bool, error) {
	v, err := l.plainInt("track_is_loaded", track)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// TrackDuration returns the track length.
func (l *Lib) TrackDuration(track *Managed) (time.Duration, error) {
	v, err := l.plainInt("track_duration_ms", track)
	if err != nil {
		return 0, err
	}
	return time.Duration(v) * time.Millisecond, nil
}

// TrackTitle returns the track title together with the status of the
// underlying call; see DisplayName for the empty-versus-loading caveat.
func (l *Lib) TrackTitle(track *Managed) (string, Status, error) {
	return l.stringField(track, "track_title_length", "track_title")
}

// TrackAlbum returns the album a loaded track belongs to.
func (l *Lib) TrackAlbum(track *Managed) (*Managed, error) {
	return l.handleField("track_album", track)
}

// AlbumName returns the album name; see DisplayName for the
// empty-versus-loading caveat.
func (l *Lib) AlbumName(album *Managed) (string, Status, error) {
	return l.stringField(album, "album_name_length", "album_name")
}

// AlbumArtist returns the album's main artist.
func (l *Lib) AlbumArtist(album *Managed) (*Managed, error) {
	return l.handleField("album_artist", album)
}

// AlbumCover returns the album's cover image handle, nil when the SDK has
// no artwork for it.
func (l *Lib) AlbumCover(album *Managed) (*Managed, error) {
	return l.handleField("album_cover_image", album)
}

// ArtistName returns the artist name; see DisplayName for the
// empty-versus-loading caveat.
func (l *Lib) ArtistName(artist *Managed) (string, Status, error) {
	return l.stringField(artist, "artist_name_length", "artist_name")
}

// ImageData copies the image's encoded bytes out of the SDK. A failed copy
// call yields nil data with the status explaining why.
func (l *Lib) ImageData(image *Managed) ([]byte, Status, error) {
	n, err := l.plainInt("image_data_size", image)
	if err != nil {
		return nil, 0, err
	}

	var (
		data    []byte
		status  = StatusOK
		callErr error
	)
	native.WithBuffer(1, n, false, func(buf []byte) {
		v, err := l.call("image_data", image, buf, len(buf))
		if err != nil {
			callErr = err
			return
		}
		status = v.(Status)
		if status.Recognized() && status != StatusOK {
			return
		}
		data = append([]byte(nil), buf...)
	})
	if callErr != nil {
		return nil, 0, callErr
	}
	return data, status, nil
}

// ErrorMessage returns the SDK's human-readable message for a status.
func (l *Lib) ErrorMessage(status Status) (string, error) {
	v, err := l.call("error_message", int32(status))
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// handleField runs an entry point returning a borrowed handle.
func (l *Lib) handleField(name string, h *Managed) (*Managed, error) {
	v, err := l.call(name, h)
	if err != nil {
		return nil, err
	}
	m, _ := v.(*Managed)
	return m, nil
}

// checkedStatus runs a status-returning entry point through the classifier.
func (l *Lib) checkedStatus(name string, args ...any) (Status, error) {
	v, err := l.CallChecked(name, args...)
	if err != nil {
		return 0, err
	}
	return v.(Status), nil
}

// plainInt runs an entry point with an ordinary integer result.
func (l *Lib) plainInt(name string, args ...any) (int, error) {
	v, err := l.call(name, args...)
	if err != nil {
		return 0, err
	}
	return int(v.(int64)), nil
}

// stringField runs the two-call output-string protocol shared by every
// "<field>_length" / "<field>" accessor pair. A failed fill call discards
// whatever the library wrote; the caller never sees partial text.
func (l *Lib) stringField(h *Managed, lengthOp, fillOp string) (string, Status, error) {
	n, err := l.call(lengthOp, h)
	if err != nil {
		return "", 0, err
	}

	var callErr error
	text, status := native.WithStringBuffer(int(n.(int64)), func(buf []byte) native.Status {
		v, err := l.call(fillOp, h, buf, len(buf))
		if err != nil {
			callErr = err
			return native.StatusOtherTransient // force discard
		}
		return v.(Status)
	})
	if callErr != nil {
		return "", 0, callErr
	}
	return text, status, nil
}
