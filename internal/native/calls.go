package native

// The representative entry-point table. Every spec here flows through the
// same generic dispatch path; adding an entry point is a table edit, never
// new dispatch code. The set deliberately covers each dispatch shape the
// SDK uses: creators, borrowed-handle accessors, status returns, plain
// returns, library-owned strings, and caller-owned output buffers.
func init() {
	for _, spec := range []CallSpec{
		// Session lifecycle. wl_session_create transfers ownership of the
		// returned handle; the refcount pair below is issued by the
		// ownership layer, never by callers directly.
		{Symbol: "wl_session_create", Params: []TypeTag{TypeString}, Return: ReturnHandle, Kind: "session"},
		{Symbol: "wl_session_add_ref", Params: []TypeTag{TypePointer}, Return: ReturnStatus},
		{Symbol: "wl_session_release", Params: []TypeTag{TypePointer}, Return: ReturnStatus},
		{Symbol: "wl_session_login", Params: []TypeTag{TypePointer, TypeString, TypeString, TypeBool}, Return: ReturnStatus},
		{Symbol: "wl_session_logout", Params: []TypeTag{TypePointer}, Return: ReturnStatus},
		{Symbol: "wl_session_process_events", Params: []TypeTag{TypePointer}, Return: ReturnStatus},
		{Symbol: "wl_session_connection_state", Params: []TypeTag{TypePointer}, Return: ReturnPlain},
		{Symbol: "wl_session_display_name", Params: []TypeTag{TypePointer, TypePointer, TypeSize}, Return: ReturnStatus, Buffer: true},
		{Symbol: "wl_session_display_name_length", Params: []TypeTag{TypePointer}, Return: ReturnPlain},

		// Links. wl_link_as_track hands back a borrowed pointer, so the
		// ownership layer retains it before wrapping.
		{Symbol: "wl_link_create_from_string", Params: []TypeTag{TypeString}, Return: ReturnHandle, Kind: "link"},
		{Symbol: "wl_link_add_ref", Params: []TypeTag{TypePointer}, Return: ReturnStatus},
		{Symbol: "wl_link_release", Params: []TypeTag{TypePointer}, Return: ReturnStatus},
		{Symbol: "wl_link_type", Params: []TypeTag{TypePointer}, Return: ReturnPlain},
		{Symbol: "wl_link_as_track", Params: []TypeTag{TypePointer}, Return: ReturnHandle, Kind: "track"},
		{Symbol: "wl_link_as_string", Params: []TypeTag{TypePointer, TypePointer, TypeSize}, Return: ReturnPlain, Buffer: true},

		// Tracks.
		{Symbol: "wl_track_add_ref", Params: []TypeTag{TypePointer}, Return: ReturnStatus},
		{Symbol: "wl_track_release", Params: []TypeTag{TypePointer}, Return: ReturnStatus},
		{Symbol: "wl_track_error", Params: []TypeTag{TypePointer}, Return: ReturnStatus},
		{Symbol: "wl_track_is_loaded", Params: []TypeTag{TypePointer}, Return: ReturnPlain},
		{Symbol: "wl_track_duration_ms", Params: []TypeTag{TypePointer}, Return: ReturnPlain},
		{Symbol: "wl_track_title", Params: []TypeTag{TypePointer, TypePointer, TypeSize}, Return: ReturnStatus, Buffer: true},
		{Symbol: "wl_track_title_length", Params: []TypeTag{TypePointer}, Return: ReturnPlain},
		{Symbol: "wl_track_album", Params: []TypeTag{TypePointer}, Return: ReturnHandle, Kind: "album"},

		// Albums and artists, reached through a loaded track.
		{Symbol: "wl_album_add_ref", Params: []TypeTag{TypePointer}, Return: ReturnStatus},
		{Symbol: "wl_album_release", Params: []TypeTag{TypePointer}, Return: ReturnStatus},
		{Symbol: "wl_album_name", Params: []TypeTag{TypePointer, TypePointer, TypeSize}, Return: ReturnStatus, Buffer: true},
		{Symbol: "wl_album_name_length", Params: []TypeTag{TypePointer}, Return: ReturnPlain},
		{Symbol: "wl_album_artist", Params: []TypeTag{TypePointer}, Return: ReturnHandle, Kind: "artist"},
		{Symbol: "wl_album_cover_image", Params: []TypeTag{TypePointer}, Return: ReturnHandle, Kind: "image"},
		{Symbol: "wl_artist_add_ref", Params: []TypeTag{TypePointer}, Return: ReturnStatus},
		{Symbol: "wl_artist_release", Params: []TypeTag{TypePointer}, Return: ReturnStatus},
		{Symbol: "wl_artist_name", Params: []TypeTag{TypePointer, TypePointer, TypeSize}, Return: ReturnStatus, Buffer: true},
		{Symbol: "wl_artist_name_length", Params: []TypeTag{TypePointer}, Return: ReturnPlain},

		// Cover art. wl_image_data copies raw bytes into a caller-owned
		// region sized by wl_image_data_size.
		{Symbol: "wl_image_add_ref", Params: []TypeTag{TypePointer}, Return: ReturnStatus},
		{Symbol: "wl_image_release", Params: []TypeTag{TypePointer}, Return: ReturnStatus},
		{Symbol: "wl_image_data_size", Params: []TypeTag{TypePointer}, Return: ReturnPlain},
		{Symbol: "wl_image_data", Params: []TypeTag{TypePointer, TypePointer, TypeSize}, Return: ReturnStatus, Buffer: true},

		// Diagnostics.
		{Symbol: "wl_error_message", Params: []TypeTag{TypeInt}, Return: ReturnString},
		{Symbol: "wl_build_id", Params: []TypeTag{}, Return: ReturnString},
	} {
		Register(spec)
	}
}
