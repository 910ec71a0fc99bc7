package wavelink

// APIVersion is the libwavelink API generation this bridge targets. It must
// equal WAVELINK_API_VERSION in the SDK header; the header-parity test
// enforces the match, so a skew is a build-time defect rather than a
// runtime error.
const APIVersion = 12

// Version is the bridge's own semantic version, populated at build time via
// ldflags. In development it defaults to v0.0.0-dev.
var Version = "v0.0.0-dev"

// WrapperVersion returns the bridge's semantic version.
func WrapperVersion() string {
	return Version
}

// BuildID returns the identification string embedded in the loaded library.
func (l *Lib) BuildID() (string, error) {
	v, err := l.Call("build_id")
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
