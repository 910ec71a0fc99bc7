package native

import "fmt"

// Status is a value from the wl_error vocabulary. The native library folds
// call outcomes into this enum and returns it as a plain integer, so the
// bridge must treat any out-of-vocabulary value as unrecognized rather than
// inventing a meaning for it.
type Status int32

const (
	StatusOK                      Status = 0
	StatusBadAPIVersion           Status = 1
	StatusAPIInitializationFailed Status = 2
	StatusTrackNotPlayable        Status = 3
	StatusBadApplicationKey       Status = 4
	StatusBadUsernameOrPassword   Status = 5
	StatusUserBanned              Status = 6
	StatusUnableToContactServer   Status = 7
	StatusClientTooOld            Status = 8
	StatusOtherPermanent          Status = 9
	StatusBadUserAgent            Status = 10
	StatusMissingCallback         Status = 11
	StatusInvalidIndata           Status = 12
	StatusIndexOutOfRange         Status = 13
	StatusUserNeedsPremium        Status = 14
	StatusOtherTransient          Status = 15
	StatusIsLoading               Status = 16
	StatusNoStreamAvailable       Status = 17
	StatusPermissionDenied        Status = 18
	StatusInboxIsFull             Status = 19
	StatusNoCache                 Status = 20
	StatusNoSuchUser              Status = 21
	StatusNoCredentials           Status = 22
	StatusNetworkDisabled         Status = 23
	StatusInvalidDeviceID         Status = 24
	StatusCantOpenTraceFile       Status = 25
	StatusApplicationBanned       Status = 26

	// 27-30 are reserved by the SDK header.

	StatusOfflineTooManyTracks Status = 31
	StatusOfflineDiskCache     Status = 32
	StatusOfflineExpired       Status = 33
	StatusOfflineNotAllowed    Status = 34
	StatusOfflineLicenseLost   Status = 35
	StatusOfflineLicenseError  Status = 36
)

// statusNames maps each recognized status to the canonical name declared in
// the SDK header (WL_ERROR_<name>). The table is the single source of truth
// for rendering; a header-parity test keeps it aligned with wavelink.h.
var statusNames = map[Status]string{
	StatusOK:                      "OK",
	StatusBadAPIVersion:           "BAD_API_VERSION",
	StatusAPIInitializationFailed: "API_INITIALIZATION_FAILED",
	StatusTrackNotPlayable:        "TRACK_NOT_PLAYABLE",
	StatusBadApplicationKey:       "BAD_APPLICATION_KEY",
	StatusBadUsernameOrPassword:   "BAD_USERNAME_OR_PASSWORD",
	StatusUserBanned:              "USER_BANNED",
	StatusUnableToContactServer:   "UNABLE_TO_CONTACT_SERVER",
	StatusClientTooOld:            "CLIENT_TOO_OLD",
	StatusOtherPermanent:          "OTHER_PERMANENT",
	StatusBadUserAgent:            "BAD_USER_AGENT",
	StatusMissingCallback:         "MISSING_CALLBACK",
	StatusInvalidIndata:           "INVALID_INDATA",
	StatusIndexOutOfRange:         "INDEX_OUT_OF_RANGE",
	StatusUserNeedsPremium:        "USER_NEEDS_PREMIUM",
	StatusOtherTransient:          "OTHER_TRANSIENT",
	StatusIsLoading:               "IS_LOADING",
	StatusNoStreamAvailable:       "NO_STREAM_AVAILABLE",
	StatusPermissionDenied:        "PERMISSION_DENIED",
	StatusInboxIsFull:             "INBOX_IS_FULL",
	StatusNoCache:                 "NO_CACHE",
	StatusNoSuchUser:              "NO_SUCH_USER",
	StatusNoCredentials:           "NO_CREDENTIALS",
	StatusNetworkDisabled:         "NETWORK_DISABLED",
	StatusInvalidDeviceID:         "INVALID_DEVICE_ID",
	StatusCantOpenTraceFile:       "CANT_OPEN_TRACE_FILE",
	StatusApplicationBanned:       "APPLICATION_BANNED",
	StatusOfflineTooManyTracks:    "OFFLINE_TOO_MANY_TRACKS",
	StatusOfflineDiskCache:        "OFFLINE_DISK_CACHE",
	StatusOfflineExpired:          "OFFLINE_EXPIRED",
	StatusOfflineNotAllowed:       "OFFLINE_NOT_ALLOWED",
	StatusOfflineLicenseLost:      "OFFLINE_LICENSE_LOST",
	StatusOfflineLicenseError:     "OFFLINE_LICENSE_ERROR",
}

// Recognized reports whether s is part of the SDK's declared vocabulary.
func (s Status) Recognized() bool {
	_, ok := statusNames[s]
	return ok
}

// Canonical returns the UPPER_SNAKE name the SDK header declares for s.
// Unrecognized values render as UNRECOGNIZED(<n>) so they stay identifiable
// in error messages without being mistaken for a declared symbol.
func (s Status) Canonical() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("UNRECOGNIZED(%d)", int32(s))
}

func (s Status) String() string { return s.Canonical() }
