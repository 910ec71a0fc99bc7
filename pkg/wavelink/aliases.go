package wavelink

import "github.com/wavelink-audio/wavelink-go/internal/native"

// Type aliases re-exported from the bindings layer so callers never import
// internal packages directly.

// Status is a value from the SDK's wl_error vocabulary.
type Status = native.Status

// CallSpec is the static descriptor for one native entry point.
type CallSpec = native.CallSpec

// Status symbols re-exported for convenience.
const (
	StatusOK                      = native.StatusOK
	StatusBadAPIVersion           = native.StatusBadAPIVersion
	StatusAPIInitializationFailed = native.StatusAPIInitializationFailed
	StatusTrackNotPlayable        = native.StatusTrackNotPlayable
	StatusBadApplicationKey       = native.StatusBadApplicationKey
	StatusBadUsernameOrPassword   = native.StatusBadUsernameOrPassword
	StatusUserBanned              = native.StatusUserBanned
	StatusUnableToContactServer   = native.StatusUnableToContactServer
	StatusClientTooOld            = native.StatusClientTooOld
	StatusOtherPermanent          = native.StatusOtherPermanent
	StatusBadUserAgent            = native.StatusBadUserAgent
	StatusMissingCallback         = native.StatusMissingCallback
	StatusInvalidIndata           = native.StatusInvalidIndata
	StatusIndexOutOfRange         = native.StatusIndexOutOfRange
	StatusUserNeedsPremium        = native.StatusUserNeedsPremium
	StatusOtherTransient          = native.StatusOtherTransient
	StatusIsLoading               = native.StatusIsLoading
	StatusNoStreamAvailable       = native.StatusNoStreamAvailable
	StatusPermissionDenied        = native.StatusPermissionDenied
	StatusInboxIsFull             = native.StatusInboxIsFull
	StatusNoCache                 = native.StatusNoCache
	StatusNoSuchUser              = native.StatusNoSuchUser
	StatusNoCredentials           = native.StatusNoCredentials
	StatusNetworkDisabled         = native.StatusNetworkDisabled
	StatusInvalidDeviceID         = native.StatusInvalidDeviceID
	StatusCantOpenTraceFile       = native.StatusCantOpenTraceFile
	StatusApplicationBanned       = native.StatusApplicationBanned
	StatusOfflineTooManyTracks    = native.StatusOfflineTooManyTracks
	StatusOfflineDiskCache        = native.StatusOfflineDiskCache
	StatusOfflineExpired          = native.StatusOfflineExpired
	StatusOfflineNotAllowed       = native.StatusOfflineNotAllowed
	StatusOfflineLicenseLost      = native.StatusOfflineLicenseLost
	StatusOfflineLicenseError     = native.StatusOfflineLicenseError
)
