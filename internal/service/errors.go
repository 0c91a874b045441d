package service

import (
	"errors"

	"aura_display/internal/httpclient"
)

// Failure taxonomy for external data. All of them are soft: the previous
// display state stays on screen.
var (
	ErrNetworkUnavailable = errors.New("network unavailable")
	ErrFetchFailed        = errors.New("fetch failed")
	ErrParseFailed        = errors.New("parse failed")
	ErrConfigInvalid      = errors.New("config invalid")
)

// classifyFetchError maps a client error onto ErrParseFailed or ErrFetchFailed.
func classifyFetchError(err error) error {
	if errors.Is(err, httpclient.ErrDecode) {
		return errors.Join(ErrParseFailed, err)
	}
	return errors.Join(ErrFetchFailed, err)
}
