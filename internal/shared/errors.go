package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Provider and API errors
	ErrAPIRequest       = fmt.Errorf("API request failed")
	ErrInvalidResponse  = fmt.Errorf("invalid provider response")
	ErrPlaylistNotFound = fmt.Errorf("playlist not found")
	ErrEmptyPlaylist    = fmt.Errorf("playlist is empty or private")
	ErrArtistNotFound   = fmt.Errorf("artist not found")

	// Policy errors
	//
	// ErrRateLimited is a rejection, not a transient fault; WithRetry never retries it.
	ErrRateLimited = fmt.Errorf("too many requests")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
