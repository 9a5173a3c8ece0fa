package transport

import "errors"

// ErrInvalidProxyAddress is returned when the proxy address is not in
// "host:port" format.
var ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")
