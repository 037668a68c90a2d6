package chat

import "errors"

var (
	// ErrDuplicateID means the transport handed out an id that is still
	// live. Fatal to that connection attempt only.
	ErrDuplicateID = errors.New("duplicate connection id")
	// ErrInvalidJoin means a join carried an empty room or username.
	ErrInvalidJoin = errors.New("invalid join: room and username are required")
	// ErrUnknownConnection means an event referenced an id absent from
	// the registry. Should be unreachable under a correct transport.
	ErrUnknownConnection = errors.New("unknown connection")
)
