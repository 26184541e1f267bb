package errno

const (
	StatusOK = 10000
)

const (
	InternalError = 50000 + iota
	InvalidParam
	NoJsonFound
	MalformedJson
	MissingField
	UnknownCategory
	InvalidFeedback
	SessionNotFound
)

const (
	TransportError = 60000 + iota
	LogWriteError
)
