package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	DBConnError     = 3
	DecodeError     = 4
	CopyError       = 5
	PublishError    = 6
)
