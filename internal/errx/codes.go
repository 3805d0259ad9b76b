package errx

// The four failure classes of the loading pipeline.
const (
	// CodeIO means a file could not be opened or read, or a manifest path
	// cannot anchor relative resolution.
	CodeIO Code = "IO_FAILED"
	// CodeParse means a scalar, clause token, or delimited row is malformed.
	CodeParse Code = "PARSE_FAILED"
	// CodeDecode means input parsed but has the wrong shape for its entity,
	// such as a missing key, a repeated plain key, or wrong arity.
	CodeDecode Code = "DECODE_FAILED"
	// CodeValidation means decoded data breaks a domain rule.
	CodeValidation Code = "VALIDATION_FAILED"
)

// Sentinels for errors.Is class checks.
var (
	ErrIO         = New(CodeIO, "")
	ErrParse      = New(CodeParse, "")
	ErrDecode     = New(CodeDecode, "")
	ErrValidation = New(CodeValidation, "")
)

// IO returns a CodeIO error.
func IO(msg string) *Error { return New(CodeIO, msg) }

// IOf returns a formatted CodeIO error.
func IOf(format string, args ...any) *Error { return Newf(CodeIO, format, args...) }

// Parse returns a CodeParse error.
func Parse(msg string) *Error { return New(CodeParse, msg) }

// Parsef returns a formatted CodeParse error.
func Parsef(format string, args ...any) *Error { return Newf(CodeParse, format, args...) }

// Decode returns a CodeDecode error.
func Decode(msg string) *Error { return New(CodeDecode, msg) }

// Decodef returns a formatted CodeDecode error.
func Decodef(format string, args ...any) *Error { return Newf(CodeDecode, format, args...) }

// Validation returns a CodeValidation error.
func Validation(msg string) *Error { return New(CodeValidation, msg) }

// Validationf returns a formatted CodeValidation error.
func Validationf(format string, args ...any) *Error { return Newf(CodeValidation, format, args...) }
