package logx

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// The providers let the report builder read coded-error details without
// depending on the package that implements them.
type codeTextProvider interface {
	CodeText() string
}

type pathProvider interface {
	Path() string
}

type lineProvider interface {
	Line() int
}

// ErrorReport is a flattened view of a load failure, built once at the
// reporting boundary so every failure prints the same way.
type ErrorReport struct {
	Error      string
	Code       string
	Path       string
	Line       int
	CauseChain []string
}

// BuildErrorReport extracts the failure class, file location and cause
// chain from err.
func BuildErrorReport(err error) ErrorReport {
	if err == nil {
		return ErrorReport{}
	}

	out := ErrorReport{
		Error: err.Error(),
	}

	var cp codeTextProvider
	if errors.As(err, &cp) {
		out.Code = cp.CodeText()
	}
	var pp pathProvider
	if errors.As(err, &pp) {
		out.Path = pp.Path()
	}
	var lp lineProvider
	if errors.As(err, &lp) {
		out.Line = lp.Line()
	}
	out.CauseChain = buildCauseChain(err, 20)
	return out
}

// Fields renders the report as structured fields, skipping what is absent.
func (r ErrorReport) Fields() []zap.Field {
	fields := make([]zap.Field, 0, 5)
	fields = append(fields, zap.String("error", r.Error))
	if r.Code != "" {
		fields = append(fields, zap.String("code", r.Code))
	}
	if r.Path != "" {
		fields = append(fields, zap.String("path", r.Path))
	}
	if r.Line > 0 {
		fields = append(fields, zap.Int("line", r.Line))
	}
	if len(r.CauseChain) > 0 {
		fields = append(fields, zap.Strings("cause_chain", r.CauseChain))
	}
	return fields
}

func buildCauseChain(err error, maxDepth int) []string {
	if err == nil || maxDepth <= 0 {
		return nil
	}
	out := make([]string, 0, 4)
	cur := errors.Unwrap(err)
	for i := 0; i < maxDepth && cur != nil; i++ {
		out = append(out, fmt.Sprintf("%T: %v", cur, cur))
		cur = errors.Unwrap(cur)
	}
	return out
}
