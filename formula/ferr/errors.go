package ferr

import (
	"fmt"
	"log/slog"
)

// Errors accumulates the diagnostics produced while checking one formula.
// A nil *Errors is a valid, empty collection.
type Errors struct {
	errs []Diagnostic
}

func (r *Errors) With(err ...Diagnostic) *Errors {
	if r == nil {
		return &Errors{errs: err}
	}
	r.errs = append(r.errs, err...)
	return r
}

func (r *Errors) Merge(err *Errors) *Errors {
	if r == nil {
		return err
	}
	if err == nil {
		return r
	}
	if len(err.errs) == 0 {
		return r
	}
	return r.With(err.errs...)
}

func (r *Errors) Errors() []Diagnostic {
	if r == nil {
		return nil
	}
	return r.errs
}

// HasError reports whether any diagnostic of SeverityError was recorded
func (r *Errors) HasError() bool {
	if r == nil {
		return false
	}
	for _, e := range r.errs {
		if e.Severity() == SeverityError {
			return true
		}
	}
	return false
}

func (r *Errors) Len() int {
	if r == nil {
		return 0
	}
	return len(r.errs)
}

// Messages returns the text of every diagnostic, in the order they were recorded
func (r *Errors) Messages() []string {
	msgs := make([]string, 0, r.Len())
	for _, e := range r.Errors() {
		msgs = append(msgs, e.Error())
	}
	return msgs
}

func (r *Errors) LogValue() slog.Value {
	var vals []slog.Attr
	for i, v := range r.Errors() {
		vals = append(vals, slog.Attr{
			Key: fmt.Sprint("e", i),
			Value: slog.GroupValue(
				slog.Attr{
					Key:   "msg",
					Value: slog.StringValue(FormatWithCode(v)),
				},
			),
		})
	}
	return slog.GroupValue(vals...)
}
