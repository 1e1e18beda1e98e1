package checks

import (
	"go.uber.org/zap"

	"rncheck/internal/domain"
)

// Printer renders the run as it happens
type Printer interface {
	Banner(suite string)
	CategoryStart(cat *domain.Category, banner string)
	Record(cat *domain.Category, d domain.Detail)
	CategoryEnd(cat *domain.Category)
}

// Progress is advanced once per finished category
type Progress interface {
	Advance(title string, cat *domain.Category)
	Finish()
}

type nopPrinter struct{}

func (nopPrinter) Banner(string)                          {}
func (nopPrinter) CategoryStart(*domain.Category, string) {}
func (nopPrinter) Record(*domain.Category, domain.Detail) {}
func (nopPrinter) CategoryEnd(*domain.Category)           {}

// recorder appends detail records to one category and echoes them
type recorder struct {
	cat     *domain.Category
	printer Printer
	logger  *zap.Logger
}

func (r *recorder) log(test string, outcome domain.Outcome, message string) {
	r.cat.Add(test, outcome, message)
	d := r.cat.Details[len(r.cat.Details)-1]
	r.printer.Record(r.cat, d)
	r.logger.Debug("check recorded",
		zap.String("category", r.cat.Key),
		zap.String("test", test),
		zap.String("outcome", string(outcome)),
		zap.String("details", message),
	)
}

func (r *recorder) Pass(test, message string) { r.log(test, domain.Pass, message) }
func (r *recorder) Warn(test, message string) { r.log(test, domain.Warn, message) }

// Fail records a failure and returns false so checks can `return rec.Fail(...)`
func (r *recorder) Fail(test, message string) bool {
	r.log(test, domain.Fail, message)
	return false
}
