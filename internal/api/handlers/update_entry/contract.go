package update_entry

import "context"

type EntryService interface {
	SetConfirmationCode(ctx context.Context, id int64, code string) error
	SetReminded(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
