package cancel_selection

import "context"

type SelectionsService interface {
	Cancel(ctx context.Context, selectionID string, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
