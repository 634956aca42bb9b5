package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Recover creates middleware that contains panics from a single update so
// one misbehaving workflow never takes the dispatcher down.
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Recovered from handler panic",
						zap.Any("panic", r),
						zap.Int64("user_id", senderID(c)),
					)
				}
			}()
			return next(c)
		}
	}
}

// RequestLogger creates middleware that logs every dispatched update.
func RequestLogger(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			err := next(c)
			if err != nil {
				logger.Error("Update handling failed",
					zap.Int64("user_id", senderID(c)),
					zap.Error(err),
				)
			}
			return err
		}
	}
}

func senderID(c tele.Context) int64 {
	if sender := c.Sender(); sender != nil {
		return sender.ID
	}
	return 0
}
