package notify

import (
	"context"

	"go.uber.org/zap"
)

// SavedMessage - подтверждение после успешного сохранения
const SavedMessage = "Changes saved successfully"

// Notifier - канал кратковременных уведомлений пользователю
type Notifier interface {
	Notify(ctx context.Context, message string)
}

type logNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(_ context.Context, message string) {
	n.logger.Info("notification", zap.String("message", message))
}
