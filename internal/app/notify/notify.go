package notify

import (
	"context"

	"coffeeos/internal/common/logger"
	"coffeeos/internal/connections/rabbitmq"
	"coffeeos/internal/microservices/notificator/service"
)

func Run(ctx context.Context, rmq *rabbitmq.Client, lg *logger.Logger) error {
	return service.NewNotificatorService(rmq, lg).Run(ctx)
}
