package service

import (
	"coffeeos/internal/common/events"
	"coffeeos/internal/common/logger"
	"coffeeos/internal/microservices/pos/repository"
)

type Service struct {
	Orders    OrderServiceInterface
	Tables    TableServiceInterface
	Menu      MenuServiceInterface
	Directory DirectoryServiceInterface
}

func New(
	orders repository.OrderRepositoryInterface,
	tables repository.TableRepositoryInterface,
	menu repository.MenuRepositoryInterface,
	directory repository.DirectoryRepositoryInterface,
	pub events.Publisher,
	lg *logger.Logger,
) *Service {
	return &Service{
		Orders:    NewOrderService(orders, menu, pub, lg),
		Tables:    NewTableService(tables, pub, lg),
		Menu:      NewMenuService(menu),
		Directory: NewDirectoryService(directory),
	}
}
