package services

import (
	"gin-bookstore/models"
	"gin-bookstore/repositories"
)

type IOrderService interface {
	FindByUser(userID uint) (*[]models.Order, error)
	FindAll() (*[]models.Order, error)
	FindWithItems(orderID uint) (*models.Order, error)
}

type OrderService struct {
	repository repositories.IOrderRepository
}

func NewOrderService(repository repositories.IOrderRepository) IOrderService {
	return &OrderService{repository: repository}
}

func (s *OrderService) FindByUser(userID uint) (*[]models.Order, error) {
	return s.repository.FindByUser(userID)
}

func (s *OrderService) FindAll() (*[]models.Order, error) {
	return s.repository.FindAll()
}

func (s *OrderService) FindWithItems(orderID uint) (*models.Order, error) {
	return s.repository.FindWithItems(orderID)
}
