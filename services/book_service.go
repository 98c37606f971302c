package services

import (
	"gin-bookstore/dto"
	"gin-bookstore/models"
	"gin-bookstore/repositories"
)

type IBookService interface {
	FindAll() (*[]models.Book, error)
	FindById(bookID uint) (*models.Book, error)
	Create(createBookInput dto.CreateBookInput) (*models.Book, error)
}

type BookService struct {
	repository repositories.IBookRepository
}

func NewBookService(repository repositories.IBookRepository) IBookService {
	return &BookService{repository: repository}
}

func (s *BookService) FindAll() (*[]models.Book, error) {
	return s.repository.FindAll()
}

func (s *BookService) FindById(bookID uint) (*models.Book, error) {
	return s.repository.FindById(bookID)
}

func (s *BookService) Create(createBookInput dto.CreateBookInput) (*models.Book, error) {
	newBook := models.Book{
		Title:  createBookInput.Title,
		Author: createBookInput.Author,
		Price:  createBookInput.Price,
		Stock:  createBookInput.Stock,
	}
	return s.repository.Create(newBook)
}
