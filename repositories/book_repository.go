package repositories

import (
	"errors"

	"gorm.io/gorm"

	"gin-bookstore/models"
)

type IBookRepository interface {
	FindAll() (*[]models.Book, error)
	FindById(bookID uint) (*models.Book, error)
	Create(newBook models.Book) (*models.Book, error)
}

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) IBookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) FindAll() (*[]models.Book, error) {
	var books []models.Book
	result := r.db.Find(&books)
	if result.Error != nil {
		return nil, result.Error
	}
	return &books, nil
}

func (r *BookRepository) FindById(bookID uint) (*models.Book, error) {
	var book models.Book
	result := r.db.First(&book, "id = ?", bookID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, models.ErrBookNotFound
		}
		return nil, result.Error
	}
	return &book, nil
}

func (r *BookRepository) Create(newBook models.Book) (*models.Book, error) {
	result := r.db.Create(&newBook)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newBook, nil
}
