package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/gashtstore/admin/internal/models"
	"github.com/gashtstore/admin/internal/repo"
)

type StoreService struct {
	Repo     *repo.GormRepo
	Validate *validator.Validate
}

func New(r *repo.GormRepo) *StoreService {
	return &StoreService{
		Repo:     r,
		Validate: validator.New(),
	}
}

type ProductInput struct {
	Name        string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Category    string  `validate:"required"`
	Stock       int     `validate:"gte=0"`
	Description string
	// ImagePath is set only when a new image was uploaded; empty keeps the
	// previous path on edit.
	ImagePath string
}

func (s *StoreService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *StoreService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return prod, nil
}

func (s *StoreService) CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error) {
	if err := toValidationError(s.Validate.Struct(input)); err != nil {
		return nil, err
	}

	prod := models.Product{
		Name:        input.Name,
		Price:       input.Price,
		Category:    input.Category,
		Stock:       input.Stock,
		Description: input.Description,
		ImagePath:   input.ImagePath,
	}
	created, err := s.Repo.CreateProduct(ctx, &prod)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.LogActivity(ctx, "product_created", fmt.Sprintf("Product %q was created.", created.Name)); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *StoreService) EditProduct(ctx context.Context, id uint, input ProductInput) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := toValidationError(s.Validate.Struct(input)); err != nil {
		return nil, err
	}

	prod.Name = input.Name
	prod.Price = input.Price
	prod.Category = input.Category
	prod.Stock = input.Stock
	prod.Description = input.Description
	if input.ImagePath != "" {
		prod.ImagePath = input.ImagePath
	}

	if err := s.Repo.SaveProduct(ctx, prod); err != nil {
		return nil, err
	}

	if err := s.Repo.LogActivity(ctx, "product_edited", fmt.Sprintf("Product %q was updated.", prod.Name)); err != nil {
		return nil, err
	}
	return prod, nil
}

func (s *StoreService) DeleteProduct(ctx context.Context, id uint) error {
	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	refs, err := s.Repo.CountReferencingItems(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrProductInUse
	}

	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.Repo.LogActivity(ctx, "product_deleted", fmt.Sprintf("Product %q was deleted.", prod.Name))
}
