package services

import (
	"github.com/akgundogan/farmgate-backend/internal/dto"
	"github.com/akgundogan/farmgate-backend/internal/models"
	"github.com/akgundogan/farmgate-backend/internal/store"
)

type ProductService struct {
	store *store.Store
}

func NewProductService(st *store.Store) *ProductService {
	return &ProductService{store: st}
}

func (s *ProductService) ListByFarmer(farmerID int64) []models.Product {
	return s.store.ProductsByFarmer(farmerID)
}

func (s *ProductService) Create(farmerID int64, req *dto.ProductRequest) models.Product {
	return s.store.CreateProduct(models.Product{
		FarmerID:    farmerID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		Image:       req.Image,
	})
}

func (s *ProductService) Update(farmerID, id int64, req *dto.ProductRequest) (models.Product, error) {
	return s.store.UpdateProduct(farmerID, id, models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		Image:       req.Image,
	})
}

func (s *ProductService) Delete(farmerID, id int64) error {
	return s.store.DeleteProduct(farmerID, id)
}
