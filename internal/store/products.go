package store

import (
	"time"

	"github.com/akgundogan/farmgate-backend/internal/models"
)

// ProductsByFarmer returns the farmer's products in insertion order.
func (s *Store) ProductsByFarmer(farmerID int64) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0)
	for _, p := range s.products {
		if p.FarmerID == farmerID {
			out = append(out, p)
		}
	}
	return out
}

// CreateProduct assigns the next id and creation time, then appends.
func (s *Store) CreateProduct(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextProductID
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = nil
	s.nextProductID++
	s.products = append(s.products, p)
	return p
}

// UpdateProduct replaces the mutable fields of the product matching both id and
// farmerID. A miss on either is ErrProductNotFound: editing another farmer's
// product is indistinguishable from editing a missing one.
func (s *Store) UpdateProduct(farmerID, id int64, upd models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id || s.products[i].FarmerID != farmerID {
			continue
		}
		now := time.Now().UTC()
		p := &s.products[i]
		p.Name = upd.Name
		p.Description = upd.Description
		p.Price = upd.Price
		p.Category = upd.Category
		p.Stock = upd.Stock
		p.MinStock = upd.MinStock
		p.Image = upd.Image
		p.UpdatedAt = &now
		return *p, nil
	}
	return models.Product{}, ErrProductNotFound
}

// DeleteProduct removes the matching product by position.
func (s *Store) DeleteProduct(farmerID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id && s.products[i].FarmerID == farmerID {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}
