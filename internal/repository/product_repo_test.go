package repository_test

import (
	"fmt"

	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/domain"
)

func (s *RepositorySuite) saveProduct(name string, price, stock int64) *domain.Product {
	s.T().Helper()

	product, err := s.Products.Save(s.Ctx, &domain.Product{
		Name:        name,
		Description: "test product",
		Company:     "Acme",
		Price:       price,
		Stock:       stock,
	})
	s.Require().NoError(err)
	return product
}

func (s *RepositorySuite) TestProductSaveAndFind() {
	saved := s.saveProduct("Basmati Rice 5kg", 89900, 40)

	found, err := s.Products.FindByID(s.Ctx, saved.ProductID)
	s.Require().NoError(err)

	product, ok := found.Get()
	s.Require().True(ok)
	s.Require().Equal("Basmati Rice 5kg", product.Name)
	s.Require().Equal(int64(89900), product.Price)
	s.Require().Equal(int64(40), product.Stock)
}

func (s *RepositorySuite) TestProductPagination() {
	for i := 0; i < 5; i++ {
		s.saveProduct(fmt.Sprintf("Item %d", i), 100, 10)
	}

	count, err := s.Products.Count(s.Ctx)
	s.Require().NoError(err)
	s.Require().Equal(int64(5), count)

	page1, err := s.Products.FindPage(s.Ctx, 1, 2)
	s.Require().NoError(err)
	s.Require().Len(page1, 2)

	page2, err := s.Products.FindPage(s.Ctx, 2, 2)
	s.Require().NoError(err)
	s.Require().Len(page2, 2)

	page3, err := s.Products.FindPage(s.Ctx, 3, 2)
	s.Require().NoError(err)
	s.Require().Len(page3, 1)

	// A page past the end is empty, not an error.
	page4, err := s.Products.FindPage(s.Ctx, 4, 2)
	s.Require().NoError(err)
	s.Require().Empty(page4)
}

func (s *RepositorySuite) TestProductSearchByName() {
	s.saveProduct("Green Apple", 5000, 10)
	s.saveProduct("Apple Juice", 3000, 10)
	s.saveProduct("Banana", 1000, 10)

	results, err := s.Products.SearchByName(s.Ctx, "apple")
	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.Require().Equal("Apple Juice", results[0].Name)
	s.Require().Equal("Green Apple", results[1].Name)

	none, err := s.Products.SearchByName(s.Ctx, "mango")
	s.Require().NoError(err)
	s.Require().Empty(none)
}

func (s *RepositorySuite) TestProductUpdateStock() {
	saved := s.saveProduct("Stocked", 100, 50)

	updated, err := s.Products.UpdateStock(s.Ctx, saved.ProductID, 17)
	s.Require().NoError(err)
	s.Require().True(updated)

	found, err := s.Products.FindByID(s.Ctx, saved.ProductID)
	s.Require().NoError(err)

	product, ok := found.Get()
	s.Require().True(ok)
	s.Require().Equal(int64(17), product.Stock)

	updated, err = s.Products.UpdateStock(s.Ctx, 99999, 5)
	s.Require().NoError(err)
	s.Require().False(updated)
}

func (s *RepositorySuite) TestProductDelete() {
	saved := s.saveProduct("Short Lived", 100, 1)

	deleted, err := s.Products.Delete(s.Ctx, saved.ProductID)
	s.Require().NoError(err)
	s.Require().True(deleted)

	deleted, err = s.Products.Delete(s.Ctx, saved.ProductID)
	s.Require().NoError(err)
	s.Require().False(deleted)
}
