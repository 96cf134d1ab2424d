package service_test

import (
	"strings"

	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/domain"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/service"
)

func (s *ServiceSuite) TestListProducts_Defaults() {
	for _, name := range []string{"One", "Two", "Three"} {
		_, err := s.CatalogService.CreateProduct(s.Ctx, &domain.Product{Name: name, Price: 100, Stock: 1})
		s.Require().NoError(err)
	}

	// Out-of-range paging falls back to the first page.
	page, err := s.CatalogService.ListProducts(s.Ctx, 0, -1)
	s.Require().NoError(err)
	s.Require().Equal(1, page.Page)
	s.Require().Equal(20, page.PageSize)
	s.Require().Equal(int64(3), page.Total)
	s.Require().Len(page.Items, 3)
}

func (s *ServiceSuite) TestGetProduct_NotFound() {
	_, err := s.CatalogService.GetProduct(s.Ctx, 99999)
	s.Require().ErrorIs(err, service.ErrProductNotFound)
}

func (s *ServiceSuite) TestImportCSV_Success() {
	csv := strings.Join([]string{
		"name,description,company,price,stock",
		"Whole Milk 1L,Fresh dairy milk,DairyCo,1.25,200",
		"Brown Bread,Whole wheat loaf,BakeHouse,2.50,80",
	}, "\n")

	report, err := s.CatalogService.ImportCSV(s.Ctx, strings.NewReader(csv))
	s.Require().NoError(err)
	s.Require().Equal(2, report.Imported)
	s.Require().Empty(report.Failed)

	results, err := s.CatalogService.SearchProducts(s.Ctx, "milk")
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Require().Equal(int64(125), results[0].Price)
	s.Require().Equal(int64(200), results[0].Stock)
}

func (s *ServiceSuite) TestImportCSV_BadRowsReported() {
	csv := strings.Join([]string{
		"name,description,company,price,stock",
		"Good Item,desc,Acme,3.00,10",
		",missing name,Acme,1.00,5",
		"Bad Price,desc,Acme,abc,5",
		"Negative Stock,desc,Acme,1.00,-2",
	}, "\n")

	report, err := s.CatalogService.ImportCSV(s.Ctx, strings.NewReader(csv))
	s.Require().NoError(err)
	s.Require().Equal(1, report.Imported)
	s.Require().Len(report.Failed, 3)

	// Line numbers count from the row after the header.
	s.Require().Equal(3, report.Failed[0].Line)
	s.Require().Equal(4, report.Failed[1].Line)
	s.Require().Equal(5, report.Failed[2].Line)
}

func (s *ServiceSuite) TestImportCSV_BadHeaderRejected() {
	csv := "title,description,price\nX,Y,1.00\n"

	_, err := s.CatalogService.ImportCSV(s.Ctx, strings.NewReader(csv))
	s.Require().Error(err)
	s.Require().ErrorContains(err, "invalid CSV header")
}

func (s *ServiceSuite) TestSetStock() {
	product, err := s.CatalogService.CreateProduct(s.Ctx, &domain.Product{Name: "Stocked", Price: 100, Stock: 5})
	s.Require().NoError(err)

	updated, err := s.CatalogService.SetStock(s.Ctx, product.ProductID, 42)
	s.Require().NoError(err)
	s.Require().True(updated)

	got, err := s.CatalogService.GetProduct(s.Ctx, product.ProductID)
	s.Require().NoError(err)
	s.Require().Equal(int64(42), got.Stock)
}
