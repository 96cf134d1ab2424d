package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/domain"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/repository"
)

type ProductPage struct {
	Items    []domain.Product `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

type ImportReport struct {
	Imported int        `json:"imported"`
	Failed   []RowError `json:"failed,omitempty"`
}

type CatalogService interface {
	ListProducts(ctx context.Context, page, pageSize int) (*ProductPage, error)
	SearchProducts(ctx context.Context, name string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) (bool, error)
	SetStock(ctx context.Context, productID, stock int64) (bool, error)
	// ImportCSV bulk-loads products. Rows that fail parsing are
	// reported per line and skipped; valid rows are still imported.
	ImportCSV(ctx context.Context, r io.Reader) (*ImportReport, error)
}

var csvHeaders = []string{"name", "description", "company", "price", "stock"}

type catalogService struct {
	productRepo repository.ProductRepository
	logger      *zap.Logger
}

func NewCatalogService(productRepo repository.ProductRepository, logger *zap.Logger) CatalogService {
	return &catalogService{productRepo: productRepo, logger: logger}
}

func (s *catalogService) ListProducts(ctx context.Context, page, pageSize int) (*ProductPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	items, err := s.productRepo.FindPage(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	total, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &ProductPage{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *catalogService) SearchProducts(ctx context.Context, name string) ([]domain.Product, error) {
	return s.productRepo.SearchByName(ctx, name)
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	found, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product, ok := found.Get()
	if !ok {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return s.productRepo.Save(ctx, product)
}

func (s *catalogService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return s.productRepo.Update(ctx, product)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	return s.productRepo.Delete(ctx, id)
}

func (s *catalogService) SetStock(ctx context.Context, productID, stock int64) (bool, error) {
	return s.productRepo.UpdateStock(ctx, productID, stock)
}

func (s *catalogService) ImportCSV(ctx context.Context, r io.Reader) (*ImportReport, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	if !validHeader(header) {
		return nil, fmt.Errorf("invalid CSV header, expected: %s", strings.Join(csvHeaders, ","))
	}

	report := &ImportReport{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.Failed = append(report.Failed, RowError{Line: line, Message: err.Error()})
			continue
		}

		product, err := parseProductRecord(record)
		if err != nil {
			report.Failed = append(report.Failed, RowError{Line: line, Message: err.Error()})
			continue
		}

		if _, err := s.productRepo.Save(ctx, product); err != nil {
			s.logger.Error("error importing product row", zap.Int("line", line), zap.Error(err))
			report.Failed = append(report.Failed, RowError{Line: line, Message: err.Error()})
			continue
		}
		report.Imported++
	}

	s.logger.Info("csv import finished",
		zap.Int("imported", report.Imported),
		zap.Int("failed", len(report.Failed)))
	return report, nil
}

func validHeader(actual []string) bool {
	if len(actual) != len(csvHeaders) {
		return false
	}
	trimmed := lo.Map(actual, func(h string, _ int) string {
		return strings.TrimSpace(h)
	})
	for i, expected := range csvHeaders {
		if !strings.EqualFold(expected, trimmed[i]) {
			return false
		}
	}
	return true
}

func parseProductRecord(record []string) (*domain.Product, error) {
	if len(record) != len(csvHeaders) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(csvHeaders), len(record))
	}

	name := strings.TrimSpace(record[0])
	if name == "" {
		return nil, fmt.Errorf("product name is required")
	}

	price, err := domain.ParseCents(record[3])
	if err != nil {
		return nil, fmt.Errorf("invalid price format: %s", record[3])
	}
	if price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	stock, err := strconv.ParseInt(strings.TrimSpace(record[4]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid stock format: %s", record[4])
	}
	if stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}

	return &domain.Product{
		Name:        name,
		Description: strings.TrimSpace(record[1]),
		Company:     strings.TrimSpace(record[2]),
		Price:       price,
		Stock:       stock,
	}, nil
}
