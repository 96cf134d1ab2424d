package handler

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/domain"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/service"
	"github.com/saitejaboorla/Online-Grocery-Bolt/pkg/utils"
)

type ProductHandler struct {
	catalog  service.CatalogService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewProductHandler(catalog service.CatalogService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		catalog:  catalog,
		validate: validator.New(),
		logger:   logger,
	}
}

type ProductInput struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=1000"`
	Company     string `json:"company" validate:"max=100"`
	Price       string `json:"price" validate:"required"`
	Stock       int64  `json:"stock" validate:"gte=0"`
}

type StockInput struct {
	Stock int64 `json:"stock" validate:"gte=0"`
}

func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	if q := c.Query("q"); q != "" {
		products, err := h.catalog.SearchProducts(c.UserContext(), q)
		if err != nil {
			h.logger.Warn("product search failed", zap.String("q", q), zap.Error(err))
			return serviceError(c, err)
		}

		return c.JSON(fiber.Map{"items": products})
	}

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	result, err := h.catalog.ListProducts(c.UserContext(), page, pageSize)
	if err != nil {
		h.logger.Warn("list products failed", zap.Error(err))
		return serviceError(c, err)
	}

	return c.JSON(result)
}

func (h *ProductHandler) FindByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id is invalid"})
	}

	product, err := h.catalog.GetProduct(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		}

		h.logger.Warn("get product failed", zap.Int64("product_id", id), zap.Error(err))
		return serviceError(c, err)
	}

	return c.JSON(product)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	input := new(ProductInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": utils.FormatValidationError(err),
		})
	}

	price, err := domain.ParseCents(input.Price)
	if err != nil || price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "price is invalid"})
	}

	product, err := h.catalog.CreateProduct(c.UserContext(), &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Company:     input.Company,
		Price:       price,
		Stock:       input.Stock,
	})

	if err != nil {
		h.logger.Warn("create product failed", zap.String("name", input.Name), zap.Error(err))
		return serviceError(c, err)
	}

	h.logger.Info("product created",
		zap.Int64("product_id", product.ProductID),
		zap.String("name", product.Name),
	)

	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id is invalid"})
	}

	input := new(ProductInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": utils.FormatValidationError(err),
		})
	}

	price, err := domain.ParseCents(input.Price)
	if err != nil || price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "price is invalid"})
	}

	existing, err := h.catalog.GetProduct(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		}
		return serviceError(c, err)
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Company = input.Company
	existing.Price = price
	existing.Stock = input.Stock

	product, err := h.catalog.UpdateProduct(c.UserContext(), existing)
	if err != nil {
		h.logger.Warn("update product failed", zap.Int64("product_id", id), zap.Error(err))
		return serviceError(c, err)
	}

	return c.JSON(product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id is invalid"})
	}

	deleted, err := h.catalog.DeleteProduct(c.UserContext(), id)
	if err != nil {
		h.logger.Warn("delete product failed", zap.Int64("product_id", id), zap.Error(err))
		return serviceError(c, err)
	}

	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *ProductHandler) SetStock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id is invalid"})
	}

	input := new(StockInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": utils.FormatValidationError(err),
		})
	}

	updated, err := h.catalog.SetStock(c.UserContext(), id, input.Stock)
	if err != nil {
		h.logger.Warn("set stock failed", zap.Int64("product_id", id), zap.Error(err))
		return serviceError(c, err)
	}

	if !updated {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// ImportCSV accepts a multipart upload under the "file" field and
// bulk-loads products from it.
func (h *ProductHandler) ImportCSV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Warn("failed to open uploaded file", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot read file"})
	}
	defer file.Close()

	report, err := h.catalog.ImportCSV(c.UserContext(), file)
	if err != nil {
		h.logger.Warn("csv import failed",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err),
		)

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	h.logger.Info("csv import finished",
		zap.String("filename", fileHeader.Filename),
		zap.Int("imported", report.Imported),
		zap.Int("failed", len(report.Failed)),
	)

	return c.JSON(report)
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
