package products

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"catalog/internal/models"
)

const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

// Pagination — параметры списка (?limit=&offset=)
type Pagination struct {
	Limit  int `form:"limit" binding:"omitempty,min=1"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

func (p Pagination) withDefaults() Pagination {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Offset < 0 {
		p.Offset = DefaultOffset
	}
	return p
}

// CreateInput — поля нового товара. Images — список URL.
type CreateInput struct {
	Title       string          `json:"title" yaml:"title" binding:"required"`
	Slug        string          `json:"slug" yaml:"slug"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Description string          `json:"description" yaml:"description"`
	Stock       int             `json:"stock" yaml:"stock" binding:"min=0"`
	Sizes       []string        `json:"sizes" yaml:"sizes" binding:"required"`
	Gender      string          `json:"gender" yaml:"gender" binding:"required,oneof=men women kid unisex"`
	Tags        []string        `json:"tags" yaml:"tags"`
	Images      []string        `json:"images" yaml:"images"`
}

func (in CreateInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return badRequest("title should not be empty")
	}
	if in.Price.IsNegative() {
		return badRequest("price must not be negative")
	}
	if in.Stock < 0 {
		return badRequest("stock must not be negative")
	}
	return validateGender(in.Gender)
}

// UpdateInput — частичное обновление: nil-поле не трогаем.
// Images == nil оставляет картинки как есть, пустой список удаляет все.
type UpdateInput struct {
	Title       *string          `json:"title" binding:"omitempty,min=1"`
	Slug        *string          `json:"slug"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Stock       *int             `json:"stock" binding:"omitempty,min=0"`
	Sizes       []string         `json:"sizes"`
	Gender      *string          `json:"gender" binding:"omitempty,oneof=men women kid unisex"`
	Tags        []string         `json:"tags"`
	Images      []string         `json:"images"`
}

func (in UpdateInput) validate() error {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return badRequest("title should not be empty")
	}
	if in.Price != nil && in.Price.IsNegative() {
		return badRequest("price must not be negative")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return badRequest("stock must not be negative")
	}
	if in.Gender != nil {
		return validateGender(*in.Gender)
	}
	return nil
}

// apply накладывает заданные поля на загруженную строку
func (in UpdateInput) apply(p *models.Product) {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Slug != nil {
		p.Slug = *in.Slug
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Sizes != nil {
		p.Sizes = in.Sizes
	}
	if in.Gender != nil {
		p.Gender = *in.Gender
	}
	if in.Tags != nil {
		p.Tags = in.Tags
	}
}

func validateGender(g string) error {
	if g == "" || slices.Contains(models.Genders, g) {
		return nil
	}
	return badRequest("gender must be one of: " + strings.Join(models.Genders, ", "))
}

// ProductView — товар с картинками в виде простых URL
type ProductView struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Slug        string          `json:"slug"`
	Stock       int             `json:"stock"`
	Sizes       []string        `json:"sizes"`
	Gender      string          `json:"gender"`
	Tags        []string        `json:"tags"`
	Images      []string        `json:"images"`
}

func plain(p *models.Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Slug:        p.Slug,
		Stock:       p.Stock,
		Sizes:       append([]string{}, p.Sizes...),
		Gender:      p.Gender,
		Tags:        append([]string{}, p.Tags...),
		Images:      p.ImageURLs(),
	}
}

func newImages(urls []string) []models.ProductImage {
	images := make([]models.ProductImage, 0, len(urls))
	for _, u := range urls {
		images = append(images, models.ProductImage{URL: u})
	}
	return images
}
