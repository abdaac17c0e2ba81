package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func init() {
	// цена в JSON числом, а не строкой
	decimal.MarshalJSONWithoutQuotes = true
}

// Genders — допустимые значения Product.Gender
var Genders = []string{"men", "women", "kid", "unisex"}

// Product — таблица products
type Product struct {
	ID          string                      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string                      `gorm:"type:text;not null;uniqueIndex" json:"title"`
	Price       decimal.Decimal             `gorm:"type:decimal(12,2);not null" json:"price"`
	Description string                      `gorm:"type:text" json:"description"`
	Slug        string                      `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	Stock       int                         `gorm:"not null;default:0" json:"stock"`
	Sizes       datatypes.JSONSlice[string] `json:"sizes"`
	Gender      string                      `gorm:"type:varchar(16)" json:"gender"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Images      []ProductImage              `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Base
}

// ProductImage — таблица product_images, принадлежит ровно одному Product
type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	URL       string `gorm:"type:text;not null" json:"url"`
	ProductID string `gorm:"type:uuid;not null;index" json:"-"`
	Base
}

// BeforeCreate выдаёт новый UUID, если id не задан
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// BeforeSave срабатывает и на insert, и на update
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = p.Title
	}
	p.Slug = NormalizeSlug(p.Slug)
	if p.Tags == nil {
		p.Tags = datatypes.JSONSlice[string]{}
	}
	if p.Sizes == nil {
		p.Sizes = datatypes.JSONSlice[string]{}
	}
	return nil
}

// NormalizeSlug: нижний регистр, пробелы -> "_", апострофы выкидываем.
func NormalizeSlug(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, "'", "")
}

// ImageURLs возвращает адреса картинок в порядке хранения
func (p *Product) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	return urls
}
