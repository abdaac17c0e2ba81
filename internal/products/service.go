// Package products содержит операции каталога товаров поверх gorm.
package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"catalog/internal/models"
)

// Service — доступ к товарам и их картинкам
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService — логгер получает имя "products"
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger.Named("products")}
}

const maxUUID = "ffffffff-ffff-ffff-ffff-ffffffffffff"

// IsUUID — каноническая форма xxxxxxxx-xxxx-Vxxx-Nxxx-xxxxxxxxxxxx,
// версия 1-8 и вариант RFC 4122; nil и max тоже считаются id.
func IsUUID(term string) bool {
	if len(term) != 36 {
		return false
	}
	u, err := uuid.Parse(term)
	if err != nil {
		return false
	}
	if u == uuid.Nil || strings.EqualFold(term, maxUUID) {
		return true
	}
	return u.Version() >= 1 && u.Version() <= 8 && u.Variant() == uuid.RFC4122
}

func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("product_images.id")
}

// Create сохраняет товар вместе с картинками одним insert'ом
func (s *Service) Create(ctx context.Context, in CreateInput) (*ProductView, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	product := models.Product{
		Title:       in.Title,
		Slug:        in.Slug,
		Price:       in.Price,
		Description: in.Description,
		Stock:       in.Stock,
		Sizes:       in.Sizes,
		Gender:      in.Gender,
		Tags:        in.Tags,
		Images:      newImages(in.Images),
	}
	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, s.handleDBError(err)
	}
	view := plain(&product)
	return &view, nil
}

// FindAll — страница товаров, по умолчанию limit=10 offset=0
func (s *Service) FindAll(ctx context.Context, page Pagination) ([]ProductView, error) {
	page = page.withDefaults()

	var items []models.Product
	err := s.db.WithContext(ctx).
		Preload("Images", orderedImages).
		Order("created_at, title").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&items).Error
	if err != nil {
		return nil, s.handleDBError(err)
	}

	views := make([]ProductView, 0, len(items))
	for i := range items {
		views = append(views, plain(&items[i]))
	}
	return views, nil
}

// FindOne ищет по id, если term похож на UUID, иначе по title (без учёта регистра) или slug
func (s *Service) FindOne(ctx context.Context, term string) (*models.Product, error) {
	var product models.Product
	q := s.db.WithContext(ctx).Preload("Images", orderedImages)

	var err error
	if IsUUID(term) {
		err = q.First(&product, "id = ?", term).Error
	} else {
		err = q.Where("UPPER(title) = ? OR slug = ?", strings.ToUpper(term), strings.ToLower(term)).
			First(&product).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound(fmt.Sprintf("Product with id %s not found", term))
	}
	if err != nil {
		return nil, s.handleDBError(err)
	}
	return &product, nil
}

// FindOnePlain — FindOne с картинками в виде URL
func (s *Service) FindOnePlain(ctx context.Context, term string) (*ProductView, error) {
	product, err := s.FindOne(ctx, term)
	if err != nil {
		return nil, err
	}
	view := plain(product)
	return &view, nil
}

// Update накладывает частичные поля на товар и, если переданы картинки,
// заменяет весь их набор. Всё в одной транзакции.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*ProductView, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if !IsUUID(id) {
		return nil, notFound(fmt.Sprintf("Product with id: %s not found", id))
	}

	var product models.Product
	err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound(fmt.Sprintf("Product with id: %s not found", id))
	}
	if err != nil {
		return nil, s.handleDBError(err)
	}
	in.apply(&product)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if in.Images != nil {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
				return fmt.Errorf("delete images: %w", err)
			}
		}
		if err := tx.Omit(clause.Associations).Save(&product).Error; err != nil {
			return fmt.Errorf("save product: %w", err)
		}
		if len(in.Images) > 0 {
			images := newImages(in.Images)
			for i := range images {
				images[i].ProductID = product.ID
			}
			if err := tx.Create(&images).Error; err != nil {
				return fmt.Errorf("create images: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.handleDBError(err)
	}

	return s.FindOnePlain(ctx, id)
}

// Remove удаляет товар (по id или slug) вместе с картинками
func (s *Service) Remove(ctx context.Context, term string) error {
	product, err := s.FindOne(ctx, term)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Select("Images").Delete(product).Error; err != nil {
		return s.handleDBError(err)
	}
	return nil
}

// DeleteAll очищает каталог целиком
func (s *Service) DeleteAll(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := all.Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return all.Delete(&models.Product{}).Error
	})
	if err != nil {
		return s.handleDBError(err)
	}
	return nil
}
