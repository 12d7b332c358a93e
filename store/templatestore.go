package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tempora.io/tempora/core"
	"tempora.io/tempora/model"
)

// TemplateStore is the GORM-backed core.TemplateStore.
type TemplateStore struct {
	db *gorm.DB
}

func NewTemplateStore(db *gorm.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

func (s *TemplateStore) Find(ctx context.Context, id string) (*model.Template, error) {
	var tpl model.Template
	err := s.db.WithContext(ctx).First(&tpl, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (s *TemplateStore) FindByName(ctx context.Context, name string) (*model.Template, error) {
	var tpl model.Template
	err := s.db.WithContext(ctx).First(&tpl, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (s *TemplateStore) List(ctx context.Context, r core.MonthRange) ([]model.TemplateSummary, error) {
	var out []model.TemplateSummary
	err := s.db.WithContext(ctx).
		Model(&model.Template{}).
		Select("id, name").
		Where("year > ? OR (year = ? AND month >= ?)", r.FromYear, r.FromYear, r.FromMonth).
		Where("year < ? OR (year = ? AND month <= ?)", r.ToYear, r.ToYear, r.ToMonth).
		Order("year DESC, month DESC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *TemplateStore) Create(ctx context.Context, t *model.Template) error {
	err := s.db.WithContext(ctx).Create(t).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return core.ErrDuplicateKey
	}
	return err
}

func (s *TemplateStore) Update(ctx context.Context, t *model.Template) error {
	return s.db.WithContext(ctx).Save(t).Error
}

func (s *TemplateStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&model.Template{}, "id = ?", id).Error
}
