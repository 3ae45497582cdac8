package stage

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/millworks/prodtrack/dao/model"
)

// ErrNameRequired is returned when a stage name trims to empty.
var ErrNameRequired = errors.New("stage name is required")

// DBService is the stage registry. Stage names are a controlled vocabulary
// for Project.ProductionStage but nothing here checks references: deleting or
// renaming a stage never touches projects (see model.Project).
type DBService interface {
	List(ctx context.Context) ([]model.Stage, error)
	Get(ctx context.Context, id string) (*model.Stage, error)
	Create(ctx context.Context, stage *model.Stage) error
	Update(ctx context.Context, id string, stage *model.Stage) (*model.Stage, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db *gorm.DB
}

func NewDBService(db *gorm.DB) DBService {
	return &service{db: db}
}

// List returns all stages in insertion order, unpaginated.
func (s *service) List(ctx context.Context) ([]model.Stage, error) {
	stages := make([]model.Stage, 0)
	err := s.db.WithContext(ctx).Order("created_at").Find(&stages).Error
	return stages, err
}

func (s *service) Get(ctx context.Context, id string) (*model.Stage, error) {
	var stage model.Stage
	if err := s.db.WithContext(ctx).First(&stage, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &stage, nil
}

// Create validates and persists a new stage. Duplicate names are permitted.
func (s *service) Create(ctx context.Context, stage *model.Stage) error {
	stage.Name = strings.TrimSpace(stage.Name)
	if stage.Name == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(stage.ID) == "" {
		stage.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Create(stage).Error
}

// Update replaces name and remarks of an existing stage.
func (s *service) Update(ctx context.Context, id string, stage *model.Stage) (*model.Stage, error) {
	name := strings.TrimSpace(stage.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = name
	existing.Remarks = stage.Remarks
	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&model.Stage{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
