package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/millworks/prodtrack/dao/model"
)

var (
	// ErrProjectNoRequired is returned when the business key trims to empty.
	ErrProjectNoRequired = errors.New("project no is required")
	// ErrCustomerNameRequired is returned when the customer name trims to empty.
	ErrCustomerNameRequired = errors.New("customer name is required")
	// ErrDuplicateProjectNo is returned when the trimmed business key
	// collides with another project (case-sensitive exact match).
	ErrDuplicateProjectNo = errors.New("project no already exists")
	// ErrDuplicateID is returned when a caller-supplied id collides with
	// an existing row.
	ErrDuplicateID = errors.New("project id already exists")
)

// DBService is the project repository. It owns the projectNo uniqueness
// invariant and the dispatchMonth derivation; storage is otherwise a plain
// row store with last-write-wins semantics on concurrent updates.
type DBService interface {
	ListAll(ctx context.Context) ([]model.Project, error)
	Get(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, id string, project *model.Project) (*model.Project, error)
	SetStage(ctx context.Context, id, stageName string) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db *gorm.DB
}

func NewDBService(db *gorm.DB) DBService {
	return &service{db: db}
}

// ListAll returns the full result set in insertion order. Filtering,
// counting and pagination are computed by the client.
func (s *service) ListAll(ctx context.Context) ([]model.Project, error) {
	projects := make([]model.Project, 0)
	err := s.db.WithContext(ctx).Order("created_at").Find(&projects).Error
	return projects, err
}

func (s *service) Get(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	if err := s.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Create validates and persists a new project. The id is kept when the
// caller supplies one (bulk import pre-assigns ids), generated otherwise.
func (s *service) Create(ctx context.Context, project *model.Project) error {
	if err := normalize(project); err != nil {
		return err
	}
	taken, err := s.projectNoTaken(ctx, project.ProjectNo, "")
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateProjectNo
	}

	if strings.TrimSpace(project.ID) == "" {
		project.ID = uuid.NewString()
	} else if _, err := s.Get(ctx, project.ID); err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicateID, project.ID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	project.DispatchMonth = model.DispatchMonth(project.TargetDate)

	err = s.db.WithContext(ctx).Create(project).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost a race against another writer; the unique index backs up
		// the service-level checks. Tell apart which key fired.
		if taken, cerr := s.projectNoTaken(ctx, project.ProjectNo, project.ID); cerr == nil && taken {
			return ErrDuplicateProjectNo
		}
		return fmt.Errorf("%w: %s", ErrDuplicateID, project.ID)
	}
	return err
}

// Update is a full-record replace: every field of the stored record is
// overwritten from the input. dispatchMonth is recomputed, never trusted
// from the caller.
func (s *service) Update(ctx context.Context, id string, project *model.Project) (*model.Project, error) {
	if err := normalize(project); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	taken, err := s.projectNoTaken(ctx, project.ProjectNo, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateProjectNo
	}

	existing.ProjectNo = project.ProjectNo
	existing.ProjectName = project.ProjectName
	existing.CustomerName = project.CustomerName
	existing.Owner = project.Owner
	existing.ProjectDate = project.ProjectDate
	existing.TargetDate = project.TargetDate
	existing.DispatchMonth = model.DispatchMonth(project.TargetDate)
	existing.ProductionStage = strings.TrimSpace(project.ProductionStage)
	existing.Remarks = project.Remarks

	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateProjectNo
		}
		return nil, err
	}
	return existing, nil
}

// SetStage mutates only the production stage, leaving every other field
// untouched. Stages are labels, not workflow states: any value is accepted,
// including names no stage currently carries.
func (s *service) SetStage(ctx context.Context, id, stageName string) (*model.Project, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.ProductionStage = strings.TrimSpace(stageName)
	if err := s.db.WithContext(ctx).Model(existing).
		Update("production_stage", existing.ProductionStage).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the row. Repeat deletes report NotFound, not silent success.
func (s *service) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func normalize(project *model.Project) error {
	project.ProjectNo = strings.TrimSpace(project.ProjectNo)
	if project.ProjectNo == "" {
		return ErrProjectNoRequired
	}
	project.CustomerName = strings.TrimSpace(project.CustomerName)
	if project.CustomerName == "" {
		return ErrCustomerNameRequired
	}
	project.ProductionStage = strings.TrimSpace(project.ProductionStage)
	return nil
}

func (s *service) projectNoTaken(ctx context.Context, projectNo, excludeID string) (bool, error) {
	var count int64
	q := s.db.WithContext(ctx).Model(&model.Project{}).Where("project_no = ?", projectNo)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
