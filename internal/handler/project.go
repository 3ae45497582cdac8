package handler

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/millworks/prodtrack/dao/model"
	"github.com/millworks/prodtrack/internal/resputil"
	"github.com/millworks/prodtrack/pkg/db/project"
	"github.com/millworks/prodtrack/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewProjectMgr)
}

type ProjectMgr struct {
	name      string
	projectDB project.DBService
}

type (
	ProjectURI struct {
		ID string `uri:"id" binding:"required"`
	}
	ProjectReq struct {
		ID              string     `json:"id"`
		ProjectNo       string     `json:"projectNo"`
		ProjectName     string     `json:"projectName"`
		CustomerName    string     `json:"customerName"`
		Owner           string     `json:"owner"`
		ProjectDate     model.Date `json:"projectDate"`
		TargetDate      model.Date `json:"targetDate"`
		ProductionStage string     `json:"productionStage"`
		Remarks         string     `json:"remarks"`
	}
	SetStageReq struct {
		ProductionStage string `json:"productionStage"`
	}
)

func NewProjectMgr(conf *RegisterConfig) Manager {
	return &ProjectMgr{
		name:      "projects",
		projectDB: conf.ProjectDB,
	}
}

func (mgr *ProjectMgr) GetName() string { return mgr.name }

func (mgr *ProjectMgr) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", mgr.ListProjects)
	g.GET("/template", mgr.ExportTemplate)
	g.GET("/:id", mgr.GetProject)
	g.POST("", mgr.CreateProject)
	g.POST("/import", mgr.ImportProjects)
	g.PUT("/:id", mgr.UpdateProject)
	g.PUT("/:id/stage", mgr.SetProjectStage)
	g.DELETE("/:id", mgr.DeleteProject)
}

// ListProjects godoc
// @Summary list projects
// @Description full result set in insertion order; filtering and pagination are client concerns
// @Tags project
// @Produce json
// @Success 200 {array} model.Project
// @Failure 500 {object} resputil.Response "storage error"
// @Router /api/projects [get]
func (mgr *ProjectMgr) ListProjects(c *gin.Context) {
	projects, err := mgr.projectDB.ListAll(c.Request.Context())
	if err != nil {
		projectError(c, "list projects", err)
		return
	}
	resputil.Success(c, projects)
}

// GetProject godoc
// @Summary get one project
// @Tags project
// @Produce json
// @Param id path string true "project id"
// @Success 200 {object} model.Project
// @Failure 404 {object} resputil.Response "project not found"
// @Router /api/projects/{id} [get]
func (mgr *ProjectMgr) GetProject(c *gin.Context) {
	var uri ProjectURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.Error(c, fmt.Sprintf("failed to bind request: %v", err), resputil.InvalidRequest)
		return
	}
	found, err := mgr.projectDB.Get(c.Request.Context(), uri.ID)
	if err != nil {
		projectError(c, "get project", err)
		return
	}
	resputil.Success(c, found)
}

// CreateProject godoc
// @Summary create a project
// @Description projectNo must be non-empty and unique (trimmed, case-sensitive); dispatchMonth is derived from targetDate
// @Tags project
// @Accept json
// @Produce json
// @Param data body ProjectReq true "project fields, id optional"
// @Success 201 {object} model.Project
// @Failure 400 {object} resputil.Response "validation error"
// @Failure 409 {object} resputil.Response "duplicate projectNo"
// @Router /api/projects [post]
func (mgr *ProjectMgr) CreateProject(c *gin.Context) {
	var req ProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, fmt.Sprintf("failed to bind request: %v", err), resputil.InvalidRequest)
		return
	}
	created := req.toModel()
	if err := mgr.projectDB.Create(c.Request.Context(), created); err != nil {
		projectError(c, "create project", err)
		return
	}
	resputil.Created(c, created)
}

// UpdateProject godoc
// @Summary update a project
// @Description full-record replace: every stored field is overwritten from the input
// @Tags project
// @Accept json
// @Produce json
// @Param id path string true "project id"
// @Param data body ProjectReq true "project fields"
// @Success 200 {object} model.Project
// @Failure 404 {object} resputil.Response "project not found"
// @Failure 409 {object} resputil.Response "duplicate projectNo"
// @Router /api/projects/{id} [put]
func (mgr *ProjectMgr) UpdateProject(c *gin.Context) {
	var uri ProjectURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.Error(c, fmt.Sprintf("failed to bind request: %v", err), resputil.InvalidRequest)
		return
	}
	var req ProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, fmt.Sprintf("failed to bind request: %v", err), resputil.InvalidRequest)
		return
	}
	updated, err := mgr.projectDB.Update(c.Request.Context(), uri.ID, req.toModel())
	if err != nil {
		projectError(c, "update project", err)
		return
	}
	resputil.Success(c, updated)
}

// SetProjectStage godoc
// @Summary set only the production stage
// @Description narrower than update: mutates productionStage and preserves every other field
// @Tags project
// @Accept json
// @Produce json
// @Param id path string true "project id"
// @Param data body SetStageReq true "stage name"
// @Success 200 {object} model.Project
// @Failure 404 {object} resputil.Response "project not found"
// @Router /api/projects/{id}/stage [put]
func (mgr *ProjectMgr) SetProjectStage(c *gin.Context) {
	var uri ProjectURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.Error(c, fmt.Sprintf("failed to bind request: %v", err), resputil.InvalidRequest)
		return
	}
	var req SetStageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, fmt.Sprintf("failed to bind request: %v", err), resputil.InvalidRequest)
		return
	}
	updated, err := mgr.projectDB.SetStage(c.Request.Context(), uri.ID, req.ProductionStage)
	if err != nil {
		projectError(c, "set project stage", err)
		return
	}
	resputil.Success(c, updated)
}

// DeleteProject godoc
// @Summary delete a project
// @Description repeat deletes report not-found, never silent success
// @Tags project
// @Produce json
// @Param id path string true "project id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} resputil.Response "project not found"
// @Router /api/projects/{id} [delete]
func (mgr *ProjectMgr) DeleteProject(c *gin.Context) {
	var uri ProjectURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.Error(c, fmt.Sprintf("failed to bind request: %v", err), resputil.InvalidRequest)
		return
	}
	if err := mgr.projectDB.Delete(c.Request.Context(), uri.ID); err != nil {
		projectError(c, "delete project", err)
		return
	}
	resputil.Success(c, gin.H{"msg": "project deleted"})
}

func (req *ProjectReq) toModel() *model.Project {
	return &model.Project{
		ID:              req.ID,
		ProjectNo:       req.ProjectNo,
		ProjectName:     req.ProjectName,
		CustomerName:    req.CustomerName,
		Owner:           req.Owner,
		ProjectDate:     req.ProjectDate,
		TargetDate:      req.TargetDate,
		ProductionStage: req.ProductionStage,
		Remarks:         req.Remarks,
	}
}

func projectError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resputil.Error(c, "project not found", resputil.NotFound)
	case errors.Is(err, project.ErrDuplicateProjectNo), errors.Is(err, project.ErrDuplicateID):
		resputil.Error(c, err.Error(), resputil.Conflict)
	case errors.Is(err, project.ErrProjectNoRequired), errors.Is(err, project.ErrCustomerNameRequired):
		resputil.Error(c, err.Error(), resputil.InvalidRequest)
	default:
		logutils.Log.WithError(err).Errorf("%s failed", op)
		resputil.Error(c, "storage error", resputil.StorageError)
	}
}
