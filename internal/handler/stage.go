package handler

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/millworks/prodtrack/dao/model"
	"github.com/millworks/prodtrack/internal/resputil"
	"github.com/millworks/prodtrack/pkg/db/stage"
	"github.com/millworks/prodtrack/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewStageMgr)
}

type StageMgr struct {
	name    string
	stageDB stage.DBService
}

type (
	StageURI struct {
		ID string `uri:"id" binding:"required"`
	}
	StageReq struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Remarks string `json:"remarks"`
	}
)

func NewStageMgr(conf *RegisterConfig) Manager {
	return &StageMgr{
		name:    "stages",
		stageDB: conf.StageDB,
	}
}

func (mgr *StageMgr) GetName() string { return mgr.name }

func (mgr *StageMgr) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", mgr.ListStages)
	g.GET("/:id", mgr.GetStage)
	g.POST("", mgr.CreateStage)
	g.PUT("/:id", mgr.UpdateStage)
	g.DELETE("/:id", mgr.DeleteStage)
}

// ListStages godoc
// @Summary list production stages
// @Description all stages in insertion order, no pagination
// @Tags stage
// @Produce json
// @Success 200 {array} model.Stage
// @Failure 500 {object} resputil.Response "storage error"
// @Router /api/stages [get]
func (mgr *StageMgr) ListStages(c *gin.Context) {
	stages, err := mgr.stageDB.List(c.Request.Context())
	if err != nil {
		stageError(c, "list stages", err)
		return
	}
	resputil.Success(c, stages)
}

// GetStage godoc
// @Summary get one stage
// @Tags stage
// @Produce json
// @Param id path string true "stage id"
// @Success 200 {object} model.Stage
// @Failure 404 {object} resputil.Response "stage not found"
// @Router /api/stages/{id} [get]
func (mgr *StageMgr) GetStage(c *gin.Context) {
	var uri StageURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.Error(c, fmt.Sprintf("failed to bind request: %v", err), resputil.InvalidRequest)
		return
	}
	found, err := mgr.stageDB.Get(c.Request.Context(), uri.ID)
	if err != nil {
		stageError(c, "get stage", err)
		return
	}
	resputil.Success(c, found)
}

// CreateStage godoc
// @Summary create a stage
// @Description name must be non-empty after trimming; duplicate names are permitted
// @Tags stage
// @Accept json
// @Produce json
// @Param data body StageReq true "stage fields"
// @Success 201 {object} model.Stage
// @Failure 400 {object} resputil.Response "validation error"
// @Router /api/stages [post]
func (mgr *StageMgr) CreateStage(c *gin.Context) {
	var req StageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, fmt.Sprintf("failed to bind request: %v", err), resputil.InvalidRequest)
		return
	}
	created := &model.Stage{ID: req.ID, Name: req.Name, Remarks: req.Remarks}
	if err := mgr.stageDB.Create(c.Request.Context(), created); err != nil {
		stageError(c, "create stage", err)
		return
	}
	resputil.Created(c, created)
}

// UpdateStage godoc
// @Summary update a stage
// @Description full replace of name and remarks; projects referencing the old name are not touched
// @Tags stage
// @Accept json
// @Produce json
// @Param id path string true "stage id"
// @Param data body StageReq true "stage fields"
// @Success 200 {object} model.Stage
// @Failure 404 {object} resputil.Response "stage not found"
// @Router /api/stages/{id} [put]
func (mgr *StageMgr) UpdateStage(c *gin.Context) {
	var uri StageURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.Error(c, fmt.Sprintf("failed to bind request: %v", err), resputil.InvalidRequest)
		return
	}
	var req StageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, fmt.Sprintf("failed to bind request: %v", err), resputil.InvalidRequest)
		return
	}
	updated, err := mgr.stageDB.Update(c.Request.Context(), uri.ID, &model.Stage{Name: req.Name, Remarks: req.Remarks})
	if err != nil {
		stageError(c, "update stage", err)
		return
	}
	resputil.Success(c, updated)
}

// DeleteStage godoc
// @Summary delete a stage
// @Description no in-use check: projects referencing the stage name keep it as an orphaned value
// @Tags stage
// @Produce json
// @Param id path string true "stage id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} resputil.Response "stage not found"
// @Router /api/stages/{id} [delete]
func (mgr *StageMgr) DeleteStage(c *gin.Context) {
	var uri StageURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.Error(c, fmt.Sprintf("failed to bind request: %v", err), resputil.InvalidRequest)
		return
	}
	if err := mgr.stageDB.Delete(c.Request.Context(), uri.ID); err != nil {
		stageError(c, "delete stage", err)
		return
	}
	resputil.Success(c, gin.H{"msg": "stage deleted"})
}

func stageError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resputil.Error(c, "stage not found", resputil.NotFound)
	case errors.Is(err, stage.ErrNameRequired):
		resputil.Error(c, err.Error(), resputil.InvalidRequest)
	default:
		logutils.Log.WithError(err).Errorf("%s failed", op)
		resputil.Error(c, "storage error", resputil.StorageError)
	}
}
