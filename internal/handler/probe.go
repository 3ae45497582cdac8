package handler

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/millworks/prodtrack/internal/resputil"
	"github.com/millworks/prodtrack/pkg/db"
	"github.com/millworks/prodtrack/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewProbeMgr)
}

// ProbeMgr serves the storage connectivity probe.
type ProbeMgr struct {
	name string
	db   *gorm.DB
}

func NewProbeMgr(conf *RegisterConfig) Manager {
	return &ProbeMgr{
		name: "test-db",
		db:   conf.DB,
	}
}

func (mgr *ProbeMgr) GetName() string { return mgr.name }

func (mgr *ProbeMgr) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", mgr.TestDB)
}

// TestDB godoc
// @Summary storage connectivity probe
// @Tags probe
// @Produce json
// @Success 200 {array} map[string]int
// @Failure 500 {object} resputil.Response "storage error"
// @Router /api/test-db [get]
func (mgr *ProbeMgr) TestDB(c *gin.Context) {
	number, err := db.Ping(c.Request.Context(), mgr.db)
	if err != nil {
		logutils.Log.WithError(err).Error("db probe failed")
		resputil.Error(c, "storage error", resputil.StorageError)
		return
	}
	resputil.Success(c, []gin.H{{"number": number}})
}
