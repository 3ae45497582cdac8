package handler

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/millworks/prodtrack/pkg/db/project"
	"github.com/millworks/prodtrack/pkg/db/stage"
)

// RegisterConfig carries the dependencies handler managers are built from.
type RegisterConfig struct {
	DB          *gorm.DB
	StageDB     stage.DBService
	ProjectDB   project.DBService
	CorsOrigins []string
}

type Manager interface {
	GetName() string
	RegisterRoutes(group *gin.RouterGroup)
}

// Registers collects the manager constructors; each handler file appends its
// own in init().
var Registers []func(*RegisterConfig) Manager
