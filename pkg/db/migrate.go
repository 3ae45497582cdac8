package db

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/millworks/prodtrack/dao/model"
	"github.com/millworks/prodtrack/pkg/logutils"
)

// Migrate applies the versioned schema migrations.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "202408290001_create_stages_and_projects",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.Stage{}, &model.Project{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("projects", "stages")
			},
		},
	})

	// Fresh databases skip the migration history and build the current schema.
	m.InitSchema(func(tx *gorm.DB) error {
		return tx.AutoMigrate(&model.Stage{}, &model.Project{})
	})

	if err := m.Migrate(); err != nil {
		return err
	}
	logutils.Log.Info("schema migration complete")
	return nil
}
