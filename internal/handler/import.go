package handler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/millworks/prodtrack/internal/resputil"
	"github.com/millworks/prodtrack/pkg/importer"
	"github.com/millworks/prodtrack/pkg/logutils"
)

// ImportProjects godoc
// @Summary bulk import projects from a spreadsheet (CSV)
// @Description best-effort per-row import: a failing row is reported with its 1-based row number and never rolls back the rows already inserted
// @Tags project
// @Accept mpfd
// @Produce json
// @Param file formData file true "CSV file with the template header row"
// @Success 200 {object} importer.Report
// @Failure 400 {object} resputil.Response "missing or empty file"
// @Router /api/projects/import [post]
func (mgr *ProjectMgr) ImportProjects(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		resputil.Error(c, "no file selected", resputil.InvalidRequest)
		return
	}
	defer file.Close()

	records, err := importer.Parse(file)
	if err != nil {
		if errors.Is(err, importer.ErrNoData) {
			resputil.Error(c, err.Error(), resputil.InvalidRequest)
			return
		}
		logutils.Log.WithError(err).Error("import parse failed")
		resputil.Error(c, fmt.Sprintf("failed to read file: %v", err), resputil.InvalidRequest)
		return
	}

	report := importer.Report{Total: len(records)}
	for _, rec := range records {
		if rec.Err != nil {
			report.Failed = append(report.Failed, importer.Failure{Row: rec.Row, Error: rec.Err.Error()})
			continue
		}
		if err := mgr.projectDB.Create(c.Request.Context(), rec.Project); err != nil {
			report.Failed = append(report.Failed, importer.Failure{
				Row:       rec.Row,
				ProjectNo: rec.Project.ProjectNo,
				Error:     err.Error(),
			})
		}
	}
	report.Imported = report.Total - len(report.Failed)
	resputil.Success(c, report)
}

// ExportTemplate godoc
// @Summary download the header-only import template
// @Tags project
// @Produce text/csv
// @Success 200 {string} string "CSV header row"
// @Router /api/projects/template [get]
func (mgr *ProjectMgr) ExportTemplate(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="Project_Template.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(importer.Headers); err != nil {
		logutils.Log.WithError(err).Error("template export failed")
		return
	}
	w.Flush()
}
