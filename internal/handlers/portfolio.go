package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/alimgiray/gfolio/internal/errors"
	"github.com/alimgiray/gfolio/internal/models"
	"github.com/alimgiray/gfolio/internal/render"
	"github.com/alimgiray/gfolio/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PortfolioHandler struct {
	portfolioService *services.PortfolioService
	exportService    *services.ExportService
	now              func() time.Time
}

func NewPortfolioHandler(portfolioService *services.PortfolioService, exportService *services.ExportService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		exportService:    exportService,
		now:              time.Now,
	}
}

// Index renders the whole portfolio page
func (h *PortfolioHandler) Index(c *gin.Context) {
	state, err := filterStateFromQuery(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	snapshot := h.portfolioService.Load(c.Request.Context())
	doc := render.NewDocument()
	h.portfolioService.Paint(snapshot, state, doc, h.now().Year())

	var buf bytes.Buffer
	if err := render.WritePage(&buf, doc); err != nil {
		c.Error(err)
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Projects renders only the project cards, for in-place updates of the list
func (h *PortfolioHandler) Projects(c *gin.Context) {
	state, err := filterStateFromQuery(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	snapshot := h.portfolioService.Load(c.Request.Context())

	var buf bytes.Buffer
	if err := render.WriteCards(&buf, snapshot.Cards(state)); err != nil {
		c.Error(err)
		c.String(http.StatusInternalServerError, "failed to render projects")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// APIRepos returns the filtered and sorted repositories as JSON
func (h *PortfolioHandler) APIRepos(c *gin.Context) {
	state, err := filterStateFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	snapshot := h.portfolioService.Load(c.Request.Context())
	if snapshot.RepositoriesErr != nil {
		respondError(c, snapshot.RepositoriesErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username":     snapshot.Username,
		"filter":       state,
		"languages":    snapshot.Languages,
		"repositories": services.ApplyFilter(snapshot.Repositories, state),
	})
}

// ExportXLSX downloads the filtered and sorted repositories as a spreadsheet
func (h *PortfolioHandler) ExportXLSX(c *gin.Context) {
	state, err := filterStateFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	snapshot := h.portfolioService.Load(c.Request.Context())
	if snapshot.RepositoriesErr != nil {
		respondError(c, snapshot.RepositoriesErr)
		return
	}

	var buf bytes.Buffer
	if err := h.exportService.WriteXLSX(&buf, services.ApplyFilter(snapshot.Repositories, state)); err != nil {
		respondError(c, apperrors.NewInternalError("failed to build spreadsheet", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-projects.xlsx"`, snapshot.Username))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// filterStateFromQuery reads q, language and sort. A missing sort means
// the default; an unknown one is rejected.
func filterStateFromQuery(c *gin.Context) (models.FilterState, error) {
	state := models.DefaultFilterState()
	state.Query = c.Query("q")
	state.Language = c.Query("language")

	sort := strings.TrimSpace(c.Query("sort"))
	key, ok := models.ParseSortKey(sort)
	if !ok {
		return state, apperrors.NewBadRequestError(fmt.Sprintf("unknown sort key %q", sort))
	}
	state.Sort = key
	return state, nil
}

func respondError(c *gin.Context, err error) {
	status := http.StatusBadGateway
	code := apperrors.ErrCodeUpstream

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		code = appErr.Code
		switch appErr.Code {
		case apperrors.ErrCodeBadRequest:
			status = http.StatusBadRequest
		case apperrors.ErrCodeNotFound:
			status = http.StatusNotFound
		case apperrors.ErrCodeRateLimited:
			status = http.StatusServiceUnavailable
		case apperrors.ErrCodeInternal:
			status = http.StatusInternalServerError
		}
	}

	c.Error(err)
	c.JSON(status, gin.H{
		"error": err.Error(),
		"code":  code,
	})
}
