package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/dkruglov/lending-service/internal/errs"
	"github.com/dkruglov/lending-service/internal/model"
	"github.com/dkruglov/lending-service/pkg/kafka"
	md "github.com/dkruglov/lending-service/pkg/middleware"
	"github.com/dkruglov/lending-service/pkg/validate"
)

type Handler struct {
	catalogSvc CatalogService
	enq        Enqueuer
	log        *zap.Logger
}

// New builds the HTTP handler. enq may be nil when event publishing is off.
func New(catalogSvc CatalogService, enq Enqueuer, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		enq:        enq,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/items", h.AddItem)
	api.GET("/items", h.ListItems)
	api.GET("/items/:id", h.GetItem)
	api.POST("/items/:id/borrow", h.Borrow)
	api.POST("/items/:id/return", h.Return)
	api.POST("/items/:id/archive", h.ArchiveIssue)
	api.POST("/items/:id/play", h.Play)

	api.GET("/loans", h.ActiveLoans)
	api.GET("/fines", h.Fines)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) AddItem(c echo.Context) error {
	var req model.AddItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	kind, ok := model.ParseKind(req.Kind)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, errors.Errorf("unknown kind %q", req.Kind).Error())
	}

	item := model.Item{
		ID:     req.ID,
		Kind:   kind,
		Title:  req.Title,
		Author: req.Author,
	}
	switch kind {
	case model.KindBook:
		item.PageCount = req.PageCount
	case model.KindAudio:
		item.PlaybackMinutes = req.PlaybackMinutes
	case model.KindPeriodical:
		item.IssueNumber = req.IssueNumber
	}

	added, err := h.catalogSvc.AddItem(c.Request().Context(), item)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, added)
}

func (h *Handler) ListItems(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		items []model.Item
		err   error
	)
	switch {
	case c.QueryParam("kind") != "":
		items, err = h.catalogSvc.SearchByKind(ctx, c.QueryParam("kind"))
	case c.QueryParam("title") != "":
		items, err = h.catalogSvc.SearchByTitle(ctx, c.QueryParam("title"))
	default:
		items, err = h.catalogSvc.Items(ctx)
	}
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetItem(c echo.Context) error {
	itemID, err := itemIDParam(c)
	if err != nil {
		return err
	}
	item, err := h.catalogSvc.Item(c.Request().Context(), itemID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) Borrow(c echo.Context) error {
	itemID, err := itemIDParam(c)
	if err != nil {
		return err
	}
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	record, event, err := h.catalogSvc.Borrow(c.Request().Context(), itemID, req.BorrowerID, req.Duration)
	if err != nil {
		return httpError(err)
	}
	h.enqueue(event)
	return c.JSON(http.StatusOK, record)
}

func (h *Handler) Return(c echo.Context) error {
	itemID, err := itemIDParam(c)
	if err != nil {
		return err
	}
	receipt, event, err := h.catalogSvc.Return(c.Request().Context(), itemID)
	if err != nil {
		return httpError(err)
	}
	h.enqueue(event)
	return c.JSON(http.StatusOK, receipt)
}

func (h *Handler) ArchiveIssue(c echo.Context) error {
	itemID, err := itemIDParam(c)
	if err != nil {
		return err
	}
	item, err := h.catalogSvc.ArchiveIssue(c.Request().Context(), itemID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) Play(c echo.Context) error {
	itemID, err := itemIDParam(c)
	if err != nil {
		return err
	}
	info, err := h.catalogSvc.Play(c.Request().Context(), itemID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, info)
}

func (h *Handler) ActiveLoans(c echo.Context) error {
	loans, err := h.catalogSvc.ActiveLoans(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) Fines(c echo.Context) error {
	fines, err := h.catalogSvc.Fines(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, fines)
}

// enqueue publishes the lending event to the stats topic. Publishing is best
// effort; failures are logged and never surfaced to the caller.
func (h *Handler) enqueue(event model.LendingEvent) {
	if h.enq == nil {
		return
	}
	if err := h.enq.Enqueue(kafka.LendingTopic, event); err != nil {
		h.log.Error("enqueue lending event",
			zap.String("recordUid", event.RecordUid),
			zap.Error(err))
	}
}

func itemIDParam(c echo.Context) (int, error) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.New("id is invalid").Error())
	}
	return itemID, nil
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrDuplicateID),
		errors.Is(err, errs.ErrAlreadyBorrowed),
		errors.Is(err, errs.ErrNotReturnable):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidDuration),
		errors.Is(err, errs.ErrNotPeriodical),
		errors.Is(err, errs.ErrNotPlayable):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
