// File: internal/handler/worklog/work_log.go
package worklog

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"worklog/internal/api"
	"worklog/internal/database"
	"worklog/internal/middleware"
	"worklog/internal/model"
	"worklog/internal/service"
	"worklog/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

var (
	ensureUser       = store.EnsureUser
	listEntries      = store.ListWorkLogEntries
	createEntry      = store.CreateWorkLogEntry
	createEntries    = store.CreateWorkLogEntries
	deleteEntryOwned = store.DeleteWorkLogEntryOwned
)

func toResponse(e *model.WorkLogEntry) api.WorkLogResponse {
	return api.WorkLogResponse{
		ID:          e.ID,
		WorkDate:    e.WorkDate.Format(dateLayout),
		Hours:       e.Hours,
		Description: e.Description,
		UserID:      e.UserID,
		Tag:         e.Tag,
	}
}

func optionalEmail(user *service.CurrentUser) *string {
	if user.Email == "" {
		return nil
	}
	return &user.Email
}

// provisionCaller 確保呼叫者的使用者紀錄存在；
// 失敗一律視為暫時性的儲存層故障，由呼叫端回覆 503。
func provisionCaller(c echo.Context, db database.DB, user *service.CurrentUser) error {
	_, err := ensureUser(c.Request().Context(), db, user.ID, optionalEmail(user))
	return err
}

func parseDateParam(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func newEntry(req *api.CreateWorkLogRequest, userID string) *model.WorkLogEntry {
	// work_date 已通過 datetime 驗證
	workDate, _ := time.Parse(dateLayout, req.WorkDate)
	return &model.WorkLogEntry{
		WorkDate:    workDate,
		Hours:       req.Hours,
		Description: service.NormalizeOptionalText(req.Description),
		UserID:      &userID,
		Tag:         service.NormalizeOptionalText(req.Tag),
	}
}

// @Summary     List work log entries
// @Description 列出固定擁有者的工時紀錄，可用 start_date / end_date 篩選（含端點）
// @Tags        work-log
// @Produce     json
// @Param       start_date query    string false "起始日期 (YYYY-MM-DD)"
// @Param       end_date   query    string false "結束日期 (YYYY-MM-DD)"
// @Success     200 {array}  api.WorkLogResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /work-log [get]
func ListHandler(db database.DB, policy service.AccessPolicy) echo.HandlerFunc {
	return func(c echo.Context) error {
		start, err := parseDateParam(c, "start_date")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid start_date"})
		}
		end, err := parseDateParam(c, "end_date")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid end_date"})
		}

		// 允許寫入的身分讀取時順便自動開通使用者紀錄
		if user := middleware.CurrentUser(c); user != nil && policy.Allows(user.ID, service.CapWorkLogWrite) {
			if err := provisionCaller(c, db, user); err != nil {
				return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "unable to reach the database, please try again shortly"})
			}
		}

		entries, err := listEntries(c.Request().Context(), db, policy.Owner(), start, end)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.WorkLogResponse, 0, len(entries))
		for i := range entries {
			resp = append(resp, toResponse(&entries[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Create a work log entry
// @Description 建立單筆工時紀錄，僅允許的寫入者身分可用
// @Tags        work-log
// @Accept      json
// @Produce     json
// @Param       payload body     api.CreateWorkLogRequest true "工時紀錄"
// @Success     201     {object} api.WorkLogResponse
// @Failure     400     {object} api.ErrorResponse
// @Failure     401     {object} api.ErrorResponse
// @Failure     403     {object} api.ErrorResponse
// @Failure     503     {object} api.ErrorResponse
// @Failure     500     {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /work-log [post]
func CreateHandler(db database.DB, policy service.AccessPolicy) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		if !policy.Allows(user.ID, service.CapWorkLogWrite) {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "not allowed"})
		}

		var req api.CreateWorkLogRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := provisionCaller(c, db, user); err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "unable to reach the database, please try again shortly"})
		}

		entry, err := createEntry(c.Request().Context(), db, newEntry(&req, user.ID))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, toResponse(entry))
	}
}

// @Summary     Create work log entries in bulk
// @Description 於單一交易內建立多筆工時紀錄，任何一筆失敗即整批回滾
// @Tags        work-log
// @Accept      json
// @Produce     json
// @Param       payload body     api.BulkCreateWorkLogRequest true "工時紀錄批次"
// @Success     201     {array}  api.WorkLogResponse
// @Failure     400     {object} api.ErrorResponse
// @Failure     401     {object} api.ErrorResponse
// @Failure     403     {object} api.ErrorResponse
// @Failure     503     {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /work-log/bulk [post]
func BulkCreateHandler(db database.DB, policy service.AccessPolicy) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		if !policy.Allows(user.ID, service.CapWorkLogWrite) {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "not allowed"})
		}

		var req api.BulkCreateWorkLogRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := provisionCaller(c, db, user); err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "unable to reach the database, please try again shortly"})
		}

		entries := make([]*model.WorkLogEntry, 0, len(req.Entries))
		for i := range req.Entries {
			entries = append(entries, newEntry(&req.Entries[i], user.ID))
		}
		if err := createEntries(c.Request().Context(), db, entries); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "failed to create work log entries"})
		}

		resp := make([]api.WorkLogResponse, 0, len(entries))
		for _, e := range entries {
			resp = append(resp, toResponse(e))
		}
		return c.JSON(http.StatusCreated, resp)
	}
}

// @Summary     Delete a work log entry
// @Description 刪除自己的工時紀錄；不存在或非本人擁有皆回 404
// @Tags        work-log
// @Produce     json
// @Param       id  path     int true "紀錄 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /work-log/{id} [delete]
func DeleteHandler(db database.DB, policy service.AccessPolicy) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		if !policy.Allows(user.ID, service.CapWorkLogWrite) {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "not allowed"})
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid entry ID"})
		}

		if err := provisionCaller(c, db, user); err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "unable to reach the database, please try again shortly"})
		}

		if err := deleteEntryOwned(c.Request().Context(), db, id, user.ID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "work log entry not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "entry deleted"})
	}
}
