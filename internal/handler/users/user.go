// File: internal/handler/users/user.go
package users

import (
	"errors"
	"net/http"

	"worklog/internal/api"
	"worklog/internal/database"
	"worklog/internal/model"
	"worklog/internal/service"
	"worklog/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	listUsers   = store.ListUsers
	getUserByID = store.GetUserByID
	createUser  = store.CreateUser
	deleteUser  = store.DeleteUser
	newUserID   = uuid.NewString
)

func toResponse(u *model.User) api.UserResponse {
	return api.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// @Summary     List users
// @Description 列出所有使用者
// @Tags        users
// @Produce     json
// @Success     200 {array}  api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, toResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a user by ID
// @Description 透過 ID 查詢並回傳使用者
// @Tags        users
// @Produce     json
// @Param       id   path      string  true  "使用者 ID"
// @Success     200  {object}  api.UserResponse
// @Failure     404  {object}  api.ErrorResponse  "使用者不存在"
// @Failure     500  {object}  api.ErrorResponse  "伺服器錯誤"
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := getUserByID(c.Request().Context(), db, c.Param("id"))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toResponse(user))
	}
}

// @Summary     Create a new user
// @Description 建立使用者，系統指派不透明識別碼；name 與 email 皆可省略
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       payload body     api.CreateUserRequest true "使用者資料"
// @Success     201     {object} api.UserResponse
// @Failure     400     {object} api.ErrorResponse
// @Failure     500     {object} api.ErrorResponse
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			ID:    newUserID(),
			Name:  service.NormalizeOptionalText(req.Name),
			Email: service.NormalizeOptionalText(req.Email),
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, toResponse(user))
	}
}

// @Summary     Delete a user by ID
// @Description 刪除使用者；其工時紀錄會保留，僅清除 user_id
// @Tags        users
// @Param       id  path  string  true  "使用者 ID"
// @Success     204 "No Content"
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := deleteUser(c.Request().Context(), db, c.Param("id")); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
