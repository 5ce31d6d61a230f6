package handlers

import (
	"net/http"

	"stagelink/services/account"
	"stagelink/utils"

	"github.com/gin-gonic/gin"
)

// AccountHandler exposes signup and signin.
type AccountHandler struct {
	Svc account.AccountService
}

func NewAccountHandler(svc account.AccountService) *AccountHandler {
	return &AccountHandler{Svc: svc}
}

// SignUpHandler registers a musician or company account.
func (h *AccountHandler) SignUpHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Role     string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Svc.SignUp(c.Request.Context(), input.Email, input.Password, input.Name, input.Role)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "signup failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SignInHandler authenticates an existing account.
func (h *AccountHandler) SignInHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Svc.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "signin failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MeHandler returns the authenticated account.
func (h *AccountHandler) MeHandler(c *gin.Context) {
	acct, err := h.Svc.GetAccount(c.Request.Context(), c.GetString("accountID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "account not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, acct)
}
