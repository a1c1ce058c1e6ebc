package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/wichananm65/account-service/internal/domain/repository"
	"github.com/wichananm65/account-service/internal/interface/presenter"
	"github.com/wichananm65/account-service/internal/usecase"
)

// AccountHandler adapts HTTP requests to use case calls.
type AccountHandler struct {
	usecase   usecase.AccountUsecase
	presenter *presenter.AccountPresenter
	log       logrus.FieldLogger
}

// CreateAccountRequest is the body of POST /accounts. Every field must be
// present; an id in the body is ignored.
type CreateAccountRequest struct {
	Name        *string `json:"name" validate:"required"`
	Email       *string `json:"email" validate:"required"`
	Address     *string `json:"address" validate:"required"`
	PhoneNumber *string `json:"phone_number" validate:"required"`
}

// UpdateAccountRequest is the body of PUT /accounts/:id. Absent fields keep
// their stored value.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phone_number"`
}

func NewAccountHandler(usecase usecase.AccountUsecase, presenter *presenter.AccountPresenter, log logrus.FieldLogger) *AccountHandler {
	return &AccountHandler{usecase: usecase, presenter: presenter, log: log}
}

func (h *AccountHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/accounts", h.createAccount)
	router.Get("/accounts", h.listAccounts)
	router.Get("/accounts/:id<int>", h.getAccount)
	router.Put("/accounts/:id<int>", h.updateAccount)
	router.Delete("/accounts/:id<int>", h.deleteAccount)
}

func (h *AccountHandler) createAccount(c *fiber.Ctx) error {
	h.log.Info("Request to create an Account")
	if err := requireJSON(c); err != nil {
		h.log.WithField("content_type", c.Get(fiber.HeaderContentType)).Error("Invalid Content-Type")
		return err
	}

	var req CreateAccountRequest
	if err := decodeObject(c, &req); err != nil {
		return err
	}
	if errs := ValidateRequest(req); errs != nil {
		return respondWithValidationError(c, errs)
	}

	account, err := h.usecase.Create(c.UserContext(), usecase.CreateAccountInput{
		Name:        *req.Name,
		Email:       *req.Email,
		Address:     *req.Address,
		PhoneNumber: *req.PhoneNumber,
	})
	if err != nil {
		return err
	}

	h.log.WithField("account_id", account.ID).Info("Account created")
	c.Location(c.BaseURL() + "/accounts/" + strconv.FormatInt(account.ID, 10))
	return c.Status(fiber.StatusCreated).JSON(h.presenter.ToResponse(account))
}

func (h *AccountHandler) listAccounts(c *fiber.Ctx) error {
	h.log.Info("Request to list Accounts")
	accounts, err := h.usecase.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(h.presenter.ToList(accounts))
}

func (h *AccountHandler) getAccount(c *fiber.Ctx) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}
	h.log.WithField("account_id", id).Info("Request to read an Account")

	account, err := h.usecase.GetByID(c.UserContext(), id)
	if err != nil {
		return h.handleLookupError(c, id, err)
	}
	return c.JSON(h.presenter.ToResponse(account))
}

func (h *AccountHandler) updateAccount(c *fiber.Ctx) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}
	h.log.WithField("account_id", id).Info("Request to update an Account")
	if err := requireJSON(c); err != nil {
		return err
	}

	var req UpdateAccountRequest
	if err := decodeObject(c, &req); err != nil {
		return err
	}

	account, err := h.usecase.Update(c.UserContext(), id, usecase.UpdateAccountInput{
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return h.handleLookupError(c, id, err)
	}
	return c.JSON(h.presenter.ToResponse(account))
}

func (h *AccountHandler) deleteAccount(c *fiber.Ctx) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}
	h.log.WithField("account_id", id).Info("Request to delete an Account")

	if err := h.usecase.Delete(c.UserContext(), id); err != nil {
		return h.handleLookupError(c, id, err)
	}
	c.Status(fiber.StatusNoContent)
	return nil
}

// handleLookupError answers 404 for a missing account and hands every other
// error to the app error handler.
func (h *AccountHandler) handleLookupError(c *fiber.Ctx, id int64, err error) error {
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return err
	}
	h.log.WithField("account_id", id).Warn("Account not found")
	return c.Status(fiber.StatusNotFound).JSON(errorResponse{
		Error:   "Account not found",
		Message: fmt.Sprintf("Account with id [%d] could not be found.", id),
	})
}

func accountID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusNotFound, "Cannot "+c.Method()+" "+c.Path())
	}
	return id, nil
}
