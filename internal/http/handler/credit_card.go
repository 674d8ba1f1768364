package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cardapi/internal/logger"
	"cardapi/internal/model"
	"cardapi/internal/repository"
	"cardapi/internal/service"
)

const (
	entityName      = "creditCard"
	creditCardsPath = "/credit-cards"

	mimeMergePatchJSON = "application/merge-patch+json"
)

// CreditCardHandler maps the /credit-cards endpoints onto CreditCardService.
// All id validation and status-code decisions live here.
type CreditCardHandler struct {
	svc     service.CreditCardService
	appName string
	log     logrus.FieldLogger
}

// NewCreditCardHandler builds the handler. appName prefixes the X-<app>-alert headers.
func NewCreditCardHandler(svc service.CreditCardService, appName string, log logrus.FieldLogger) *CreditCardHandler {
	return &CreditCardHandler{
		svc:     svc,
		appName: appName,
		log:     log.WithField("component", "credit_card_handler"),
	}
}

// Create godoc
// @Summary Create a credit card
// @Tags credit-cards
// @Accept json
// @Produce json
// @Param card body model.CreditCard true "card without id"
// @Success 201 {object} model.CreditCard
// @Failure 400 {object} errorPayload
// @Router /credit-cards [post]
func (h *CreditCardHandler) Create(c *fiber.Ctx) error {
	var card model.CreditCard
	if err := c.BodyParser(&card); err != nil {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
	}
	if card.ID != nil {
		return h.badRequestAlert(c, "A new creditCard cannot already have an ID", "idexists")
	}

	saved, err := h.svc.Save(c.UserContext(), &card)
	if err != nil {
		return h.internalError(c, err)
	}

	id := strconv.FormatInt(*saved.ID, 10)
	entityCreationAlert(c, h.appName, entityName, id)
	c.Location(creditCardsPath + "/" + id)
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// Update godoc
// @Summary Replace an existing credit card
// @Tags credit-cards
// @Accept json
// @Produce json
// @Param id path int true "card id"
// @Param card body model.CreditCard true "card with matching id"
// @Success 200 {object} model.CreditCard
// @Failure 400 {object} errorPayload
// @Router /credit-cards/{id} [put]
func (h *CreditCardHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	var card model.CreditCard
	if err := c.BodyParser(&card); err != nil {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
	}
	if passed, err := h.validateUpdate(c, id, &card); !passed {
		return err
	}

	saved, err := h.svc.Save(c.UserContext(), &card)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return h.badRequestAlert(c, "Entity not found", "idnotfound")
		}
		return h.internalError(c, err)
	}

	entityUpdateAlert(c, h.appName, entityName, strconv.FormatInt(id, 10))
	return c.JSON(saved)
}

// PartialUpdate godoc
// @Summary Merge non-null fields into an existing credit card
// @Tags credit-cards
// @Accept json
// @Accept application/merge-patch+json
// @Produce json
// @Param id path int true "card id"
// @Param card body model.CreditCard true "fields to overwrite, with matching id"
// @Success 200 {object} model.CreditCard
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 415 {object} errorPayload
// @Router /credit-cards/{id} [patch]
func (h *CreditCardHandler) PartialUpdate(c *fiber.Ctx) error {
	switch mediaType(c) {
	case fiber.MIMEApplicationJSON, mimeMergePatchJSON:
	default:
		return writeError(c, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "content type must be application/json or application/merge-patch+json")
	}

	id, err := pathID(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	var card model.CreditCard
	if err := c.BodyParser(&card); err != nil {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
	}
	if passed, err := h.validateUpdate(c, id, &card); !passed {
		return err
	}

	saved, err := h.svc.PartialUpdate(c.UserContext(), &card)
	if err != nil {
		return h.internalError(c, err)
	}
	if saved == nil {
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "creditCard not found")
	}

	entityUpdateAlert(c, h.appName, entityName, strconv.FormatInt(id, 10))
	return c.JSON(saved)
}

// List godoc
// @Summary List all credit cards
// @Tags credit-cards
// @Produce json
// @Param sort query []string false "field[,asc|desc], repeatable" collectionFormat(multi)
// @Success 200 {array} model.CreditCard
// @Failure 400 {object} errorPayload
// @Router /credit-cards [get]
func (h *CreditCardHandler) List(c *fiber.Ctx) error {
	var orders []repository.Order
	for _, raw := range c.Context().QueryArgs().PeekMulti("sort") {
		o, err := repository.ParseOrder(string(raw))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_SORT", "invalid sort parameter")
		}
		orders = append(orders, o)
	}

	cards, err := h.svc.FindAll(c.UserContext(), orders)
	if err != nil {
		return h.internalError(c, err)
	}
	return c.JSON(cards)
}

// Get godoc
// @Summary Get a credit card
// @Tags credit-cards
// @Produce json
// @Param id path int true "card id"
// @Success 200 {object} model.CreditCard
// @Failure 404 {object} errorPayload
// @Router /credit-cards/{id} [get]
func (h *CreditCardHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}

	card, err := h.svc.FindOne(c.UserContext(), id)
	if err != nil {
		return h.internalError(c, err)
	}
	if card == nil {
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "creditCard not found")
	}
	return c.JSON(card)
}

// Delete godoc
// @Summary Delete a credit card
// @Description Always 204, whether or not the card existed.
// @Tags credit-cards
// @Param id path int true "card id"
// @Success 204
// @Router /credit-cards/{id} [delete]
func (h *CreditCardHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}

	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return h.internalError(c, err)
	}

	entityDeletionAlert(c, h.appName, entityName, strconv.FormatInt(id, 10))
	return c.SendStatus(fiber.StatusNoContent)
}

// validateUpdate runs the PUT/PATCH preconditions in a fixed order:
// body id present, body id equal to the path id, card stored.
// passed is false when a response has already been written.
func (h *CreditCardHandler) validateUpdate(c *fiber.Ctx, id int64, card *model.CreditCard) (passed bool, err error) {
	if card.ID == nil {
		return false, h.badRequestAlert(c, "Invalid id", "idnull")
	}
	if *card.ID != id {
		return false, h.badRequestAlert(c, "Invalid ID", "idinvalid")
	}

	exists, err := h.svc.Exists(c.UserContext(), id)
	if err != nil {
		return false, h.internalError(c, err)
	}
	if !exists {
		return false, h.badRequestAlert(c, "Entity not found", "idnotfound")
	}
	return true, nil
}

func (h *CreditCardHandler) badRequestAlert(c *fiber.Ctx, message, errorKey string) error {
	failureAlert(c, h.appName, entityName, errorKey)
	return writeEntityError(c, fiber.StatusBadRequest, errorKey, message, entityName)
}

// internalError logs the store failure and answers 500 without exposing it.
func (h *CreditCardHandler) internalError(c *fiber.Ctx, err error) error {
	logger.FromContext(c.UserContext(), h.log).
		WithError(err).
		WithFields(logrus.Fields{"method": c.Method(), "path": c.Path()}).
		Error("credit card request failed")
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

func pathID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// mediaType returns the request content type without parameters, lower-cased.
func mediaType(c *fiber.Ctx) string {
	ct, _, _ := strings.Cut(string(c.Request().Header.ContentType()), ";")
	return strings.ToLower(strings.TrimSpace(ct))
}
