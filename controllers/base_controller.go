package controllers

import (
	"wfm-backend/lib/apperrors"
	"wfm-backend/middleware"
	apimodels "wfm-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetIDByKey(ctx, "id")
}

func (c *BaseAPIController) GetIDByKey(ctx *fiber.Ctx, key string) (string, error) {
	id := ctx.Params(key)
	if id == "" {
		return "", errors.Errorf("не указан идентификатор (%v)", key)
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("user_id", middleware.GetUserID(ctx)).
		WithField("uri", ctx.Path())
}

// статусы по классу ошибки предметной области
var kindStatus = map[apperrors.Kind]int{
	apperrors.KindValidation:   fiber.StatusBadRequest,
	apperrors.KindNotFound:     fiber.StatusNotFound,
	apperrors.KindForbidden:    fiber.StatusForbidden,
	apperrors.KindConflict:     fiber.StatusConflict,
	apperrors.KindInvalidState: fiber.StatusConflict,
	apperrors.KindPolicy:       fiber.StatusUnprocessableEntity,
}

// SendError - ошибки предметной области уходят клиенту со своим статусом и текстом,
// остальное логируется и отдаётся как 500 с общим сообщением hMsg
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	if kind := apperrors.KindOf(err); kind != "" {
		return ctx.Status(kindStatus[kind]).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(hMsg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(hMsg))
}
