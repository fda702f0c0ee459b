package controller

import (
	"markethub-be/internal/dto"
	"markethub-be/internal/pkg/serverutils"
	"markethub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICheckoutController interface {
	RegisterRoutes(r fiber.Router)
	Checkout(ctx *fiber.Ctx) error
	ShowOrder(ctx *fiber.Ctx) error
}

type checkoutController struct {
	service service.ICheckoutService
}

func NewCheckoutController(service service.ICheckoutService) ICheckoutController {
	return &checkoutController{service: service}
}

func (c *checkoutController) RegisterRoutes(r fiber.Router) {
	r.Post("/checkout/v1", c.Checkout)
	r.Get("/order/v1/:id", c.ShowOrder)
}

func (c *checkoutController) Checkout(ctx *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Checkout(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Order placed", res))
}

func (c *checkoutController) ShowOrder(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.GetOrder(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show order", res))
}
