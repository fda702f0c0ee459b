package controller

import (
	"markethub-be/internal/dto"
	"markethub-be/internal/pkg/serverutils"
	"markethub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICartController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Summary(ctx *fiber.Ctx) error
	AddItem(ctx *fiber.Ctx) error
	UpdateItem(ctx *fiber.Ctx) error
	RemoveItem(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type cartController struct {
	service service.ICartService
}

func NewCartController(service service.ICartService) ICartController {
	return &cartController{service: service}
}

func (c *cartController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cart/v1")
	h.Get("", c.Show)
	h.Delete("", c.Clear)
	h.Get("summary", c.Summary)
	h.Post("items", c.AddItem)
	h.Put("items/:productId", c.UpdateItem)
	h.Delete("items/:productId", c.RemoveItem)
}

func (c *cartController) Show(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get cart", c.service.GetCart(ctx.Context())))
}

func (c *cartController) Summary(ctx *fiber.Ctx) error {
	res, err := c.service.Summary(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get cart summary", res))
}

func (c *cartController) AddItem(ctx *fiber.Ctx) error {
	var req dto.AddToCartRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AddItem(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success add item to cart", res))
}

func (c *cartController) UpdateItem(ctx *fiber.Ctx) error {
	var req dto.UpdateCartItemRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateItem(ctx.Context(), ctx.Params("productId"), *req.Quantity)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update cart item", res))
}

func (c *cartController) RemoveItem(ctx *fiber.Ctx) error {
	res, err := c.service.RemoveItem(ctx.Context(), ctx.Params("productId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success remove cart item", res))
}

func (c *cartController) Clear(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success clear cart", c.service.Clear(ctx.Context())))
}
