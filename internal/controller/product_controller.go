package controller

import (
	"markethub-be/internal/pkg/serverutils"
	"markethub-be/internal/service"
	"markethub-be/pkg/catalog"

	"github.com/gofiber/fiber/v2"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Featured(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type productController struct {
	service service.ICatalogService
}

func NewProductController(service service.ICatalogService) IProductController {
	return &productController{service: service}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/product/v1")
	h.Get("", c.GetAll)
	h.Get("featured", c.Featured)
	h.Get(":id", c.Show)
}

func (c *productController) GetAll(ctx *fiber.Ctx) error {
	filter, err := productFilter(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListProducts(ctx.Context(), filter)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all products", res))
}

func (c *productController) Featured(ctx *fiber.Ctx) error {
	res, err := c.service.FeaturedProducts(ctx.Context(), ctx.QueryInt("limit", catalog.DefaultFeaturedLimit))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get featured products", res))
}

func (c *productController) Show(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.GetProduct(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show product", res))
}
