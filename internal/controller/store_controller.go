package controller

import (
	"markethub-be/internal/dto"
	"markethub-be/internal/pkg/serverutils"
	"markethub-be/internal/service"
	"markethub-be/pkg/catalog"

	"github.com/gofiber/fiber/v2"
)

type IStoreController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Featured(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Products(ctx *fiber.Ctx) error
}

type storeController struct {
	service service.ICatalogService
}

func NewStoreController(service service.ICatalogService) IStoreController {
	return &storeController{service: service}
}

func (c *storeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/store/v1")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("featured", c.Featured)
	h.Get(":id", c.Show)
	h.Get(":id/products", c.Products)
}

func (c *storeController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.ListStores(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all stores", res))
}

func (c *storeController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateStoreRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateStore(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create store", res))
}

// Featured returns the dashboard rows: top rated products grouped by store.
func (c *storeController) Featured(ctx *fiber.Ctx) error {
	res, err := c.service.FeaturedByStore(ctx.Context(), ctx.QueryInt("per_store", catalog.DefaultPerStore))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get featured products", res))
}

func (c *storeController) Show(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.GetStore(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show store", res))
}

func (c *storeController) Products(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}
	filter, err := productFilter(ctx)
	if err != nil {
		return err
	}
	filter.StoreId = &id

	res, err := c.service.ListProducts(ctx.Context(), filter)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get store products", res))
}
