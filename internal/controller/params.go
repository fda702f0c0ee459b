package controller

import (
	"strconv"
	"strings"

	"markethub-be/internal/entity"

	"github.com/gofiber/fiber/v2"
)

func idParam(ctx *fiber.Ctx, name string) (int, error) {
	id, err := ctx.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}

func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}

// productFilter reads the listing query string: store_id, category, q,
// min_rating, limit and offset.
func productFilter(ctx *fiber.Ctx) (entity.ProductFilter, error) {
	filter := entity.ProductFilter{
		Category: strings.TrimSpace(ctx.Query("category")),
		Query:    strings.TrimSpace(ctx.Query("q")),
		Limit:    ctx.QueryInt("limit", 0),
		Offset:   ctx.QueryInt("offset", 0),
	}

	if raw := ctx.Query("store_id"); raw != "" {
		storeId, err := strconv.Atoi(raw)
		if err != nil || storeId <= 0 {
			return filter, fiber.NewError(fiber.StatusBadRequest, "Invalid store_id")
		}
		filter.StoreId = &storeId
	}
	if raw := ctx.Query("min_rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || rating < 0 {
			return filter, fiber.NewError(fiber.StatusBadRequest, "Invalid min_rating")
		}
		filter.MinRating = rating
	}
	return filter, nil
}
