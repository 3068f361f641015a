package controller

import (
	"ai-agent-be/internal/dto"
	"ai-agent-be/internal/pkg/serverutils"
	"ai-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
	Tools(ctx *fiber.Ctx) error
	ClearSession(ctx *fiber.Ctx) error
}

type agentController struct {
	agentService service.IAgentService
}

func NewAgentController(agentService service.IAgentService) IAgentController {
	return &agentController{
		agentService: agentService,
	}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/agent")
	h.Post("/message", c.SendMessage)
	h.Get("/stats", c.Stats)
	h.Get("/health", c.Health)
	h.Get("/tools", c.Tools)
	h.Delete("/session/:id", c.ClearSession)
}

func (c *agentController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.agentService.ProcessMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process message", res))
}

func (c *agentController) Stats(ctx *fiber.Ctx) error {
	res, err := c.agentService.Stats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get stats", res))
}

func (c *agentController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(c.agentService.Health(ctx.Context()))
}

func (c *agentController) Tools(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get tools", c.agentService.Tools()))
}

func (c *agentController) ClearSession(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("id")
	if sessionID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Session id is required")
	}

	res := c.agentService.ClearSession(sessionID)
	return ctx.JSON(serverutils.SuccessResponse("Success clear session", res))
}
