package handler

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"questshare/internal/catalog"
	"questshare/internal/model"
	"questshare/internal/service"
)

// IdentityHeader carries the authenticated subject set by the auth proxy in
// front of this API. An empty header means an unauthenticated request.
const IdentityHeader = "X-User-ID"

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin: parse, call the service, translate the error.
func RegisterRoutes(app *fiber.App, db *sql.DB,
	accounts service.AccountService,
	materials service.MaterialService,
	moderation service.ModerationService,
	guides service.StudyGuideService,
) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/catalog/departments", ListDepartments())

	app.Post("/accounts", RegisterAccount(accounts))
	app.Get("/accounts/me", GetMyAccount(accounts))

	app.Get("/materials", ListMaterials(materials))
	app.Get("/materials/recent", ListRecentMaterials(materials))
	app.Get("/materials/mine", ListMyMaterials(accounts, materials))
	app.Post("/materials", UploadMaterial(accounts, materials))

	admin := app.Group("/admin")
	admin.Get("/materials/pending", ListPendingMaterials(accounts, moderation))
	admin.Get("/materials/stats", ModerationStats(accounts, moderation))
	admin.Patch("/materials/:id/status", DecideMaterial(accounts, moderation))

	app.Post("/study-guides", GenerateStudyGuide(guides))
}

// currentAccount resolves the request identity to a registered account.
// Unregistered identities are indistinguishable from missing ones here; only
// GetMyAccount reports the difference so the client can start registration.
func currentAccount(c *fiber.Ctx, accounts service.AccountService) (*model.Account, error) {
	id := c.Get(IdentityHeader)
	if id == "" {
		return nil, service.ErrUnauthenticated
	}
	a, err := accounts.Resolve(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, service.ErrUnauthenticated
		}
		return nil, err
	}
	return a, nil
}

// HealthCheck checks DB connectivity only.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness probe.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListDepartments serves the static department/semester/subject taxonomy.
func ListDepartments() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"departments": catalog.Departments()})
	}
}

// RegisterAccount creates the profile for a fresh identity.
func RegisterAccount(accounts service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := c.Get(IdentityHeader)
		if identity == "" {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "account required")
		}

		var in service.RegisterInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "malformed request body")
		}

		a, err := accounts.Register(c.UserContext(), identity, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(a)
	}
}

// GetMyAccount returns the caller's registered profile. A 404 here tells the
// client to run registration for this identity.
func GetMyAccount(accounts service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := c.Get(IdentityHeader)
		if identity == "" {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "account required")
		}
		a, err := accounts.Resolve(c.UserContext(), identity)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(a)
	}
}

// ListMaterials returns approved materials of one type, narrowed by the
// search/department/semester/subject query parameters. Empty or "all" values
// leave the corresponding dimension unrestricted.
func ListMaterials(materials service.MaterialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mtype := model.MaterialType(c.Query("type"))
		f := service.MaterialFilter{
			Search:     c.Query("search"),
			Department: c.Query("department"),
			Semester:   c.Query("semester"),
			Subject:    c.Query("subject"),
		}

		items, err := materials.ListApproved(c.UserContext(), mtype, f)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"items": items, "total": len(items)})
	}
}

// ListRecentMaterials returns the newest approved materials across all types.
func ListRecentMaterials(materials service.MaterialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limitStr := c.Query("limit", "10")
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid limit")
		}

		items, err := materials.ListRecent(c.UserContext(), limit)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"items": items, "total": len(items)})
	}
}

// ListMyMaterials returns every material the caller uploaded, any status.
func ListMyMaterials(accounts service.AccountService, materials service.MaterialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := currentAccount(c, accounts)
		if err != nil {
			return writeServiceError(c, err)
		}

		items, err := materials.ListMine(c.UserContext(), actor)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"items": items, "total": len(items)})
	}
}

// UploadMaterial accepts multipart/form-data: the metadata fields plus a
// single "file" part. The new material always enters the store as pending.
func UploadMaterial(accounts service.AccountService, materials service.MaterialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := currentAccount(c, accounts)
		if err != nil {
			return writeServiceError(c, err)
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "file is required")
		}

		semester, err := strconv.Atoi(c.FormValue("semester"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid semester")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		in := service.UploadInput{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
			Type:        model.MaterialType(c.FormValue("type")),
			Department:  c.FormValue("department"),
			Semester:    semester,
			Subject:     c.FormValue("subject"),
			FileName:    fh.Filename,
			FileSize:    fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
		}

		m, err := materials.Upload(c.UserContext(), actor, in, f)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

// ListPendingMaterials serves the admin moderation queue.
func ListPendingMaterials(accounts service.AccountService, moderation service.ModerationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := currentAccount(c, accounts)
		if err != nil {
			return writeServiceError(c, err)
		}

		items, err := moderation.ListPending(c.UserContext(), actor)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"items": items, "total": len(items)})
	}
}

// ModerationStats serves the per-status material counts for the dashboard.
func ModerationStats(accounts service.AccountService, moderation service.ModerationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := currentAccount(c, accounts)
		if err != nil {
			return writeServiceError(c, err)
		}

		counts, err := moderation.Stats(c.UserContext(), actor)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(counts)
	}
}

type decideRequest struct {
	Status model.MaterialStatus `json:"status"`
}

// DecideMaterial applies the one-way approve/reject transition.
func DecideMaterial(accounts service.AccountService, moderation service.ModerationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := currentAccount(c, accounts)
		if err != nil {
			return writeServiceError(c, err)
		}

		var req decideRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "malformed request body")
		}

		m, err := moderation.Decide(c.UserContext(), actor, c.Params("id"), req.Status)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(m)
	}
}

type studyGuideRequest struct {
	Topic string `json:"topic"`
}

// GenerateStudyGuide asks the external generator for a guide on one topic.
func GenerateStudyGuide(guides service.StudyGuideService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req studyGuideRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "malformed request body")
		}

		guide, err := guides.Generate(c.UserContext(), req.Topic)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(guide)
	}
}
