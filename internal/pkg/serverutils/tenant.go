package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"educonsult-be/internal/pkg/apperror"
)

// ResolveTenantScope produces the company scope for a request. The
// payload value wins; otherwise the scope comes from the authenticated
// identity's claims. A request with neither is rejected, never
// defaulted to a shared scope.
func ResolveTenantScope(ctx *fiber.Ctx, payloadCompanyId string) (string, error) {
	if payloadCompanyId != "" {
		return payloadCompanyId, nil
	}
	if claim, ok := ctx.Locals("company_id").(string); ok && claim != "" {
		return claim, nil
	}
	return "", apperror.NewValidation("missing tenant scope: provide company_id or authenticate with a valid token")
}
