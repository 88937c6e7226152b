package server

import (
	"errors"

	"newsroom/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as an int. A non-numeric value is
// the boundary's type-mismatch case and gets a 400; zero and negative values
// are syntactically valid keys that fall through to a 404 when the lookup
// misses. On failure it writes the response and returns errResponseWritten;
// callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (int, error) {
	id, err := c.ParamsInt(param)
	if err != nil {
		_ = models.RespondWithError(c, models.NewValidationError("Bad request"))
		return 0, errResponseWritten
	}
	return id, nil
}
