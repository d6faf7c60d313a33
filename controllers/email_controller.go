// controller/email_controller.go
package controller

import (
	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"mailscout/utils"
)

type EmailController struct {
	Verifier *utils.Verifier
	Logger   *logrus.Logger
}

func NewEmailController(verifier *utils.Verifier, logger *logrus.Logger) *EmailController {
	return &EmailController{
		Verifier: verifier,
		Logger:   logger,
	}
}

type verifyRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyEmail handles single email verification: syntax, disposable-domain
// classification, MX resolution and the SMTP RCPT probe.
func (ec *EmailController) VerifyEmail(c *fiber.Ctx) error {
	var request verifyRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Invalid request format",
		})
	}

	// Schema-level rejection of strings that are not email-shaped at all;
	// well-formed-but-undeliverable addresses are the verifier's job.
	if err := utils.ValidateStruct(request); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result := ec.Verifier.Verify(c.Context(), request.Email)

	// An error together with an unknown status means the verification
	// infrastructure itself failed, not that the address is invalid.
	if result.Error != "" && result.Status == utils.StatusUnknown {
		ec.Logger.WithField("email", request.Email).Error("Verification failed: ", result.Error)
		sentry.CaptureMessage("email verification failed: " + result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": result.Error,
		})
	}

	return c.JSON(result)
}

// PredictVariations generates likely address patterns for a person at a
// domain from query parameters.
func (ec *EmailController) PredictVariations(c *fiber.Ctx) error {
	domain := c.Query("domain")
	firstName := c.Query("first_name")
	lastName := c.Query("last_name")

	variations, err := utils.PredictVariations(domain, firstName, lastName)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "First name and last name are required",
		})
	}

	utils.ObservePrediction()

	return c.JSON(fiber.Map{
		"variations": variations,
	})
}

// CheckBreaches reports known data-breach appearances for an address. Until
// an HIBP API key is configured this answers with an explicit
// "not configured" message rather than pretending the address is clean.
func (ec *EmailController) CheckBreaches(c *fiber.Ctx) error {
	email := c.Params("email")

	return c.JSON(fiber.Map{
		"email":          email,
		"breaches_found": false,
		"message":        "Breach checking requires HIBP API key configuration",
	})
}
