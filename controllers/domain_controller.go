// controller/domain_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"mailscout/utils"
)

type DomainController struct {
	Reconner *utils.Reconner
	Logger   *logrus.Logger
}

func NewDomainController(reconner *utils.Reconner, logger *logrus.Logger) *DomainController {
	return &DomainController{
		Reconner: reconner,
		Logger:   logger,
	}
}

// GetRecords returns the domain's A, MX, TXT and NS records. Record types
// that fail to resolve come back as empty lists.
func (dc *DomainController) GetRecords(c *fiber.Ctx) error {
	domain := c.Query("domain")
	if domain == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Domain is required",
		})
	}

	records := dc.Reconner.Records(c.Context(), domain)

	return c.JSON(fiber.Map{
		"domain":  domain,
		"records": records,
	})
}

// GetWhois returns raw and parsed WHOIS registration data for a domain.
func (dc *DomainController) GetWhois(c *fiber.Ctx) error {
	domain := c.Query("domain")
	if domain == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Domain is required",
		})
	}

	info, err := dc.Reconner.Whois(domain)
	if err != nil {
		dc.Logger.WithField("domain", domain).WithError(err).Warn("WHOIS lookup failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "WHOIS lookup failed",
		})
	}

	return c.JSON(info)
}
