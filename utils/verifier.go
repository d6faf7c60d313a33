// utils/verifier.go
package utils

import (
	"context"
	"net"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Verification statuses. "unknown" covers every case where deliverability
// could not be determined, including servers that block RCPT probing.
const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
	StatusUnknown = "unknown"
)

type VerificationResult struct {
	Email       string               `json:"email"`
	Status      string               `json:"status"` // valid, invalid, unknown
	SMTPValid   bool                 `json:"smtp_valid"`
	Disposable  bool                 `json:"disposable"`
	BreachFound bool                 `json:"breach_found"`
	Details     *VerificationDetails `json:"details,omitempty"`
	Error       string               `json:"error,omitempty"`
}

type VerificationDetails struct {
	MXRecords []string `json:"mx_records"`
	Domain    string   `json:"domain"`
}

// Resolver is the subset of net.Resolver the verifier needs. Tests swap in
// a mockdns.Resolver.
type Resolver interface {
	LookupMX(ctx context.Context, domain string) ([]*net.MX, error)
}

var (
	// Coarse syntax filter, deliberately not full RFC 5321/5322: no quoted
	// local parts, no IP-literal domains, no Unicode.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	disposableDomains = map[string]struct{}{
		"tempmail.com":      {},
		"guerrillamail.com": {},
		"10minutemail.com":  {},
		"mailinator.com":    {},
		"throwaway.email":   {},
		"temp-mail.org":     {},
	}
)

// IsValidFormat reports whether email passes the syntax filter.
func IsValidFormat(email string) bool {
	return emailRegex.MatchString(email)
}

// IsDisposable reports whether domain belongs to a known throwaway-mailbox
// provider. Exact match only, no subdomain handling.
func IsDisposable(domain string) bool {
	_, ok := disposableDomains[strings.ToLower(domain)]
	return ok
}

// Verifier performs single-address deliverability checks. It is stateless
// and safe for concurrent use; every call does its own DNS lookup and SMTP
// round-trip.
type Verifier struct {
	Resolver Resolver
	Timeout  time.Duration // bounds the DNS lookup and the whole SMTP session
	From     string        // fixed neutral MAIL FROM, never the caller's address
	HeloHost string
	// ProbePort overrides the SMTP port, for tests against local listeners.
	ProbePort string
	Logger    *logrus.Logger
}

func NewVerifier(logger *logrus.Logger) *Verifier {
	heloHost, err := os.Hostname()
	if err != nil || heloHost == "" {
		heloHost = "localhost"
	}
	return &Verifier{
		Resolver:  net.DefaultResolver,
		Timeout:   10 * time.Second,
		From:      "verify@example.com",
		HeloHost:  heloHost,
		ProbePort: "25",
		Logger:    logger,
	}
}

// Verify runs the full pipeline: syntax, disposable classification, MX
// resolution and the RCPT probe against the top-priority exchanger. It
// always returns a result; infrastructure failures are folded into the
// invalid/unknown status vocabulary rather than returned as errors.
func (v *Verifier) Verify(ctx context.Context, email string) *VerificationResult {
	result := &VerificationResult{
		Email:  email,
		Status: StatusUnknown,
	}

	if !IsValidFormat(email) {
		result.Status = StatusInvalid
		result.Error = "Invalid email format"
		ObserveVerification(result.Status)
		return result
	}

	// The format check guarantees exactly one @.
	domain := ExtractDomain(email)

	result.Disposable = IsDisposable(domain)

	mxRecords, err := v.ResolveMX(ctx, domain)
	if err != nil || len(mxRecords) == 0 {
		// No distinction between NXDOMAIN, timeouts and true empty
		// answers: all mean "this domain receives no mail".
		result.Status = StatusInvalid
		result.Error = "No MX records found"
		ObserveVerification(result.Status)
		return result
	}

	// Only the top-priority exchanger is probed; there is no fallback to
	// secondary hosts.
	smtpValid, probeErr := v.ProbeRecipient(email, mxRecords[0])
	if probeErr != nil && v.Logger != nil {
		v.Logger.WithFields(logrus.Fields{
			"email": email,
			"mx":    mxRecords[0],
		}).WithError(probeErr).Debug("SMTP probe inconclusive")
	}

	result.SMTPValid = smtpValid
	if smtpValid {
		result.Status = StatusValid
	} else {
		// A refused or blocked probe means undetermined, not invalid.
		result.Status = StatusUnknown
	}
	result.Details = &VerificationDetails{
		MXRecords: mxRecords,
		Domain:    domain,
	}

	ObserveVerification(result.Status)
	return result
}

// ResolveMX returns the domain's mail exchangers in resolver order with any
// trailing root-label dot stripped. Resolution failure is returned as an
// error; callers treat it the same as an empty answer.
func (v *Verifier) ResolveMX(ctx context.Context, domain string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, v.Timeout)
	defer cancel()

	mxRecords, err := v.Resolver.LookupMX(ctx, domain)
	if err != nil {
		return nil, err
	}

	hosts := make([]string, 0, len(mxRecords))
	for _, mx := range mxRecords {
		hosts = append(hosts, strings.TrimSuffix(mx.Host, "."))
	}
	return hosts, nil
}

// ExtractDomain returns the domain part of an email address, or "" when the
// address does not contain exactly one @.
func ExtractDomain(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) == 2 {
		return parts[1]
	}
	return ""
}
