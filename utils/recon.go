// utils/recon.go
package utils

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
)

// ReconResolver covers the lookups domain reconnaissance needs. Tests swap
// in a mockdns.Resolver.
type ReconResolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
	LookupMX(ctx context.Context, domain string) ([]*net.MX, error)
	LookupTXT(ctx context.Context, domain string) ([]string, error)
	LookupNS(ctx context.Context, domain string) ([]*net.NS, error)
}

// Reconner gathers public DNS and registration data about a domain.
type Reconner struct {
	Resolver ReconResolver
	Timeout  time.Duration
}

func NewReconner() *Reconner {
	return &Reconner{
		Resolver: net.DefaultResolver,
		Timeout:  10 * time.Second,
	}
}

// Records looks up A, MX, TXT and NS records for the domain. Each record
// type that fails to resolve yields an empty list; lookups never fail the
// call as a whole.
func (r *Reconner) Records(ctx context.Context, domain string) map[string][]string {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	results := map[string][]string{
		"A":   {},
		"MX":  {},
		"TXT": {},
		"NS":  {},
	}

	if addrs, err := r.Resolver.LookupHost(ctx, domain); err == nil {
		results["A"] = addrs
	}
	if mxRecords, err := r.Resolver.LookupMX(ctx, domain); err == nil {
		for _, mx := range mxRecords {
			results["MX"] = append(results["MX"], strings.TrimSuffix(mx.Host, "."))
		}
	}
	if txts, err := r.Resolver.LookupTXT(ctx, domain); err == nil {
		results["TXT"] = txts
	}
	if nsRecords, err := r.Resolver.LookupNS(ctx, domain); err == nil {
		for _, ns := range nsRecords {
			results["NS"] = append(results["NS"], strings.TrimSuffix(ns.Host, "."))
		}
	}

	return results
}

// WhoisInfo is the parsed subset of a WHOIS answer worth returning.
type WhoisInfo struct {
	Domain      string   `json:"domain"`
	Registrar   string   `json:"registrar,omitempty"`
	CreatedDate string   `json:"created_date,omitempty"`
	ExpiryDate  string   `json:"expiry_date,omitempty"`
	NameServers []string `json:"name_servers,omitempty"`
	Raw         string   `json:"raw"`
}

// Whois fetches and parses registration data for the domain. A parse
// failure still returns the raw answer.
func (r *Reconner) Whois(domain string) (*WhoisInfo, error) {
	raw, err := whois.Whois(domain)
	if err != nil {
		return nil, err
	}

	info := &WhoisInfo{
		Domain: domain,
		Raw:    raw,
	}

	parsed, err := whoisparser.Parse(raw)
	if err == nil {
		if parsed.Registrar != nil {
			info.Registrar = parsed.Registrar.Name
		}
		if parsed.Domain != nil {
			info.CreatedDate = parsed.Domain.CreatedDate
			info.ExpiryDate = parsed.Domain.ExpirationDate
			info.NameServers = parsed.Domain.NameServers
		}
	}

	return info, nil
}
