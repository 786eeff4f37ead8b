package collector

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/probeworks/diligent/pkg/errkind"
	"github.com/probeworks/diligent/pkg/models"
)

// TLSScanner inspects the TLS endpoint of the company website: negotiated
// protocol, cipher suite, and leaf certificate validity.
type TLSScanner struct {
	dialer *tls.Dialer
}

func NewTLSScanner() *TLSScanner {
	return &TLSScanner{
		dialer: &tls.Dialer{
			NetDialer: &net.Dialer{Timeout: 10 * time.Second},
		},
	}
}

func (t *TLSScanner) Name() string                    { return "tls-scanner" }
func (t *TLSScanner) Capabilities() []Capability      { return []Capability{CapTLS, CapSecurity} }
func (t *TLSScanner) Cost() float64                   { return 0.2 }
func (t *TLSScanner) SuggestedTimeout() time.Duration { return 20 * time.Second }
func (t *TLSScanner) MaxConcurrency() int             { return 8 }

func (t *TLSScanner) Collect(ctx context.Context, in Input) ([]models.EvidenceItem, bool, error) {
	site, err := url.Parse(in.Company.Website)
	if err != nil || site.Hostname() == "" {
		return nil, false, errkind.Newf(errkind.InvalidInput, "invalid website %q", in.Company.Website)
	}
	host := site.Hostname()
	port := site.Port()
	if port == "" {
		port = "443"
	}

	conn, err := t.dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, port))
	if err != nil {
		return nil, false, err
	}
	defer conn.Close()

	state := conn.(*tls.Conn).ConnectionState()
	if len(state.PeerCertificates) == 0 {
		return nil, false, errkind.Newf(errkind.UpstreamMalformed, "no peer certificate from %s", host)
	}
	leaf := state.PeerCertificates[0]
	now := time.Now().UTC()
	daysLeft := int(leaf.NotAfter.Sub(now).Hours() / 24)

	summary := fmt.Sprintf(
		"TLS endpoint %s negotiates %s with %s. Certificate issued by %s, valid until %s (%d days remaining), covering %s.",
		host,
		tls.VersionName(state.Version),
		tls.CipherSuiteName(state.CipherSuite),
		leaf.Issuer.CommonName,
		leaf.NotAfter.UTC().Format("2006-01-02"),
		daysLeft,
		strings.Join(leaf.DNSNames, ", "),
	)

	conf := 0.95
	if state.Version < tls.VersionTLS12 || daysLeft < 14 {
		conf = 0.9
	}

	item := models.EvidenceItem{
		ScanID:   in.ScanID,
		Category: models.CategorySecurity,
		Type:     models.TypeTLSConfig,
		Title:    fmt.Sprintf("TLS configuration for %s", host),
		Summary:  summary,
		Source: models.SourceDescriptor{
			Kind:        "tls-scan",
			URL:         in.Company.Website,
			Tool:        t.Name(),
			CollectedAt: now,
		},
		Confidence: conf,
		Relevance:  0.7,
		Metadata: map[string]any{
			"protocol":      tls.VersionName(state.Version),
			"cipher_suite":  tls.CipherSuiteName(state.CipherSuite),
			"issuer":        leaf.Issuer.CommonName,
			"not_after":     leaf.NotAfter.UTC(),
			"days_left":     daysLeft,
			"dns_names":     leaf.DNSNames,
			"self_signed":   leaf.Issuer.CommonName == leaf.Subject.CommonName && len(state.PeerCertificates) == 1,
		},
		ProcessingTrail: []string{"tls-dial", "cert-inspect"},
	}
	return []models.EvidenceItem{item}, true, nil
}
