package native

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"time"
)

// DefaultTimeout bounds a whole request, body included.
const DefaultTimeout = 60 * time.Second

type Driver struct {
	Timeout time.Duration

	once   sync.Once
	client *http.Client
}

func New(timeout time.Duration) *Driver {
	return &Driver{Timeout: timeout}
}

func (d *Driver) Client() *http.Client {
	d.once.Do(func() {
		timeout := d.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		dialer := &net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}

		d.client = &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
					return dialer.DialContext(ctx, network, addr)
				},
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
					RootCAs:    loadSystemCerts(),
				},
				ForceAttemptHTTP2:     true,
				MaxIdleConns:          10,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
			Timeout: timeout,
		}
	})
	return d.client
}

// loadSystemCerts returns the system pool, or a pool built from SSL_CERT_FILE
// and the usual bundle locations.
func loadSystemCerts() *x509.CertPool {
	if pool, err := x509.SystemCertPool(); err == nil && pool != nil {
		return pool
	}

	pool := x509.NewCertPool()
	certFiles := []string{
		"/etc/ssl/certs/ca-certificates.crt",
		"/etc/pki/tls/certs/ca-bundle.crt",
		"/etc/ssl/ca-bundle.pem",
		"/etc/pki/ca-trust/extracted/pem/tls-ca-bundle.pem",
	}
	if certFile := os.Getenv("SSL_CERT_FILE"); certFile != "" {
		certFiles = append([]string{certFile}, certFiles...)
	}
	for _, certFile := range certFiles {
		if certs, err := os.ReadFile(certFile); err == nil {
			if pool.AppendCertsFromPEM(certs) {
				return pool
			}
		}
	}

	slog.Warn("could not load system CA certificates from any known location")
	return pool
}
