// Package transport builds the HTTP clients used to fetch pages.
//
// Requests go out directly by default. When a proxy address is configured,
// every connection is dialed through that SOCKS5 proxy instead.
//
// # Usage
//
//	client, err := transport.NewClient(transport.Options{Timeout: 30 * time.Second})
//	httpClient := client.HTTPClientWithConfig("", map[string]string{"Accept-Language": "en"})
package transport
