// Package client implements a generic REST API client with bearer-token
// authentication.
//
// A [Client] owns one reusable connection context (default headers, TLS
// policy, timeout) created at construction. All failures surface as a single
// structured [*APIError]: transport errors carry only a message, HTTP error
// statuses additionally carry the status code and the raw response. Request
// and response bodies are schema-free values (maps, slices, scalars).
//
// A Client is built for one in-flight request at a time; callers needing
// parallelism should use independent instances. Close releases the
// connection context and is safe to call more than once:
//
//	c, err := client.New(cfg.ClientSettings(), log)
//	if err != nil {
//		return err
//	}
//	defer c.Close()
package client
