// Package fetch performs the outbound HTTP calls to upstream pages and
// returns raw document text. A non-success upstream status is surfaced as a
// StatusError carrying the original status code and body; nothing here
// retries, one failed fetch fails the whole request.
package fetch
