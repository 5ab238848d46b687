// Package rein is the client side of the REIN ERP product API.
//
// # Authentication
//
// Every request carries HMAC headers computed by Signer:
//
//	Token     = hex(HMAC-SHA256(secret, "{path}.{database}.{expiry}"))
//	Database  = tenant name
//	Timestamp = expiry (now + 300s, unix seconds)
//	ClientId  = client identifier
//
// The path must be the literal request path without query string; a mismatch
// invalidates the signature.
//
// # Pagination
//
// Fetcher walks /api/v1/produto?page=N from page 1 until a page holds fewer
// than 100 items. Consecutive requests are spaced at least 1.05s apart
// (measured from the start of the previous request) to respect the API's
// 60 requests/minute ceiling. Client additionally shares a token bucket
// across all callers so search lookups and a running sync cannot exceed the
// budget together. A non-2xx answer aborts the walk with an *HTTPError.
//
// # Parsing
//
// Payload objects are kept as RawObject and read through fixed key priority
// lists (Sku then Id, NomeImagem then strNomeArquivo then NomeArquivo, ...).
// Extractor is the only consumer of raw payloads; it produces
// reconcile.StockRow values, one per variant per page.
package rein
