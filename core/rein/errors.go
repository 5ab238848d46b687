package rein

import "fmt"

// maxPreview is how many bytes of an error body are kept for diagnostics.
const maxPreview = 400

// HTTPError is returned when the API answers with a non-2xx status.
type HTTPError struct {
	Path    string
	Page    int
	Status  int
	Preview string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("rein: GET %s page %d failed (status=%d): %s", e.Path, e.Page, e.Status, e.Preview)
}

func preview(body []byte) string {
	if len(body) > maxPreview {
		body = body[:maxPreview]
	}
	return string(body)
}
