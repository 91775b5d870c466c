package rest

import (
	"net/http"

	"github.com/go-api-posts/internal/framework/usecase"
	"github.com/go-api-posts/internal/pkg/jsonx"
)

// Response is the wire-level outcome of a request: a status code, an optional
// JSON body and extra headers. A nil Body writes no body at all.
type Response struct {
	Status int
	Body   any
	Header http.Header
}

// NoContent is the fallback response of result handlers.
func NoContent() Response { return Response{Status: http.StatusNoContent} }

// JSON returns a response carrying body encoded as JSON.
func JSON(status int, body any) Response { return Response{Status: status, Body: body} }

// ErrorResponse returns a response carrying the formatted use case error.
func ErrorResponse(status int, e *usecase.Error) Response {
	return JSON(status, e.Formatted())
}

var internalError = ErrorResponse(http.StatusInternalServerError, usecase.NewFailedError("internal server error"))

// Write sends resp to w. Encoding happens before the header is written so an
// unencodable body turns into a 500 instead of a truncated response.
func Write(w http.ResponseWriter, resp Response) error {
	for k, vs := range resp.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	if resp.Body == nil {
		w.WriteHeader(resp.Status)
		return nil
	}
	body, err := jsonx.Encode(resp.Body)
	if err != nil {
		body, _ = jsonx.Encode(internalError.Body)
		resp.Status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	if _, werr := w.Write(body); werr != nil {
		return werr
	}
	return err
}
