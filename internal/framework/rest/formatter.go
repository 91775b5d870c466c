package rest

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/go-api-posts/internal/framework/usecase"
	"github.com/go-api-posts/internal/pkg/jsonx"
)

// maxBodyBytes caps how much of a request body JSONBody reads.
const maxBodyBytes = 1 << 20

// ArgsFormatter turns a request into use case arguments.
type ArgsFormatter interface {
	Format(r *http.Request) usecase.Args
}

// ArgsFormatterFunc adapts a function to ArgsFormatter.
type ArgsFormatterFunc func(r *http.Request) usecase.Args

func (f ArgsFormatterFunc) Format(r *http.Request) usecase.Args { return f(r) }

// JSONBody uses the decoded JSON object body as arguments. A missing, oversized or
// non-object body yields empty arguments so the use case reports what is missing.
var JSONBody ArgsFormatter = ArgsFormatterFunc(func(r *http.Request) usecase.Args {
	if r.Body == nil {
		return usecase.Args{}
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil || len(data) > maxBodyBytes {
		return usecase.Args{}
	}
	obj, err := jsonx.DecodeObject(data)
	if err != nil {
		return usecase.Args{}
	}
	return usecase.Args(obj)
})

// URLParams maps chi URL parameters to argument names, e.g. URLParams(map[string]string{"id": "postID"}).
func URLParams(names map[string]string) ArgsFormatter {
	return ArgsFormatterFunc(func(r *http.Request) usecase.Args {
		args := make(usecase.Args, len(names))
		for param, arg := range names {
			if v := chi.URLParam(r, param); v != "" {
				args[arg] = v
			}
		}
		return args
	})
}

// Merge runs formatters in order; later formatters override earlier keys.
func Merge(formatters ...ArgsFormatter) ArgsFormatter {
	return ArgsFormatterFunc(func(r *http.Request) usecase.Args {
		args := usecase.Args{}
		for _, f := range formatters {
			args = args.Merge(f.Format(r))
		}
		return args
	})
}
