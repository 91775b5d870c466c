package handler

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/go-api-posts/internal/application/post"
	"github.com/go-api-posts/internal/framework/rest"
)

// Argument formatters of the post endpoints.
var (
	CreatePostArgs = rest.JSONBody
	PostIDArgs     = rest.URLParams(map[string]string{"id": post.ArgPostID})
	UpdatePostArgs = rest.Merge(rest.JSONBody, PostIDArgs)
)

// PostResults turns post use case results into HTTP responses.
type PostResults struct {
	log *zap.Logger
}

func NewPostResults(log *zap.Logger) *PostResults {
	if log == nil {
		log = zap.NewNop()
	}
	return &PostResults{log: log}
}

func (h *PostResults) Create(_ context.Context, res post.CreateResult) rest.Response {
	switch res.Message {
	case post.Created:
		h.log.Debug("post created", zap.String("result", string(res.Message)), zap.Int64("post_id", res.Post.ID()))
		return rest.JSON(http.StatusOK, res.Post)
	case post.CreateArgumentError, post.CreateBusinessLogicError:
		h.log.Debug("post not created", zap.String("result", string(res.Message)), zap.Strings("messages", res.Error.Messages))
		return rest.ErrorResponse(http.StatusBadRequest, res.Error)
	case post.CreateFailed:
		h.log.Warn("post not created", zap.String("result", string(res.Message)), zap.Strings("messages", res.Error.Messages))
		return rest.ErrorResponse(http.StatusBadRequest, res.Error)
	default:
		return rest.NoContent()
	}
}

func (h *PostResults) GetAll(_ context.Context, res post.GetAllResult) rest.Response {
	switch res.Message {
	case post.GetAllFound:
		h.log.Debug("posts found", zap.Int("count", len(res.Posts)))
		if len(res.Posts) == 0 {
			return rest.NoContent()
		}
		return rest.JSON(http.StatusOK, res.Posts)
	case post.GetAllFailed:
		h.log.Warn("posts not listed", zap.String("result", string(res.Message)), zap.Strings("messages", res.Error.Messages))
		return rest.ErrorResponse(http.StatusBadRequest, res.Error)
	default:
		return rest.NoContent()
	}
}

func (h *PostResults) GetByID(_ context.Context, res post.GetByIDResult) rest.Response {
	switch res.Message {
	case post.GetByIDFound:
		h.log.Debug("post found", zap.Int64("post_id", res.Post.ID()))
		return rest.JSON(http.StatusOK, res.Post)
	case post.GetByIDNotFound:
		h.log.Debug("post not found", zap.String("result", string(res.Message)))
		return rest.ErrorResponse(http.StatusNotFound, res.Error)
	case post.GetByIDFailed:
		h.log.Warn("post not read", zap.String("result", string(res.Message)), zap.Strings("messages", res.Error.Messages))
		return rest.ErrorResponse(http.StatusBadRequest, res.Error)
	default:
		return rest.NoContent()
	}
}

func (h *PostResults) Update(_ context.Context, res post.UpdateResult) rest.Response {
	switch res.Message {
	case post.Updated:
		h.log.Debug("post updated", zap.Int64("post_id", res.Post.ID()))
		return rest.JSON(http.StatusOK, res.Post)
	case post.UpdateNotFound:
		h.log.Debug("post not updated", zap.String("result", string(res.Message)))
		return rest.ErrorResponse(http.StatusNotFound, res.Error)
	case post.UpdateArgumentError, post.UpdateBusinessLogicError:
		h.log.Debug("post not updated", zap.String("result", string(res.Message)), zap.Strings("messages", res.Error.Messages))
		return rest.ErrorResponse(http.StatusBadRequest, res.Error)
	case post.UpdateFailed:
		h.log.Warn("post not updated", zap.String("result", string(res.Message)), zap.Strings("messages", res.Error.Messages))
		return rest.ErrorResponse(http.StatusBadRequest, res.Error)
	default:
		return rest.NoContent()
	}
}
