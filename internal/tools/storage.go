package tools

import (
	"context"

	"github.com/crystaldolphin/supatools/internal/schema"
)

// NewUploadFileTool stores the file argument in a bucket. An explicit
// contentType option wins over the type implied by the payload shape.
func NewUploadFileTool(store ObjectStore) Tool {
	return newTool(schema.ToolUploadFile, func(ctx context.Context, a schema.UploadFileArgs) (any, error) {
		data, contentType, err := a.Payload()
		if err != nil {
			return nil, err
		}
		opts := a.Options
		if opts.ContentType == "" {
			opts.ContentType = contentType
		}
		return store.Upload(ctx, a.Bucket, a.Path, data, opts)
	})
}

func NewDownloadFileTool(store ObjectStore) Tool {
	return newTool(schema.ToolDownloadFile, func(ctx context.Context, a schema.DownloadFileArgs) (any, error) {
		return store.Download(ctx, a.Bucket, a.Path)
	})
}
