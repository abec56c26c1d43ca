package service

import (
	"context"

	"github.com/xuri/excelize/v2"

	"songblog-backend/internal/domains/view/model"
)

// ServiceInterface - read-only view-model assembly
type ServiceInterface interface {
	Home(ctx context.Context) (*model.HomeView, error)
	Archive(ctx context.Context) ([]model.ArchiveItem, error)

	// Post returns postmodel.ErrPostNotFound khi id không tồn tại
	Post(ctx context.Context, id int64) (*model.PostView, error)

	// ExportArchive render archive thành workbook xlsx
	ExportArchive(ctx context.Context) (*excelize.File, error)
}
