package input

import (
	"context"

	"ytreport/internal/domain/entities"
)

type ReportUseCase interface {
	Build(ctx context.Context, query string) (*entities.Report, error)
}
