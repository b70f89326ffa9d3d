package input

import "context"

type LocalizationUseCase interface {
	Init(ctx context.Context, requested string) (string, error)
	Locales() []string
}
