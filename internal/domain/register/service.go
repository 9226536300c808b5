package register

import "context"

type RegisterService interface {
	List(ctx context.Context) ([]EntryResponse, error)
	CreateManual(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)
	SetReconciled(ctx context.Context, id string, reconciled bool) (EntryResponse, error)
	DeleteManual(ctx context.Context, id string) error
}
