package register

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/paylite/payroll-backend-go/internal/domain/payroll"
	"github.com/paylite/payroll-backend-go/internal/domain/register"
	"github.com/paylite/payroll-backend-go/internal/domain/state"
	"github.com/paylite/payroll-backend-go/internal/pkg/appstate"
	"github.com/shopspring/decimal"
)

type RegisterServiceImpl struct {
	st *appstate.Manager
}

func NewRegisterService(st *appstate.Manager) register.RegisterService {
	return &RegisterServiceImpl{st: st}
}

func (s *RegisterServiceImpl) List(ctx context.Context) ([]register.EntryResponse, error) {
	var result []register.EntryResponse
	err := s.st.Read(func(st *state.AppState) error {
		result = mapToEntryResponses(st.Register)
		return nil
	})
	return result, err
}

func (s *RegisterServiceImpl) CreateManual(ctx context.Context, req register.CreateEntryRequest) (register.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return register.EntryResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	entry := register.Entry{
		ID:          uuid.NewString(),
		Date:        date,
		Description: req.Description,
		Debit:       payroll.CoerceAmount(req.Debit),
		Credit:      payroll.CoerceAmount(req.Credit),
		Source:      register.SourceManual,
	}

	var result register.EntryResponse
	err := s.st.Write(ctx, func(st *state.AppState) error {
		st.Register = append(st.Register, entry)
		for _, r := range mapToEntryResponses(st.Register) {
			if r.ID == entry.ID {
				result = r
			}
		}
		return nil
	})
	return result, err
}

func (s *RegisterServiceImpl) SetReconciled(ctx context.Context, id string, reconciled bool) (register.EntryResponse, error) {
	var result register.EntryResponse
	err := s.st.Write(ctx, func(st *state.AppState) error {
		for i := range st.Register {
			if st.Register[i].ID == id {
				st.Register[i].Reconciled = reconciled
				for _, r := range mapToEntryResponses(st.Register) {
					if r.ID == id {
						result = r
					}
				}
				return nil
			}
		}
		return register.ErrEntryNotFound
	})
	return result, err
}

func (s *RegisterServiceImpl) DeleteManual(ctx context.Context, id string) error {
	return s.st.Write(ctx, func(st *state.AppState) error {
		for i := range st.Register {
			if st.Register[i].ID != id {
				continue
			}
			if st.Register[i].Source != register.SourceManual {
				return register.ErrNotManual
			}
			st.Register = append(st.Register[:i], st.Register[i+1:]...)
			return nil
		}
		return register.ErrEntryNotFound
	})
}

// mapToEntryResponses sorts a copy by date (stable for equal dates) and
// carries a running balance of debits minus credits.
func mapToEntryResponses(entries []register.Entry) []register.EntryResponse {
	sorted := append([]register.Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	result := make([]register.EntryResponse, 0, len(sorted))
	balance := decimal.Zero
	for _, e := range sorted {
		balance = balance.Add(e.Debit).Sub(e.Credit)
		result = append(result, register.EntryResponse{
			ID:          e.ID,
			Date:        e.Date.Format("2006-01-02"),
			Description: e.Description,
			Debit:       e.Debit,
			Credit:      e.Credit,
			Reconciled:  e.Reconciled,
			Source:      string(e.Source),
			PayrollKey:  e.PayrollKey,
			Balance:     balance,
		})
	}
	return result
}
