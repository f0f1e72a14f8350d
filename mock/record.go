package mock

import (
	"context"

	"github.com/fwojciec/pagemeta"
)

var _ pagemeta.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of pagemeta.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, record *pagemeta.Record, html string) error
	FindRecordByIDFn func(ctx context.Context, id string) (*pagemeta.Record, error)
	FindRecordsFn    func(ctx context.Context, filter pagemeta.RecordFilter) ([]*pagemeta.Record, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, record *pagemeta.Record, html string) error {
	return s.CreateRecordFn(ctx, record, html)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*pagemeta.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter pagemeta.RecordFilter) ([]*pagemeta.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}
