package commands_test

import (
	"context"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/logistics"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/tailor"
	"atelier/internal/core/domain/model/timeline"
	"atelier/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActiveOnTrack(ctx context.Context, track order.Track) ([]*order.Order, error) {
	args := m.Called(ctx, track)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Add(ctx context.Context, it *order.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, it *order.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *MockItemRepository) UpdateAssignment(ctx context.Context, it *order.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *MockItemRepository) Get(ctx context.Context, id kernel.UUID) (*order.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Item), args.Error(1)
}

func (m *MockItemRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Item), args.Error(1)
}

func (m *MockItemRepository) GetAllUnassigned(ctx context.Context) ([]*order.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Item), args.Error(1)
}

type MockTailorRepository struct{ mock.Mock }

func (m *MockTailorRepository) Add(ctx context.Context, t *tailor.Tailor) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTailorRepository) Update(ctx context.Context, t *tailor.Tailor) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTailorRepository) Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tailor.Tailor), args.Error(1)
}

func (m *MockTailorRepository) GetAll(ctx context.Context, filter ports.TailorFilter) ([]*tailor.Tailor, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tailor.Tailor), args.Error(1)
}

func (m *MockTailorRepository) IncrementJobCount(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTailorRepository) DecrementJobCount(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLogisticsRepository struct{ mock.Mock }

func (m *MockLogisticsRepository) GetAvailableQcStations(ctx context.Context, zone string) ([]*logistics.QcStation, error) {
	args := m.Called(ctx, zone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*logistics.QcStation), args.Error(1)
}

func (m *MockLogisticsRepository) GetAvailableVans(ctx context.Context) ([]*logistics.Van, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*logistics.Van), args.Error(1)
}

func (m *MockLogisticsRepository) GetLoadableFlights(ctx context.Context) ([]*logistics.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*logistics.Flight), args.Error(1)
}

type MockTimelineRepository struct{ mock.Mock }

func (m *MockTimelineRepository) Add(ctx context.Context, record *timeline.TransitionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockTimelineRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*timeline.TransitionRecord, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*timeline.TransitionRecord), args.Error(1)
}

// MockUoW satisfies every command-side unit of work composition.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

func (m *MockUoW) TailorRepository() ports.TailorRepository {
	args := m.Called()
	return args.Get(0).(ports.TailorRepository)
}

func (m *MockUoW) LogisticsRepository() ports.LogisticsRepository {
	args := m.Called()
	return args.Get(0).(ports.LogisticsRepository)
}

func (m *MockUoW) TimelineRepository() ports.TimelineRepository {
	args := m.Called()
	return args.Get(0).(ports.TimelineRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockTransitionUoWFactory struct{ mock.Mock }

func (m *MockTransitionUoWFactory) Create() commands.TransitionUoW {
	args := m.Called()
	return args.Get(0).(commands.TransitionUoW)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockTailorUoWFactory struct{ mock.Mock }

func (m *MockTailorUoWFactory) Create() commands.TailorUoW {
	args := m.Called()
	return args.Get(0).(commands.TailorUoW)
}

var (
	_ ports.OrderRepository     = (*MockOrderRepository)(nil)
	_ ports.ItemRepository      = (*MockItemRepository)(nil)
	_ ports.TailorRepository    = (*MockTailorRepository)(nil)
	_ ports.LogisticsRepository = (*MockLogisticsRepository)(nil)
	_ ports.TimelineRepository  = (*MockTimelineRepository)(nil)
	_ commands.TransitionUoW    = (*MockUoW)(nil)
)
