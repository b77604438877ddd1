package dispatcherrepo

import (
	"context"
	"errors"

	"farmmarket/internal/core/domain/model/delivery"
	"farmmarket/internal/core/domain/model/dispatcher"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/services"
	"farmmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDispatcherRepository implements DispatcherRepository using GORM.
type GormDispatcherRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDispatcherRepository creates a new GORM dispatcher repository.
func NewGormDispatcherRepository(db *gorm.DB, tracker aggregateTracker) *GormDispatcherRepository {
	return &GormDispatcherRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new dispatcher to the database.
func (r *GormDispatcherRepository) Add(ctx context.Context, aggregate *dispatcher.Dispatcher) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing dispatcher to the database.
func (r *GormDispatcherRepository) Update(ctx context.Context, aggregate *dispatcher.Dispatcher) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DispatcherDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "phone", "vehicle_type", "base_latitude", "base_longitude", "active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a dispatcher by ID.
func (r *GormDispatcherRepository) Get(ctx context.Context, id kernel.UUID) (*dispatcher.Dispatcher, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DispatcherDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispatcher", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActiveIDs retrieves the identifiers of all active dispatchers.
func (r *GormDispatcherRepository) GetAllActiveIDs(ctx context.Context) ([]kernel.UUID, error) {
	var rawIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&DispatcherDTO{}).
		Where("active = true").
		Order("id").
		Pluck("id", &rawIDs).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// GetWorkloads computes the current workload snapshot for every active dispatcher.
// Pending counts deliveries that have not reached the delivered state, total
// counts every delivery ever assigned. Dispatchers without deliveries appear
// with zero counts.
func (r *GormDispatcherRepository) GetWorkloads(ctx context.Context) ([]services.DispatcherWorkload, error) {
	workloads := make([]services.DispatcherWorkload, 0)

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			COUNT(CASE WHEN dl.status <> ? THEN 1 END) AS pending_orders,
			COUNT(dl.id) AS total_orders
		FROM dispatchers d
		LEFT JOIN deliveries dl ON dl.dispatcher_id = d.id
		WHERE d.active = true
		GROUP BY d.id
		ORDER BY d.id
	`, delivery.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var workload services.DispatcherWorkload
		var id uuid.UUID

		err = rows.Scan(&id, &workload.PendingOrders, &workload.TotalOrders)
		if err != nil {
			return nil, err
		}

		dispatcherID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		workload.DispatcherID = dispatcherID
		workloads = append(workloads, workload)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workloads, nil
}
