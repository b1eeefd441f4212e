package device

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a device with the requested ID does not exist.
var ErrNotFound = fmt.Errorf("device not found")

// Store interface defines methods for device storage
type Store interface {
	Create(ctx context.Context, device *Device) error
	FindByID(ctx context.Context, id uint) (*Device, error)
	FindAll(ctx context.Context) ([]*Device, error)

	// FindByHardwareContains returns all devices whose hardware description
	// contains substr, compared case-insensitively.
	FindByHardwareContains(ctx context.Context, substr string) ([]*Device, error)

	// FindWithHardware returns all devices with a non-empty hardware
	// description.
	FindWithHardware(ctx context.Context) ([]*Device, error)

	// UpdateHardware persists a new hardware description for one device,
	// leaving every other column untouched.
	UpdateHardware(ctx context.Context, id uint, hardware string) error

	// UpdateCategory persists a new category for one device, leaving every
	// other column untouched.
	UpdateCategory(ctx context.Context, id uint, category string) error

	Count(ctx context.Context) (int64, error)
}

// MySqlStore handles device persistence using GORM
type MySqlStore struct {
	db *gorm.DB
}

// NewMySqlStore creates a new device store with MySQL connection
func NewMySqlStore(databaseURL string) (*MySqlStore, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &MySqlStore{db: db}

	// Auto-migrate tables
	if err := db.AutoMigrate(&Device{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return store, nil
}

// Create inserts a new device record
func (s *MySqlStore) Create(ctx context.Context, device *Device) error {
	if err := s.db.WithContext(ctx).Create(device).Error; err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}
	return nil
}

// FindByID retrieves a device by ID
func (s *MySqlStore) FindByID(ctx context.Context, id uint) (*Device, error) {
	var device Device
	result := s.db.WithContext(ctx).First(&device, "id = ?", id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get device: %w", result.Error)
	}

	return &device, nil
}

// FindAll retrieves all device records ordered by ID
func (s *MySqlStore) FindAll(ctx context.Context) ([]*Device, error) {
	var devices []*Device
	result := s.db.WithContext(ctx).Order("id ASC").Find(&devices)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list devices: %w", result.Error)
	}

	return devices, nil
}

// FindByHardwareContains retrieves all devices whose hardware description
// contains substr, case-insensitively (LOWER + LIKE, the same comparison the
// previous system's icontains lookup performed).
func (s *MySqlStore) FindByHardwareContains(ctx context.Context, substr string) ([]*Device, error) {
	pattern := "%" + escapeLike(strings.ToLower(substr)) + "%"

	var devices []*Device
	result := s.db.WithContext(ctx).
		Where("hardware IS NOT NULL AND LOWER(hardware) LIKE ?", pattern).
		Order("id ASC").
		Find(&devices)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query devices by hardware: %w", result.Error)
	}

	return devices, nil
}

// FindWithHardware retrieves all devices with a non-empty hardware description
func (s *MySqlStore) FindWithHardware(ctx context.Context) ([]*Device, error) {
	var devices []*Device
	result := s.db.WithContext(ctx).
		Where("hardware IS NOT NULL AND hardware <> ''").
		Order("id ASC").
		Find(&devices)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query devices with hardware: %w", result.Error)
	}

	return devices, nil
}

// UpdateHardware persists only the hardware column for the given device
func (s *MySqlStore) UpdateHardware(ctx context.Context, id uint, hardware string) error {
	result := s.db.WithContext(ctx).Model(&Device{}).Where("id = ?", id).Update("hardware", hardware)
	if result.Error != nil {
		return fmt.Errorf("failed to update hardware: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// UpdateCategory persists only the category column for the given device
func (s *MySqlStore) UpdateCategory(ctx context.Context, id uint, category string) error {
	result := s.db.WithContext(ctx).Model(&Device{}).Where("id = ?", id).Update("category", category)
	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the total number of device records
func (s *MySqlStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&Device{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count devices: %w", err)
	}
	return count, nil
}

// escapeLike escapes LIKE wildcards so a literal substring search cannot be
// widened by % or _ in the search text.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
