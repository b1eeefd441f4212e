package device

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// InMemoryStore provides an in-memory implementation of Store for testing
type InMemoryStore struct {
	devices map[uint]*Device
	nextID  uint
	mutex   sync.RWMutex
}

// NewInMemoryStore creates a new in-memory device store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		devices: make(map[uint]*Device),
		nextID:  1,
	}
}

// Create inserts a new device record, assigning an ID when none is set
func (s *InMemoryStore) Create(ctx context.Context, device *Device) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if device.ID == 0 {
		device.ID = s.nextID
	}
	if device.ID >= s.nextID {
		s.nextID = device.ID + 1
	}

	// Store a copy to avoid shared references
	s.devices[device.ID] = copyDevice(device)
	return nil
}

// FindByID retrieves a device by ID
func (s *InMemoryStore) FindByID(ctx context.Context, id uint) (*Device, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	device, ok := s.devices[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyDevice(device), nil
}

// FindAll retrieves all device records ordered by ID
func (s *InMemoryStore) FindAll(ctx context.Context) ([]*Device, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.collect(func(*Device) bool { return true }), nil
}

// FindByHardwareContains retrieves all devices whose hardware description
// contains substr, case-insensitively
func (s *InMemoryStore) FindByHardwareContains(ctx context.Context, substr string) ([]*Device, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	needle := strings.ToLower(substr)
	return s.collect(func(d *Device) bool {
		return d.Hardware != nil && strings.Contains(strings.ToLower(*d.Hardware), needle)
	}), nil
}

// FindWithHardware retrieves all devices with a non-empty hardware description
func (s *InMemoryStore) FindWithHardware(ctx context.Context) ([]*Device, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.collect(func(d *Device) bool {
		return d.Hardware != nil && *d.Hardware != ""
	}), nil
}

// UpdateHardware persists only the hardware field for the given device
func (s *InMemoryStore) UpdateHardware(ctx context.Context, id uint, hardware string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	device, ok := s.devices[id]
	if !ok {
		return ErrNotFound
	}

	device.Hardware = &hardware
	return nil
}

// UpdateCategory persists only the category field for the given device
func (s *InMemoryStore) UpdateCategory(ctx context.Context, id uint, category string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	device, ok := s.devices[id]
	if !ok {
		return ErrNotFound
	}

	device.Category = category
	return nil
}

// Count returns the total number of device records
func (s *InMemoryStore) Count(ctx context.Context) (int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return int64(len(s.devices)), nil
}

// collect returns copies of all devices matching the filter, ordered by ID.
// Callers must hold the mutex.
func (s *InMemoryStore) collect(match func(*Device) bool) []*Device {
	devices := []*Device{}
	for _, d := range s.devices {
		if match(d) {
			devices = append(devices, copyDevice(d))
		}
	}

	sort.Slice(devices, func(i, j int) bool { return devices[i].ID < devices[j].ID })
	return devices
}

func copyDevice(d *Device) *Device {
	c := *d
	if d.Hardware != nil {
		hw := *d.Hardware
		c.Hardware = &hw
	}
	return &c
}
