package domain

// SpaceState represents the lifecycle state of a parking space
type SpaceState string

const (
	SpaceStateFree         SpaceState = "free"
	SpaceStateOccupied     SpaceState = "occupied"
	SpaceStateReserved     SpaceState = "reserved"
	SpaceStateOutOfService SpaceState = "out_of_service"
)

// SpaceStates перечень всех допустимых состояний места.
// Используется для валидации generic set-state операции.
var SpaceStates = []SpaceState{
	SpaceStateFree,
	SpaceStateOccupied,
	SpaceStateReserved,
	SpaceStateOutOfService,
}

// IsValid returns true if the state is one of the four known states
func (s SpaceState) IsValid() bool {
	for _, known := range SpaceStates {
		if s == known {
			return true
		}
	}
	return false
}

// SpaceType represents the kind of vehicle a space is intended for
type SpaceType string

const (
	SpaceTypeCar        SpaceType = "car"
	SpaceTypeMotorcycle SpaceType = "motorcycle"
	SpaceTypeDisabled   SpaceType = "disabled"
	SpaceTypeElectric   SpaceType = "electric"
)

// SpaceTypes перечень всех допустимых типов места
var SpaceTypes = []SpaceType{
	SpaceTypeCar,
	SpaceTypeMotorcycle,
	SpaceTypeDisabled,
	SpaceTypeElectric,
}

// IsValid returns true if the type is one of the known space types
func (t SpaceType) IsValid() bool {
	for _, known := range SpaceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Space represents an individually trackable parking slot within a facility
type Space struct {
	ID         int64
	FacilityID int64
	Code       string // Human-readable code, e.g. "A-12"
	Level      *string
	Type       SpaceType
	State      SpaceState
}

// IsFree returns true if the space can accept a vehicle right now
func (s *Space) IsFree() bool {
	return s.State == SpaceStateFree
}

// IsOutOfService returns true if the space is withdrawn from operation
func (s *Space) IsOutOfService() bool {
	return s.State == SpaceStateOutOfService
}

// SpacesFilter фильтр для получения списка мест
type SpacesFilter struct {
	FacilityID *int64      // Фильтр по парковке (опционально)
	State      *SpaceState // Фильтр по состоянию (опционально)
	Type       *SpaceType  // Фильтр по типу (опционально)
}
