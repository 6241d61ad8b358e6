package domain

// VehicleType represents the kind of vehicle
type VehicleType string

const (
	VehicleTypeCar        VehicleType = "car"
	VehicleTypeMotorcycle VehicleType = "motorcycle"
)

// VehicleTypes перечень всех допустимых типов транспорта
var VehicleTypes = []VehicleType{
	VehicleTypeCar,
	VehicleTypeMotorcycle,
}

// IsValid returns true if the type is one of the known vehicle types
func (t VehicleType) IsValid() bool {
	for _, known := range VehicleTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Vehicle represents a user's registered vehicle
type Vehicle struct {
	ID     int64
	UserID int64
	Plate  string
	Type   VehicleType
	Color  *string
}

// VehiclesFilter фильтр для получения списка транспорта
type VehiclesFilter struct {
	UserID *int64 // Фильтр по владельцу (опционально)
}
