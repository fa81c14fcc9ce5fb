package identifier

// Kind is one of the fixed identifier formats known to this package.
type Kind uint8

const (
	Email Kind = iota + 1
	PhoneNumber
	BusinessVehiclePlateOld
	BusinessVehiclePlateNew
	PersonalVehiclePlate
)

var kindNames = map[Kind]string{
	Email:                   "email",
	PhoneNumber:             "phone_number",
	BusinessVehiclePlateOld: "business_vehicle_plate_old",
	BusinessVehiclePlateNew: "business_vehicle_plate_new",
	PersonalVehiclePlate:    "personal_vehicle_plate",
}

// String returns a stable snake_case name, or "unknown" for values outside the set.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Kinds returns all kinds in declaration order.
func Kinds() []Kind {
	return []Kind{
		Email,
		PhoneNumber,
		BusinessVehiclePlateOld,
		BusinessVehiclePlateNew,
		PersonalVehiclePlate,
	}
}

// Category is the coarse input class a caller asks to validate.
type Category string

const (
	CategoryEmail   Category = "email"
	CategoryPhone   Category = "phone"
	CategoryVehicle Category = "vehicle"
)

// VehicleUse selects between the business and personal plate grammars.
// The zero value means business use.
type VehicleUse uint8

const (
	BusinessUse VehicleUse = iota
	PersonalUse
)

func (u VehicleUse) String() string {
	if u == PersonalUse {
		return "personal"
	}
	return "business"
}
