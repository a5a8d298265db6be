package entity

// UnitType is the measurement unit an ingredient is purchased and dosed in.
type UnitType string

const (
	UnitTypeUnit       UnitType = "UNIT"
	UnitTypeGram       UnitType = "GRAM"
	UnitTypeKilogram   UnitType = "KILOGRAM"
	UnitTypeMilliliter UnitType = "MILLILITER"
	UnitTypeLiter      UnitType = "LITER"
)

// Valid reports whether the unit is one of the supported measurement units.
func (u UnitType) Valid() bool {
	switch u {
	case UnitTypeUnit, UnitTypeGram, UnitTypeKilogram, UnitTypeMilliliter, UnitTypeLiter:
		return true
	}

	return false
}
