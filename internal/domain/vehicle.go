package domain

type VehicleType string

const (
	TypeUsed VehicleType = "usados"
	TypeNew  VehicleType = "nuevos"
	TypeMoto VehicleType = "motos"
)

// BodyStyle is the tipología of a listing.
type BodyStyle string

const (
	BodySedan       BodyStyle = "sedan"
	BodyHatchback   BodyStyle = "hatchback"
	BodyCoupe       BodyStyle = "coupe"
	BodyConvertible BodyStyle = "convertible"
	BodySUV         BodyStyle = "suv"
	BodyPickup      BodyStyle = "pickup"
	BodyWagon       BodyStyle = "wagon"
	BodyVan         BodyStyle = "van"
	BodyMoto        BodyStyle = "moto"
)

type Condition string

const (
	ConditionZeroKm   Condition = "0km"
	ConditionUsed     Condition = "usados"
	ConditionResale   Condition = "reventa"
	ConditionUpcoming Condition = "proximo_ingreso"
)

type Currency string

const (
	CurrencyPesos   Currency = "pesos"
	CurrencyDollars Currency = "dolares"
)

var (
	VehicleTypes = []VehicleType{TypeUsed, TypeNew, TypeMoto}
	BodyStyles   = []BodyStyle{BodySedan, BodyHatchback, BodyCoupe, BodyConvertible, BodySUV, BodyPickup, BodyWagon, BodyVan, BodyMoto}
	Conditions   = []Condition{ConditionZeroKm, ConditionUsed, ConditionResale, ConditionUpcoming}
	Currencies   = []Currency{CurrencyPesos, CurrencyDollars}
)

// Vehicle is one listing of the static catalog. Values are never mutated
// after the store is loaded.
type Vehicle struct {
	ID           string      `json:"id"`
	Slug         string      `json:"slug"`
	Type         VehicleType `json:"type"`
	Tipologia    BodyStyle   `json:"tipologia"`
	Condition    Condition   `json:"condition"`
	Brand        string      `json:"brand"`
	Model        string      `json:"model"`
	Version      string      `json:"version"`
	Year         int         `json:"year"`
	OdometerKm   int         `json:"odometerKm"`
	PriceArs     int         `json:"priceArs,omitempty"`
	PriceUsd     int         `json:"priceUsd,omitempty"`
	Transmission string      `json:"transmission"`
	FuelType     string      `json:"fuelType"`
	Color        string      `json:"color,omitempty"`
	DoorCount    *int        `json:"doorCount,omitempty"`
	Extras       []string    `json:"extras,omitempty"`
	Description  string      `json:"description,omitempty"`
	CoverImage   string      `json:"coverImage"`
	Images       []string    `json:"images,omitempty"`
	IsFeatured   bool        `json:"isFeatured"`
}

// Title is the display name used by pages and lead messages.
func (v Vehicle) Title() string {
	t := v.Brand + " " + v.Model
	if v.Version != "" {
		t += " " + v.Version
	}
	return t
}

// Price returns the price that applies to the given currency. An unset
// currency means pesos.
func (v Vehicle) Price(cur Currency) int {
	if cur == CurrencyDollars {
		return v.PriceUsd
	}
	return v.PriceArs
}

// ListedCurrency is the currency the vehicle is actually priced in, or ""
// for a listing without price ("consultar").
func (v Vehicle) ListedCurrency() Currency {
	switch {
	case v.PriceUsd > 0:
		return CurrencyDollars
	case v.PriceArs > 0:
		return CurrencyPesos
	}
	return ""
}

// Gallery falls back to the cover image when no images are listed.
func (v Vehicle) Gallery() []string {
	if len(v.Images) > 0 {
		return v.Images
	}
	if v.CoverImage == "" {
		return nil
	}
	return []string{v.CoverImage}
}
