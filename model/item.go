package model

// Item labels what the values flowing through an almanac stage represent.
type Item int

const (
	Undefined Item = iota
	Seed
	Soil
	Fertilizer
	Water
	Light
	Temperature
	Humidity
	Location
)

var itemNames = [...]string{
	Undefined:   "undefined",
	Seed:        "seed",
	Soil:        "soil",
	Fertilizer:  "fertilizer",
	Water:       "water",
	Light:       "light",
	Temperature: "temperature",
	Humidity:    "humidity",
	Location:    "location",
}

// ParseItem returns the item with the given lower case name, as it appears in
// map headers like "seed-to-soil map:".
func ParseItem(s string) (Item, bool) {
	for i, name := range itemNames {
		if Item(i) != Undefined && name == s {
			return Item(i), true
		}
	}
	return Undefined, false
}

func (i Item) String() string {
	if i < 0 || int(i) >= len(itemNames) {
		return itemNames[Undefined]
	}
	return itemNames[i]
}
