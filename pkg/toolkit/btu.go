package toolkit

import (
	"fmt"
	"math"
)

// BTU contribution factors: 1 watt dissipates 3.412 BTU/hr, rooms need
// 20 BTU per square foot, each occupant adds 600, each window 1000.
const (
	wattsToBTU     = 3.412
	btuPerSqFt     = 20.0
	btuPerOccupant = 600.0
	btuPerWindow   = 1000.0
)

// BTULoad is the cooling load breakdown in BTU/hr.
type BTULoad struct {
	EquipmentHeat float64
	RoomHeat      float64
	OccupantHeat  float64
	WindowHeat    float64
	Total         float64
}

// CoolingLoad computes the required cooling capacity for a room.
func CoolingLoad(equipmentWattage, roomSqFt, occupants, windows float64) BTULoad {
	load := BTULoad{
		EquipmentHeat: equipmentWattage * wattsToBTU,
		RoomHeat:      roomSqFt * btuPerSqFt,
		OccupantHeat:  occupants * btuPerOccupant,
		WindowHeat:    windows * btuPerWindow,
	}
	load.Total = load.EquipmentHeat + load.RoomHeat + load.OccupantHeat + load.WindowHeat
	return load
}

type btuWidget struct{}

// NewBTUCalculator builds the BTU cooling load widget.
func NewBTUCalculator() Widget { return btuWidget{} }

func (btuWidget) ToolID() string { return "btu-calculator" }

func (btuWidget) Evaluate(inputs map[string]float64) (map[string]float64, error) {
	wattage, err := requireInput(inputs, "equipmentWattage")
	if err != nil {
		return nil, err
	}
	roomSize, err := requireInput(inputs, "roomSize")
	if err != nil {
		return nil, err
	}
	occupants, err := requireInput(inputs, "occupants")
	if err != nil {
		return nil, err
	}
	windows, err := requireInput(inputs, "windows")
	if err != nil {
		return nil, err
	}
	if wattage < 0 || roomSize < 0 || occupants < 0 || windows < 0 {
		return nil, fmt.Errorf("inputs must be non-negative")
	}
	load := CoolingLoad(wattage, roomSize, occupants, windows)
	return map[string]float64{
		"equipmentHeat": math.Round(load.EquipmentHeat),
		"roomHeat":      math.Round(load.RoomHeat),
		"occupantHeat":  math.Round(load.OccupantHeat),
		"windowHeat":    math.Round(load.WindowHeat),
		"totalBTU":      math.Round(load.Total),
	}, nil
}
