// Package platform binds a board profile to the peripherals the UI needs.
//
// A Board carries the pin map and feature switches for one target. Build
// tags pick the profile and the machine-level wiring; Detect resolves every
// optional peripheral once at start-up.
package platform

// Features switch optional hardware on or off for a board.
type Features struct {
	LCD       bool
	IR        bool
	Radio     bool
	SerialLog bool
}

// ButtonPins are GPIO numbers of the active-low navigation buttons.
type ButtonPins struct {
	Up, Down, Select, Back int
}

type I2CPins struct {
	ID       string
	SDA, SCL int
	Hz       uint32
}

type SPIPins struct {
	ID              string
	SCK, MOSI, MISO int
	CSN             int
	GDO0, GDO2      int
	Hz              uint32
}

type UARTPins struct {
	ID     string
	TX, RX int
	Baud   uint32
}

// Board is one wiring profile. Pins are plain GPIO numbers; mapping to
// machine.Pin happens in the build-tagged files.
type Board struct {
	Name    string
	Banner  string
	Buttons ButtonPins

	LCD     I2CPins
	LCDAddr uint8
	LCDCols int
	LCDRows int

	IRPin  int
	Radio  SPIPins
	Serial UARTPins

	Features Features
}

// ESP32 is the reference wiring.
var ESP32 = Board{
	Name:    "esp32_devkit",
	Banner:  "ESP32 Flipper",
	Buttons: ButtonPins{Up: 33, Down: 25, Select: 26, Back: 27},
	LCD:     I2CPins{ID: "i2c0", SDA: 21, SCL: 22, Hz: 100_000},
	LCDAddr: 0x27,
	LCDCols: 16,
	LCDRows: 2,
	IRPin:   34,
	Radio:   SPIPins{ID: "vspi", SCK: 18, MISO: 19, MOSI: 23, CSN: 5, GDO0: 4, GDO2: 15, Hz: 4_000_000},
	Serial:  UARTPins{ID: "uart0", Baud: 115_200},
	Features: Features{
		LCD:       true,
		IR:        true,
		Radio:     true,
		SerialLog: true,
	},
}

// Pico wires the same peripherals to a Raspberry Pi Pico.
var Pico = Board{
	Name:    "pico_pocket",
	Banner:  "Pico Flipper",
	Buttons: ButtonPins{Up: 2, Down: 3, Select: 4, Back: 5},
	LCD:     I2CPins{ID: "i2c0", SDA: 12, SCL: 13, Hz: 100_000},
	LCDAddr: 0x27,
	LCDCols: 16,
	LCDRows: 2,
	IRPin:   15,
	Radio:   SPIPins{ID: "spi0", SCK: 18, MOSI: 19, MISO: 16, CSN: 17, GDO0: 20, GDO2: 21, Hz: 4_000_000},
	Serial:  UARTPins{ID: "uart0", TX: 0, RX: 1, Baud: 115_200},
	Features: Features{
		LCD:       true,
		IR:        true,
		Radio:     true,
		SerialLog: true,
	},
}
