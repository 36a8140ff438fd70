package cc1101

// Configuration registers (single/burst access, 0x00-0x2E).
const (
	regIOCFG2   = 0x00
	regIOCFG0   = 0x02
	regPKTCTRL0 = 0x08
	regFSCTRL1  = 0x0B
	regFREQ2    = 0x0D
	regFREQ1    = 0x0E
	regFREQ0    = 0x0F
	regMDMCFG4  = 0x10
	regMDMCFG3  = 0x11
	regMDMCFG2  = 0x12
	regDEVIATN  = 0x15
	regMCSM0    = 0x18
	regFOCCFG   = 0x19
	regAGCCTRL2 = 0x1B
	regFREND0   = 0x22
	regPATABLE  = 0x3E
)

// Status registers (0x30-0x3D, read with the burst bit set).
const (
	regPARTNUM = 0x30
	regVERSION = 0x31
	regRSSI    = 0x34
)

// Command strobes.
const (
	strobeSRES  = 0x30
	strobeSRX   = 0x34
	strobeSIDLE = 0x36
	strobeSNOP  = 0x3D
)

// statusChipRdyN is bit 7 of the status byte; it stays high until the
// crystal is running.
const statusChipRdyN = 0x80

// Header bits.
const (
	hdrRead  = 0x80
	hdrBurst = 0x40
)

// Known VERSION values (current silicon, legacy silicon, common clone).
const (
	versionCurrent = 0x14
	versionLegacy  = 0x04
	versionClone   = 0x17
)

// Crystal frequency of the usual CC1101 modules.
const fxoscHz = 26_000_000

// rssiOffset is the datasheet RSSI offset in dB for 1.2-250 kBaud.
const rssiOffset = 74

// Power levels in dBm and the PATABLE byte per band (315, 433, 868, 915 MHz).
var paTable = []struct {
	dBm  int8
	band [4]byte
}{
	{-30, [4]byte{0x12, 0x12, 0x03, 0x03}},
	{-20, [4]byte{0x0D, 0x0E, 0x0F, 0x0E}},
	{-15, [4]byte{0x1C, 0x1D, 0x1E, 0x1E}},
	{-10, [4]byte{0x34, 0x34, 0x27, 0x27}},
	{0, [4]byte{0x51, 0x60, 0x50, 0x8E}},
	{5, [4]byte{0x85, 0x84, 0x81, 0xCD}},
	{7, [4]byte{0xCB, 0xC8, 0xCB, 0xC7}},
	{10, [4]byte{0xC2, 0xC0, 0xC2, 0xC0}},
}

// Baseline register image written on Begin: 2-FSK, asynchronous serial
// data on GDO0, carrier sense on GDO2, autocalibrate on IDLE->RX.
var baseline = [...][2]byte{
	{regIOCFG2, 0x0E},   // carrier sense
	{regIOCFG0, 0x0D},   // serial data output
	{regPKTCTRL0, 0x32}, // asynchronous serial, infinite length
	{regFSCTRL1, 0x06},
	{regMDMCFG2, 0x00}, // 2-FSK, no sync word
	{regDEVIATN, 0x15},
	{regMCSM0, 0x18},
	{regFOCCFG, 0x16},
	{regAGCCTRL2, 0x43},
	{regFREND0, 0x10}, // PA index 0
}
