package cpu

const (
	REGISTER_COUNT = 16   // Number of general purpose registers.
	MEMORY_SIZE    = 256  // Number of memory cells.
	SCREEN_ADDRESS = 0x00 // STORE to this address writes to the screen.
	DATA_ADDRESS   = 0x10 // Location of the preloaded sample data.
)
