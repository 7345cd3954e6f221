package edl

// Static length/distance decode tables, fixed by the EDL-1 wire format.
// Index i for T1/T2 corresponds to symbol (0x101 + i); index i for T3/T4
// corresponds to the distance symbol read from the small Huffman table.

// T1 is the length base value per length symbol.
var T1 = [29]uint32{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x08, 0x0A, 0x0C, 0x0E, 0x10, 0x14, 0x18, 0x1C,
	0x20, 0x28, 0x30, 0x38, 0x40, 0x50, 0x60, 0x70,
	0x80, 0xA0, 0xC0, 0xE0, 0xFF,
}

// T2 is the count of extra length bits to read per length symbol.
var T2 = [29]uint{
	0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4,
	5, 5, 5, 5, 0,
}

// T3 is the distance base value per distance symbol.
var T3 = [30]uint32{
	0x0000, 0x0001, 0x0002, 0x0003, 0x0004, 0x0006,
	0x0008, 0x000C, 0x0010, 0x0018, 0x0020, 0x0030,
	0x0040, 0x0060, 0x0080, 0x00C0, 0x0100, 0x0180,
	0x0200, 0x0300, 0x0400, 0x0600, 0x0800, 0x0C00,
	0x1000, 0x1800, 0x2000, 0x3000, 0x4000, 0x6000,
}

// T4 is the count of extra distance bits to read per distance symbol.
var T4 = [30]uint{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3,
	4, 4, 5, 5, 6, 6, 7, 7, 8, 8,
	9, 9, 0xA, 0xA, 0xB, 0xB, 0xC, 0xC, 0xD, 0xD,
}
