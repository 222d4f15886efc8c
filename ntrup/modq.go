// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ntrup

// modqFreeze maps a in [-9000000, 9000000] to the centered representative in
// [-2295, 2295] without data-dependent branches.
func modqFreeze(a int32) int16 {
	a -= q * ((228 * a) >> 20)
	a -= q * ((58470*a + 134217728) >> 28)
	return int16(a)
}

// modqFromUint32 maps a full 32-bit value to (a mod q) - qShift.
func modqFromUint32(a uint32) int16 {
	r := int32(a&524287) + int32(a>>19)*914 // <= 8010861
	return modqFreeze(r - qShift)
}

func modqPlusProduct(a, b, c int16) int16 {
	return modqFreeze(int32(a) + int32(b)*int32(c))
}

func modqSum(a, b int16) int16 {
	return modqFreeze(int32(a) + int32(b))
}

// mod3Freeze maps a in [-100000, 100000] to the centered trit in {-1, 0, 1}.
func mod3Freeze(a int32) int8 {
	a -= 3 * ((10923 * a) >> 15)
	a -= 3 * ((89478485*a + 134217728) >> 28)
	return int8(a)
}
