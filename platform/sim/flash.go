//go:build !tinygo && !baremetal

package sim

// FlashSizeMap is the flash size and partition layout reported by the boot
// ROM. Sizes are in megabits; the suffix is the user-bin partition split in
// KB.
type FlashSizeMap uint8

const (
	FlashSize4MMap256x256 FlashSizeMap = iota
	FlashSize2M
	FlashSize8MMap512x512
	FlashSize16MMap512x512
	FlashSize32MMap512x512
	FlashSize16MMap1024x1024
	FlashSize32MMap1024x1024
	FlashSize32MMap2048x2048
	FlashSize64MMap1024x1024
	FlashSize128MMap1024x1024
)

// rfCalReserved is how many sectors from the end of flash the SDK keeps
// for RF calibration and system parameters.
const rfCalReserved = 5

// RFCalSector returns the 4KB sector where the radio stores RF calibration
// data for the given flash layout, or 0 when the layout is not supported.
func RFCalSector(m FlashSizeMap) uint32 {
	var sectors uint32
	switch m {
	case FlashSize4MMap256x256:
		sectors = 128
	case FlashSize8MMap512x512:
		sectors = 256
	case FlashSize16MMap512x512, FlashSize16MMap1024x1024:
		sectors = 512
	case FlashSize32MMap512x512, FlashSize32MMap1024x1024:
		sectors = 1024
	case FlashSize64MMap1024x1024:
		sectors = 2048
	case FlashSize128MMap1024x1024:
		sectors = 4096
	default:
		return 0
	}
	return sectors - rfCalReserved
}
