// Package conv provides checked integer conversions.
//
// Bit indices are plain ints inside the bit vector; exporting them to 32-bit
// consumers (such as roaring bitmaps) goes through IntToUint32 so that
// indices which do not fit are reported instead of silently truncated.
package conv
